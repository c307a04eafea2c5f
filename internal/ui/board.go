package ui

import (
	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"refboard/internal/model"
	"refboard/internal/scene"
)

// Board renders the scene and handles all canvas interaction: primary-drag
// moves a tile, primary- or middle-drag on empty space pans, the wheel zooms
// at the cursor, and a long secondary drag is forwarded as a window move.
//
// The widget must only be touched from the Fyne event loop; the scene it
// renders is confined to the same thread.
type Board struct {
	widget.BaseWidget

	scene         *scene.Scene
	showBackdrops bool

	// Interaction state for the drag in progress
	pressButton desktop.MouseButton
	activeTile  *model.ImageTile
	dragTotalX  float32
	dragTotalY  float32

	onWindowMove    func(dx, dy float32)
	onTileActivated func(tile *model.ImageTile)
	onTileMenu      func(tile *model.ImageTile, pos fyne.Position)
}

var _ fyne.Draggable = (*Board)(nil)
var _ fyne.Tappable = (*Board)(nil)
var _ fyne.SecondaryTappable = (*Board)(nil)
var _ fyne.Scrollable = (*Board)(nil)
var _ desktop.Mouseable = (*Board)(nil)

// NewBoard creates a board widget rendering the given scene.
func NewBoard(sc *scene.Scene) *Board {
	b := &Board{
		scene:         sc,
		showBackdrops: true,
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetShowBackdrops toggles folder backdrop rendering.
func (b *Board) SetShowBackdrops(show bool) {
	b.showBackdrops = show
	b.Refresh()
}

// SetWindowMoveCallback sets the handler for secondary-button drags that
// exceed the window drag threshold.
func (b *Board) SetWindowMoveCallback(callback func(dx, dy float32)) {
	b.onWindowMove = callback
}

// SetTileActivatedCallback sets the handler for a primary click on a tile.
func (b *Board) SetTileActivatedCallback(callback func(tile *model.ImageTile)) {
	b.onTileActivated = callback
}

// SetTileMenuCallback sets the handler for a secondary click on a tile.
func (b *Board) SetTileMenuCallback(callback func(tile *model.ImageTile, pos fyne.Position)) {
	b.onTileMenu = callback
}

// ResetView restores the identity transform.
func (b *Board) ResetView() {
	b.scene.ResetTransform()
	b.Refresh()
}

// toWorld converts a widget position to board coordinates.
func (b *Board) toWorld(p fyne.Position) model.Point {
	t := b.scene.Transform()
	return model.Point{
		X: (p.X - t.OffsetX) / t.Zoom,
		Y: (p.Y - t.OffsetY) / t.Zoom,
	}
}

// MouseDown records the pressed button and picks up the tile under the
// cursor for a primary press.
func (b *Board) MouseDown(ev *desktop.MouseEvent) {
	b.pressButton = ev.Button
	b.dragTotalX = 0
	b.dragTotalY = 0

	if ev.Button == desktop.MouseButtonPrimary {
		if tile := b.scene.TileAt(b.toWorld(ev.Position)); tile != nil {
			b.activeTile = tile
			b.scene.RaiseToFront(tile.ID)
			b.Refresh()
		}
	}
}

// MouseUp ends the press.
func (b *Board) MouseUp(ev *desktop.MouseEvent) {
	b.pressButton = 0
}

// Dragged routes the drag by the button that started it.
func (b *Board) Dragged(ev *fyne.DragEvent) {
	switch b.pressButton {
	case desktop.MouseButtonSecondary:
		// Window move, once past the click threshold
		b.dragTotalX += ev.Dragged.DX
		b.dragTotalY += ev.Dragged.DY
		if b.onWindowMove != nil && pastThreshold(b.dragTotalX, b.dragTotalY) {
			b.onWindowMove(ev.Dragged.DX, ev.Dragged.DY)
		}

	case desktop.MouseButtonPrimary:
		if b.activeTile != nil {
			b.dragTile(ev)
			return
		}
		b.pan(ev)

	default:
		// Middle button, or drags whose press was not observed
		b.pan(ev)
	}
}

// DragEnd clears the drag state.
func (b *Board) DragEnd() {
	b.activeTile = nil
	b.pressButton = 0
	b.dragTotalX = 0
	b.dragTotalY = 0
}

// dragTile moves the picked-up tile by the drag delta in board units.
func (b *Board) dragTile(ev *fyne.DragEvent) {
	t := b.scene.Transform()
	pos := b.activeTile.Position()
	b.scene.Move(b.activeTile.ID, model.Point{
		X: pos.X + ev.Dragged.DX/t.Zoom,
		Y: pos.Y + ev.Dragged.DY/t.Zoom,
	})
	b.Refresh()
}

// pan shifts the view by the drag delta.
func (b *Board) pan(ev *fyne.DragEvent) {
	b.PanBy(ev.Dragged.DX, ev.Dragged.DY)
}

// PanBy shifts the view by a screen-space delta, clamped to the board
// extent.
func (b *Board) PanBy(dx, dy float32) {
	t := b.scene.Transform()
	t.OffsetX = clampOffset(t.OffsetX + dx)
	t.OffsetY = clampOffset(t.OffsetY + dy)
	b.scene.SetTransform(t)
	b.Refresh()
}

// Scrolled zooms around the cursor so the board point under it stays put.
func (b *Board) Scrolled(ev *fyne.ScrollEvent) {
	factor := ZoomStep
	if ev.Scrolled.DY < 0 {
		factor = 1 / ZoomStep
	}
	b.zoomAt(ev.Position, factor)
}

func (b *Board) zoomAt(p fyne.Position, factor float32) {
	t := b.scene.Transform()
	newZoom := clampZoom(t.Zoom * factor)
	if newZoom == t.Zoom {
		return
	}

	world := b.toWorld(p)
	t.OffsetX = clampOffset(p.X - world.X*newZoom)
	t.OffsetY = clampOffset(p.Y - world.Y*newZoom)
	t.Zoom = newZoom
	b.scene.SetTransform(t)
	b.Refresh()
}

// Tapped activates the tile under the cursor, if any.
func (b *Board) Tapped(ev *fyne.PointEvent) {
	if b.onTileActivated == nil {
		return
	}
	if tile := b.scene.TileAt(b.toWorld(ev.Position)); tile != nil {
		b.onTileActivated(tile)
	}
}

// TappedSecondary opens the tile context menu, if any.
func (b *Board) TappedSecondary(ev *fyne.PointEvent) {
	// A long secondary drag already moved the window; don't also open a menu.
	if pastThreshold(b.dragTotalX, b.dragTotalY) {
		return
	}
	if b.onTileMenu == nil {
		return
	}
	if tile := b.scene.TileAt(b.toWorld(ev.Position)); tile != nil {
		b.onTileMenu(tile, ev.AbsolutePosition)
	}
}

// CreateRenderer builds the scene renderer.
func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	background := fynecanvas.NewRectangle(ColorBoardCanvas)
	r := &boardRenderer{
		board:      b,
		background: background,
		tileImages: make(map[string]*fynecanvas.Image),
	}
	r.rebuild()
	return r
}

func clampZoom(zoom float32) float32 {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

func clampOffset(v float32) float32 {
	if v < -CanvasExtent {
		return -CanvasExtent
	}
	if v > CanvasExtent {
		return CanvasExtent
	}
	return v
}

func pastThreshold(dx, dy float32) bool {
	return dx*dx+dy*dy > WindowDragThreshold*WindowDragThreshold
}

// boardRenderer draws the scene back-to-front: backdrops with their labels,
// then tiles in z order. Decoded bitmaps are wrapped in canvas images once
// and reused across refreshes.
type boardRenderer struct {
	board      *Board
	background *fynecanvas.Rectangle
	objects    []fyne.CanvasObject
	tileImages map[string]*fynecanvas.Image
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(BoardMinWidth, BoardMinHeight)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Refresh() {
	r.rebuild()
	fynecanvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}

// rebuild regenerates the object list from the scene.
func (r *boardRenderer) rebuild() {
	t := r.board.scene.Transform()

	r.objects = r.objects[:0]
	r.objects = append(r.objects, r.background)

	seen := make(map[string]bool, len(r.tileImages))

	for _, item := range r.board.scene.Items() {
		switch it := item.(type) {
		case *model.FolderBackdrop:
			if r.board.showBackdrops {
				r.appendBackdrop(it, t)
			}
		case *model.ImageTile:
			r.appendTile(it, t, seen)
		}
	}

	// Drop cached images for tiles no longer in the scene
	for id := range r.tileImages {
		if !seen[id] {
			delete(r.tileImages, id)
		}
	}
}

func (r *boardRenderer) appendBackdrop(b *model.FolderBackdrop, t scene.Transform) {
	rect := fynecanvas.NewRectangle(ColorBackdropFill)
	rect.Move(project(model.Point{X: b.Rect.X, Y: b.Rect.Y}, t))
	rect.Resize(scale(model.Size{Width: b.Rect.Width, Height: b.Rect.Height}, t))

	label := fynecanvas.NewText(b.Label, ColorBackdropLabel)
	label.TextSize = BackdropLabelTextSize * t.Zoom
	label.Move(project(model.Point{
		X: b.Rect.X,
		Y: b.Rect.Y - BackdropLabelTextSize - 4,
	}, t))

	r.objects = append(r.objects, rect, label)
}

func (r *boardRenderer) appendTile(tile *model.ImageTile, t scene.Transform, seen map[string]bool) {
	pos := project(tile.Pos, t)
	size := scale(tile.Size, t)

	if tile.Placeholder() {
		rect := fynecanvas.NewRectangle(ColorPlaceholderFill)
		rect.Move(pos)
		rect.Resize(size)
		r.objects = append(r.objects, rect)
		return
	}

	img, cached := r.tileImages[tile.ID]
	if !cached {
		img = fynecanvas.NewImageFromImage(tile.Image.Image)
		img.FillMode = fynecanvas.ImageFillStretch
		r.tileImages[tile.ID] = img
	}
	seen[tile.ID] = true

	img.Move(pos)
	img.Resize(size)
	r.objects = append(r.objects, img)
}

// project maps a board point to widget coordinates.
func project(p model.Point, t scene.Transform) fyne.Position {
	return fyne.NewPos(p.X*t.Zoom+t.OffsetX, p.Y*t.Zoom+t.OffsetY)
}

// scale maps a board size to widget coordinates.
func scale(s model.Size, t scene.Transform) fyne.Size {
	return fyne.NewSize(s.Width*t.Zoom, s.Height*t.Zoom)
}
