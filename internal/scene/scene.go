// Package scene holds the authoritative set of placed visual items and the
// viewport transform. The scene is confined to the interactive thread: the
// ingestion pipeline never touches it directly, it hands placements to the UI
// layer which applies them via fyne.Do.
package scene

import (
	"refboard/internal/model"
)

// Transform is the viewport pan/zoom state applied when rendering the board.
type Transform struct {
	OffsetX float32
	OffsetY float32
	Zoom    float32
}

// identityTransform is the state after Reset Canvas.
var identityTransform = Transform{Zoom: 1.0}

// Scene is an ordered collection of scene items keyed by identity. Items
// earlier in the order render below later ones; backdrops always render
// below tiles.
type Scene struct {
	backdrops []*model.FolderBackdrop
	tiles     []*model.ImageTile
	byID      map[string]model.SceneItem
	transform Transform
	onChange  func()
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		byID:      make(map[string]model.SceneItem),
		transform: identityTransform,
	}
}

// SetChangeCallback registers a callback invoked after every mutation. The
// UI uses it to refresh the canvas.
func (s *Scene) SetChangeCallback(callback func()) {
	s.onChange = callback
}

func (s *Scene) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// InsertTile adds a tile above all existing tiles of the board.
func (s *Scene) InsertTile(tile *model.ImageTile) {
	if _, exists := s.byID[tile.ID]; exists {
		return
	}
	s.tiles = append(s.tiles, tile)
	s.byID[tile.ID] = tile
	s.changed()
}

// SetBackdrop inserts the folder's backdrop or resizes it if already present.
// Backdrops are re-emitted incrementally while a folder loads so the user
// sees the grouping grow.
func (s *Scene) SetBackdrop(b *model.FolderBackdrop) {
	if existing, ok := s.byID[b.ID]; ok {
		if bd, ok := existing.(*model.FolderBackdrop); ok {
			bd.Rect = b.Rect
			bd.Label = b.Label
			s.changed()
		}
		return
	}
	s.backdrops = append(s.backdrops, b)
	s.byID[b.ID] = b
	s.changed()
}

// Move repositions one item by id. Unknown ids are ignored.
func (s *Scene) Move(id string, pos model.Point) {
	item, ok := s.byID[id]
	if !ok {
		return
	}
	item.SetPosition(pos)
	s.changed()
}

// RaiseToFront moves a tile to the top of the z-order. Used at drag start so
// the dragged tile renders above its siblings.
func (s *Scene) RaiseToFront(id string) {
	for i, tile := range s.tiles {
		if tile.ID == id {
			s.tiles = append(s.tiles[:i], s.tiles[i+1:]...)
			s.tiles = append(s.tiles, tile)
			s.changed()
			return
		}
	}
}

// TileAt returns the topmost tile containing the board point, or nil.
func (s *Scene) TileAt(p model.Point) *model.ImageTile {
	for i := len(s.tiles) - 1; i >= 0; i-- {
		if s.tiles[i].Bounds().Contains(p) {
			return s.tiles[i]
		}
	}
	return nil
}

// Items returns all items in render order: backdrops first, then tiles
// bottom to top.
func (s *Scene) Items() []model.SceneItem {
	items := make([]model.SceneItem, 0, len(s.backdrops)+len(s.tiles))
	for _, b := range s.backdrops {
		items = append(items, b)
	}
	for _, t := range s.tiles {
		items = append(items, t)
	}
	return items
}

// TileCount returns the number of tiles, placeholders included.
func (s *Scene) TileCount() int { return len(s.tiles) }

// FolderTileCount returns the number of tiles belonging to one folder.
func (s *Scene) FolderTileCount(folder string) int {
	n := 0
	for _, t := range s.tiles {
		if t.Folder == folder {
			n++
		}
	}
	return n
}

// RemoveGroup removes every item of one folder grouping.
func (s *Scene) RemoveGroup(folder string) {
	tiles := s.tiles[:0]
	for _, t := range s.tiles {
		if t.Folder == folder {
			delete(s.byID, t.ID)
		} else {
			tiles = append(tiles, t)
		}
	}
	s.tiles = tiles

	backdrops := s.backdrops[:0]
	for _, b := range s.backdrops {
		if b.Folder == folder {
			delete(s.byID, b.ID)
		} else {
			backdrops = append(backdrops, b)
		}
	}
	s.backdrops = backdrops
	s.changed()
}

// RemoveAll empties the scene. This is the effect of Clear Canvas.
func (s *Scene) RemoveAll() {
	s.tiles = nil
	s.backdrops = nil
	s.byID = make(map[string]model.SceneItem)
	s.changed()
}

// Transform returns the current viewport transform.
func (s *Scene) Transform() Transform { return s.transform }

// SetTransform replaces the viewport transform.
func (s *Scene) SetTransform(t Transform) {
	if t.Zoom <= 0 {
		t.Zoom = 1.0
	}
	s.transform = t
	s.changed()
}

// ResetTransform restores the identity viewport. Together with RemoveAll this
// is the effect of Reset Canvas.
func (s *Scene) ResetTransform() {
	s.transform = identityTransform
	s.changed()
}
