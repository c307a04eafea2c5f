package model

// SceneItem is a visual unit placed on the board: an image tile or a folder
// backdrop. Position is the only mutable field after creation; everything
// else is fixed at insertion time.
type SceneItem interface {
	// ItemID returns the item's unique identity within the scene.
	ItemID() string
	// FolderPath returns the folder grouping the item belongs to.
	FolderPath() string
	// Position returns the item's current board position.
	Position() Point
	// SetPosition moves the item. Must only be called from the UI thread.
	SetPosition(Point)
	// Bounds returns the item's current bounding rectangle.
	Bounds() Rect
}

// ImageTile is one placed image. A tile with a nil Image is a placeholder for
// a file that failed to decode; it still occupies its grid slot so layout
// stays reproducible under identical failures.
type ImageTile struct {
	ID     string
	Folder string
	Source ImagePath
	Image  *DecodedImage
	Pos    Point
	Size   Size
}

// ItemID returns the tile's identity.
func (t *ImageTile) ItemID() string { return t.ID }

// FolderPath returns the folder grouping the tile belongs to.
func (t *ImageTile) FolderPath() string { return t.Folder }

// Position returns the tile's current board position.
func (t *ImageTile) Position() Point { return t.Pos }

// SetPosition moves the tile.
func (t *ImageTile) SetPosition(p Point) { t.Pos = p }

// Bounds returns the tile's bounding rectangle.
func (t *ImageTile) Bounds() Rect {
	return Rect{X: t.Pos.X, Y: t.Pos.Y, Width: t.Size.Width, Height: t.Size.Height}
}

// Placeholder returns true if the tile marks a failed decode.
func (t *ImageTile) Placeholder() bool { return t.Image == nil }

// FolderBackdrop is the labeled rectangle drawn behind a folder's tiles.
// It is resized incrementally while the folder loads.
type FolderBackdrop struct {
	ID     string
	Folder string
	Label  string
	Rect   Rect
}

// ItemID returns the backdrop's identity.
func (b *FolderBackdrop) ItemID() string { return b.ID }

// FolderPath returns the folder the backdrop belongs to.
func (b *FolderBackdrop) FolderPath() string { return b.Folder }

// Position returns the backdrop's top-left corner.
func (b *FolderBackdrop) Position() Point { return Point{X: b.Rect.X, Y: b.Rect.Y} }

// SetPosition moves the backdrop.
func (b *FolderBackdrop) SetPosition(p Point) {
	b.Rect.X = p.X
	b.Rect.Y = p.Y
}

// Bounds returns the backdrop rectangle.
func (b *FolderBackdrop) Bounds() Rect { return b.Rect }
