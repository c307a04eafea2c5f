package model

// Point is a position on the board canvas.
type Point struct {
	X float32
	Y float32
}

// Size is a width/height pair.
type Size struct {
	Width  float32
	Height float32
}

// Rect is an axis-aligned rectangle on the board canvas.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// Union returns the smallest rectangle containing both r and o.
// An empty rectangle acts as the identity.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}

	minX := r.X
	if o.X < minX {
		minX = o.X
	}
	minY := r.Y
	if o.Y < minY {
		minY = o.Y
	}
	maxX := r.Right()
	if o.Right() > maxX {
		maxX = o.Right()
	}
	maxY := r.Bottom()
	if o.Bottom() > maxY {
		maxY = o.Bottom()
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}
