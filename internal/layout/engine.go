// Package layout computes board placements for decoded images: a per-folder
// grid with a labeled backdrop, deterministic regardless of decode completion
// order. One Engine serves one ingestion job and is owned exclusively by that
// job's processing loop.
package layout

import (
	"refboard/internal/model"
)

// Grid defaults, matching the classic board layout.
const (
	DefaultColumns    = 5
	DefaultSpacing    = 10
	DefaultCellWidth  = 150
	DefaultCellHeight = 150
)

// Grid is the per-job layout configuration, captured at job start. Mid-job
// settings changes do not re-layout already placed tiles.
type Grid struct {
	Columns  int
	Spacing  float32
	CellSize model.Size
}

// DefaultGrid returns the default grid configuration.
func DefaultGrid() Grid {
	return Grid{
		Columns:  DefaultColumns,
		Spacing:  DefaultSpacing,
		CellSize: model.Size{Width: DefaultCellWidth, Height: DefaultCellHeight},
	}
}

// normalized clamps degenerate values so the grid math never divides by zero.
func (g Grid) normalized() Grid {
	if g.Columns < 1 {
		g.Columns = DefaultColumns
	}
	if g.Spacing < 0 {
		g.Spacing = 0
	}
	if g.CellSize.Width <= 0 {
		g.CellSize.Width = DefaultCellWidth
	}
	if g.CellSize.Height <= 0 {
		g.CellSize.Height = DefaultCellHeight
	}
	return g
}

// Span returns the full horizontal extent of the grid including the outer
// spacing, which is the width a job reserves so folders never overlap.
func (g Grid) Span() float32 {
	n := g.normalized()
	return float32(n.Columns)*(n.CellSize.Width+n.Spacing) + n.Spacing
}

// Placement is one grid slot emitted in scan order. Image is nil for a
// failed decode: the slot stays consumed so layout is reproducible under
// identical failures.
type Placement struct {
	Index  int
	Source model.ImagePath
	Image  *model.DecodedImage
	Pos    model.Point
	Cell   model.Size
	Failed bool
}

// Engine buffers out-of-order decode results and emits placements strictly
// in scan order. The buffer stays small: workers pull tasks in submission
// order, so out-of-orderness never exceeds the pool's in-flight count.
type Engine struct {
	folder  string
	origin  model.Point
	grid    Grid
	next    int
	pending map[int]model.DecodeResult
	used    int        // slots consumed so far
	bounds  model.Rect // tight bbox of consumed slots
}

// NewEngine creates the layout state for one job. origin is the folder
// grouping's top-left corner on the board.
func NewEngine(folder string, origin model.Point, grid Grid) *Engine {
	return &Engine{
		folder:  folder,
		origin:  origin,
		grid:    grid.normalized(),
		pending: make(map[int]model.DecodeResult),
	}
}

// Folder returns the folder path this engine lays out.
func (e *Engine) Folder() string { return e.folder }

// Offer feeds one decode result and returns every placement that became
// emittable, in scan order. Results arriving ahead of a missing index are
// buffered until the gap fills.
func (e *Engine) Offer(r model.DecodeResult) []Placement {
	e.pending[r.Index] = r

	var emitted []Placement
	for {
		next, ok := e.pending[e.next]
		if !ok {
			break
		}
		delete(e.pending, e.next)
		emitted = append(emitted, e.place(next))
		e.next++
	}
	return emitted
}

// place consumes the next grid slot for the result.
func (e *Engine) place(r model.DecodeResult) Placement {
	col := e.used % e.grid.Columns
	row := e.used / e.grid.Columns
	e.used++

	pos := model.Point{
		X: e.origin.X + float32(col)*(e.grid.CellSize.Width+e.grid.Spacing),
		Y: e.origin.Y + float32(row)*(e.grid.CellSize.Height+e.grid.Spacing),
	}

	slot := model.Rect{X: pos.X, Y: pos.Y, Width: e.grid.CellSize.Width, Height: e.grid.CellSize.Height}
	e.bounds = e.bounds.Union(slot)

	return Placement{
		Index:  r.Index,
		Source: r.Source,
		Image:  r.Image,
		Pos:    pos,
		Cell:   e.grid.CellSize,
		Failed: r.Failed(),
	}
}

// Backdrop returns the folder backdrop rectangle for the slots consumed so
// far, padded by the grid spacing. ok is false until the first placement.
func (e *Engine) Backdrop() (rect model.Rect, ok bool) {
	if e.used == 0 {
		return model.Rect{}, false
	}
	pad := e.grid.Spacing
	return model.Rect{
		X:      e.bounds.X - pad,
		Y:      e.bounds.Y - pad,
		Width:  e.bounds.Width + 2*pad,
		Height: e.bounds.Height + 2*pad,
	}, true
}

// Buffered returns the number of out-of-order results currently held.
func (e *Engine) Buffered() int { return len(e.pending) }

// Placed returns the number of slots consumed so far.
func (e *Engine) Placed() int { return e.used }
