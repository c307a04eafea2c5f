package layout

import (
	"sync"

	"refboard/internal/model"
)

// gapBetweenFolders separates neighbouring folder groupings on the board.
const gapBetweenFolders = 40

// OriginAllocator hands out non-overlapping origins for folder groupings.
// Assignment is monotonic left-to-right: each job reserves the grid's full
// horizontal span up front, so concurrent folder loads can never collide
// even though their final heights are unknown until they finish.
type OriginAllocator struct {
	mu    sync.Mutex
	nextX float32
}

// NewOriginAllocator creates an allocator starting at the board origin.
func NewOriginAllocator() *OriginAllocator {
	return &OriginAllocator{}
}

// Reserve returns the origin for the next folder grouping and advances the
// cursor past the grid's span.
func (a *OriginAllocator) Reserve(grid Grid) model.Point {
	a.mu.Lock()
	defer a.mu.Unlock()

	origin := model.Point{X: a.nextX, Y: 0}
	a.nextX += grid.Span() + gapBetweenFolders
	return origin
}

// Reset rewinds the allocator to the board origin. Called when the canvas is
// cleared.
func (a *OriginAllocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextX = 0
}
