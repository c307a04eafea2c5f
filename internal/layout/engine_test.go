package layout

import (
	"errors"
	"math/rand"
	"testing"

	"refboard/internal/model"
)

func testGrid() Grid {
	return Grid{Columns: 2, Spacing: 10, CellSize: model.Size{Width: 100, Height: 50}}
}

func result(index int) model.DecodeResult {
	return model.DecodeResult{
		JobID:  "job",
		Index:  index,
		Source: model.ImagePath{Path: "/f/img.png", Ext: ".png"},
		Image:  &model.DecodedImage{},
	}
}

func TestEngine_EmitsInScanOrder(t *testing.T) {
	e := NewEngine("/f", model.Point{}, testGrid())

	// Completion order 2, 0, 1 must still emit 0, 1, 2.
	if got := e.Offer(result(2)); len(got) != 0 {
		t.Fatalf("Offer(2) emitted %d placements, expected 0 (buffered)", len(got))
	}
	if e.Buffered() != 1 {
		t.Errorf("Buffered() = %d, expected 1", e.Buffered())
	}

	got := e.Offer(result(0))
	if len(got) != 1 || got[0].Index != 0 {
		t.Fatalf("Offer(0) emitted %v, expected placement for index 0", got)
	}

	got = e.Offer(result(1))
	if len(got) != 2 || got[0].Index != 1 || got[1].Index != 2 {
		t.Fatalf("Offer(1) emitted %v, expected placements for 1 then 2", got)
	}
	if e.Buffered() != 0 {
		t.Errorf("Buffered() = %d, expected 0 after gap filled", e.Buffered())
	}
}

func TestEngine_GridPositions(t *testing.T) {
	origin := model.Point{X: 500, Y: 20}
	e := NewEngine("/f", origin, testGrid())

	expected := []model.Point{
		{X: 500, Y: 20},  // col 0, row 0
		{X: 610, Y: 20},  // col 1, row 0
		{X: 500, Y: 80},  // col 0, row 1
		{X: 610, Y: 80},  // col 1, row 1
		{X: 500, Y: 140}, // col 0, row 2
	}

	for i := range expected {
		got := e.Offer(result(i))
		if len(got) != 1 {
			t.Fatalf("Offer(%d) emitted %d placements", i, len(got))
		}
		if got[0].Pos != expected[i] {
			t.Errorf("placement %d at %v, expected %v", i, got[0].Pos, expected[i])
		}
	}
}

func TestEngine_DeterministicUnderRandomCompletionOrder(t *testing.T) {
	run := func(seed int64) map[int]model.Point {
		e := NewEngine("/f", model.Point{}, testGrid())
		order := rand.New(rand.NewSource(seed)).Perm(12)

		positions := make(map[int]model.Point)
		for _, idx := range order {
			for _, p := range e.Offer(result(idx)) {
				positions[p.Index] = p.Pos
			}
		}
		return positions
	}

	a := run(1)
	b := run(99)

	if len(a) != 12 || len(b) != 12 {
		t.Fatalf("emitted %d and %d placements, expected 12 each", len(a), len(b))
	}
	for i := 0; i < 12; i++ {
		if a[i] != b[i] {
			t.Errorf("placement %d differs across completion orders: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestEngine_FailedDecodeConsumesSlot(t *testing.T) {
	e := NewEngine("/f", model.Point{}, testGrid())

	failed := result(0)
	failed.Image = nil
	failed.Err = errors.New("corrupt file")

	got := e.Offer(failed)
	if len(got) != 1 || !got[0].Failed {
		t.Fatalf("failed decode emitted %v, expected one failed placement", got)
	}

	// The next tile must land in the second column, not reuse slot 0.
	next := e.Offer(result(1))
	if len(next) != 1 {
		t.Fatal("expected one placement")
	}
	if next[0].Pos.X != 110 {
		t.Errorf("placement after failure at X=%v, expected 110", next[0].Pos.X)
	}
}

func TestEngine_BackdropGrowsIncrementally(t *testing.T) {
	e := NewEngine("/f", model.Point{}, testGrid())

	if _, ok := e.Backdrop(); ok {
		t.Error("Backdrop() before any placement reported ok")
	}

	e.Offer(result(0))
	first, ok := e.Backdrop()
	if !ok {
		t.Fatal("Backdrop() after first placement not ok")
	}
	expectedFirst := model.Rect{X: -10, Y: -10, Width: 120, Height: 70}
	if first != expectedFirst {
		t.Errorf("backdrop after 1 tile = %v, expected %v", first, expectedFirst)
	}

	e.Offer(result(1))
	e.Offer(result(2)) // wraps to row 1
	grown, _ := e.Backdrop()
	expectedGrown := model.Rect{X: -10, Y: -10, Width: 230, Height: 130}
	if grown != expectedGrown {
		t.Errorf("backdrop after 3 tiles = %v, expected %v", grown, expectedGrown)
	}
}

func TestEngine_FiveFilesTwoColumns(t *testing.T) {
	// 5 files, columns=2, one undecodable: 5 slots in 3 rows (2,2,1),
	// 4 live tiles and 1 placeholder.
	e := NewEngine("/f", model.Point{}, testGrid())

	var placements []Placement
	for i := 0; i < 5; i++ {
		r := result(i)
		if i == 3 {
			r.Image = nil
			r.Err = errors.New("undecodable")
		}
		placements = append(placements, e.Offer(r)...)
	}

	if len(placements) != 5 {
		t.Fatalf("emitted %d placements, expected 5", len(placements))
	}

	rows := make(map[float32]int)
	failed := 0
	for _, p := range placements {
		rows[p.Pos.Y]++
		if p.Failed {
			failed++
		}
	}

	if len(rows) != 3 {
		t.Errorf("tiles span %d rows, expected 3", len(rows))
	}
	if rows[0] != 2 || rows[60] != 2 || rows[120] != 1 {
		t.Errorf("row occupancy = %v, expected 2,2,1", rows)
	}
	if failed != 1 {
		t.Errorf("failed placements = %d, expected 1", failed)
	}
}

func TestGrid_Span(t *testing.T) {
	g := testGrid()
	// 2 columns: 2*(100+10) + 10
	if got := g.Span(); got != 230 {
		t.Errorf("Span() = %v, expected 230", got)
	}
}

func TestOriginAllocator_MonotonicNonOverlapping(t *testing.T) {
	a := NewOriginAllocator()
	g := testGrid()

	first := a.Reserve(g)
	second := a.Reserve(g)

	if first.X != 0 {
		t.Errorf("first origin X = %v, expected 0", first.X)
	}
	if second.X < first.X+g.Span() {
		t.Errorf("second origin %v overlaps first grouping span %v", second.X, g.Span())
	}

	a.Reset()
	if again := a.Reserve(g); again.X != 0 {
		t.Errorf("origin after Reset = %v, expected 0", again.X)
	}
}
