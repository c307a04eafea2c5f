package decode

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"refboard/internal/cache"
	"refboard/internal/model"
)

// writeTestPNG writes a width x height solid PNG and returns its ImagePath.
func writeTestPNG(t *testing.T, dir, name string, width, height int) model.ImagePath {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}

	return model.ImagePath{Path: path, Ext: ".png"}
}

func TestDecodeFile_ScalesToUniformHeight(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "wide.png", 300, 100)

	decoded, err := DecodeFile(src, 50)
	if err != nil {
		t.Fatalf("DecodeFile returned error: %v", err)
	}

	if decoded.Height != 50 {
		t.Errorf("Height = %d, expected 50", decoded.Height)
	}
	if decoded.Width != 150 {
		t.Errorf("Width = %d, expected 150 (aspect preserved)", decoded.Width)
	}
	if decoded.Source != src {
		t.Errorf("Source = %v, expected %v", decoded.Source, src)
	}
}

func TestDecodeFile_KeepsSizeWithoutUniformHeight(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "img.png", 40, 30)

	decoded, err := DecodeFile(src, 0)
	if err != nil {
		t.Fatalf("DecodeFile returned error: %v", err)
	}
	if decoded.Width != 40 || decoded.Height != 30 {
		t.Errorf("size = %dx%d, expected 40x30", decoded.Width, decoded.Height)
	}
}

func TestDecodeFile_Undecodable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := DecodeFile(model.ImagePath{Path: path, Ext: ".png"}, 0)
	if err == nil {
		t.Fatal("DecodeFile on garbage returned nil error")
	}
}

func TestPool_DecodesAllSubmitted(t *testing.T) {
	dir := t.TempDir()

	const count = 6
	sources := make([]model.ImagePath, count)
	for i := range sources {
		sources[i] = writeTestPNG(t, dir, fmt.Sprintf("img-%d.png", i), 20+i, 20)
	}

	pool := NewPool(2, 0, nil)
	defer pool.Close()

	results := make(chan model.DecodeResult, count)
	for i, src := range sources {
		pool.Submit(Task{JobID: "job-1", Index: i, Source: src, Results: results})
	}

	seen := make(map[int]bool)
	for i := 0; i < count; i++ {
		r := <-results
		if r.Failed() {
			t.Errorf("result %d failed: %v", r.Index, r.Err)
		}
		if r.JobID != "job-1" {
			t.Errorf("JobID = %s, expected job-1", r.JobID)
		}
		seen[r.Index] = true
	}

	for i := 0; i < count; i++ {
		if !seen[i] {
			t.Errorf("no result for index %d", i)
		}
	}
}

func TestPool_FailureDoesNotAbortBatch(t *testing.T) {
	dir := t.TempDir()

	good := writeTestPNG(t, dir, "good.png", 10, 10)
	badPath := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(badPath, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	bad := model.ImagePath{Path: badPath, Ext: ".png"}

	pool := NewPool(1, 0, nil)
	defer pool.Close()

	results := make(chan model.DecodeResult, 2)
	pool.Submit(Task{JobID: "j", Index: 0, Source: bad, Results: results})
	pool.Submit(Task{JobID: "j", Index: 1, Source: good, Results: results})

	failed, ok := 0, 0
	for i := 0; i < 2; i++ {
		r := <-results
		if r.Failed() {
			failed++
		} else {
			ok++
		}
	}

	if failed != 1 || ok != 1 {
		t.Errorf("failed=%d ok=%d, expected 1 and 1", failed, ok)
	}
}

func TestPool_UsesCache(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, "cached.png", 10, 10)

	images := cache.NewLRU(4)
	pool := NewPool(1, 0, images)
	defer pool.Close()

	results := make(chan model.DecodeResult, 1)
	pool.Submit(Task{JobID: "j", Index: 0, Source: src, Results: results})
	first := <-results
	if first.Failed() {
		t.Fatalf("first decode failed: %v", first.Err)
	}

	// Delete the file; a cache hit must still succeed.
	if err := os.Remove(src.Path); err != nil {
		t.Fatal(err)
	}

	pool.Submit(Task{JobID: "j", Index: 1, Source: src, Results: results})
	second := <-results
	if second.Failed() {
		t.Errorf("expected cache hit after file removal, got error: %v", second.Err)
	}
}
