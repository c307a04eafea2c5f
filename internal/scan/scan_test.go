package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"photo.png", true},
		{"photo.PNG", true},
		{"photo.jpeg", true},
		{"photo.Jpg", true},
		{"icon.xpm", true},
		{"scan.bmp", true},
		{"anim.gif", true},
		{"movie.mp4", false},
		{"notes.txt", false},
		{"noext", false},
	}

	for _, test := range tests {
		if got := IsSupported(test.name); got != test.expected {
			t.Errorf("IsSupported(%s) = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestScan_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()

	files := []string{"b.png", "a.jpg", "c.GIF", "skip.txt", "d.bmp"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	// A supported file inside a subfolder must not be picked up.
	if err := os.WriteFile(filepath.Join(dir, "sub", "nested.png"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	paths, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	expected := []string{"a.jpg", "b.png", "c.GIF", "d.bmp"}
	if len(paths) != len(expected) {
		t.Fatalf("Scan returned %d paths, expected %d", len(paths), len(expected))
	}
	for i, name := range expected {
		if filepath.Base(paths[i].Path) != name {
			t.Errorf("paths[%d] = %s, expected %s", i, filepath.Base(paths[i].Path), name)
		}
		if !filepath.IsAbs(paths[i].Path) {
			t.Errorf("paths[%d] = %s is not absolute", i, paths[i].Path)
		}
	}

	if paths[2].Ext != ".gif" {
		t.Errorf("Ext for c.GIF = %s, expected .gif", paths[2].Ext)
	}
}

func TestScan_EmptyFolder(t *testing.T) {
	paths, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("Scan of empty folder returned %d paths, expected 0", len(paths))
	}
}

func TestScan_UnreadableRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("Scan of missing folder returned nil error")
	}
	if !errors.Is(err, ErrDirectoryUnreadable) {
		t.Errorf("Scan error = %v, expected ErrDirectoryUnreadable", err)
	}
}
