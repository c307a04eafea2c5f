package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomePicturesDir(t *testing.T) {
	picturesDir, err := GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}

	if picturesDir == "" {
		t.Fatal("Pictures directory is empty")
	}

	if filepath.Base(picturesDir) != "Pictures" {
		t.Errorf("Expected directory to end with 'Pictures', got: %s", picturesDir)
	}
}

func TestConfigFilePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := ConfigFilePath("refboard-test", "favorites.json")
	if err != nil {
		t.Fatalf("Failed to build config file path: %v", err)
	}

	if filepath.Base(path) != "favorites.json" {
		t.Errorf("Expected path to end with favorites.json, got: %s", path)
	}

	// The parent directory must have been created
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("Config directory was not created: %v", err)
	}
}

func TestOpenFolderInManager_NonExistentFolder(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	if err := OpenFolderInManager(missing); err == nil {
		t.Error("Expected error for non-existent folder")
	}
}

func TestOpenFolderInManager_NotAFolder(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := OpenFolderInManager(file); err == nil {
		t.Error("Expected error when path is a file")
	}
}
