package platform

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
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

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	// Should end with "Downloads"
	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.png")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "Apollo 11 Launch", "Apollo 11 Launch"},
		{"invalid characters", `Mars: "Curiosity" <rover>/arm?`, "Mars_ _Curiosity_ _rover__arm_"},
		{"collapses whitespace", "  Saturn \t  rings  ", "Saturn rings"},
		{"trailing dots", "Moon...", "Moon"},
		{"empty", "   ", FallbackFileName},
		{"only dots", "...", FallbackFileName},
		{"unicode kept", "Луна и Земля", "Луна и Земля"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFileName(tt.title); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSanitizeFileName_Length(t *testing.T) {
	got := SanitizeFileName(strings.Repeat("x", 200))
	if len([]rune(got)) != MaxFileNameLength {
		t.Errorf("Expected %d characters, got %d", MaxFileNameLength, len([]rune(got)))
	}
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()

	first, err := UniquePath(dir, "nebula", ".png")
	if err != nil {
		t.Fatalf("UniquePath failed: %v", err)
	}
	if first != filepath.Join(dir, "nebula.png") {
		t.Errorf("Unexpected first path: %s", first)
	}

	if err := os.WriteFile(first, []byte("x"), DefaultFilePermissions); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	second, err := UniquePath(dir, "nebula", ".png")
	if err != nil {
		t.Fatalf("UniquePath failed: %v", err)
	}
	if second != filepath.Join(dir, "nebula (1).png") {
		t.Errorf("Unexpected second path: %s", second)
	}
}

func TestSaveImagePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "pictures")
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})

	path, err := SaveImagePNG(dir, "Earth: rise", img)
	if err != nil {
		t.Fatalf("SaveImagePNG failed: %v", err)
	}
	if filepath.Base(path) != "Earth_ rise.png" {
		t.Errorf("Unexpected file name: %s", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open saved file: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Saved file is not a PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 3 {
		t.Errorf("Unexpected size %v", decoded.Bounds())
	}

	again, err := SaveImagePNG(dir, "Earth: rise", img)
	if err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	if again == path {
		t.Error("Second save should not overwrite the first file")
	}
}

func TestSaveImagePNG_NilImage(t *testing.T) {
	if _, err := SaveImagePNG(t.TempDir(), "nothing", nil); err == nil {
		t.Error("Expected error for nil image")
	}
}
