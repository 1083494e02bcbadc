package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b", "c")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Second call on an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	dir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasSuffix(dir, "Downloads") {
		t.Errorf("Expected path ending in 'Downloads', got '%s'", dir)
	}
}

func TestFindFirefoxProfile(t *testing.T) {
	root := t.TempDir()

	oldProfile := filepath.Join(root, "abc123.default")
	newProfile := filepath.Join(root, "xyz789.default-release")
	emptyProfile := filepath.Join(root, "no-cookies.default")
	for _, dir := range []string{oldProfile, newProfile, emptyProfile} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}

	oldStore := filepath.Join(oldProfile, "cookies.sqlite")
	newStore := filepath.Join(newProfile, "cookies.sqlite")
	for _, store := range []string{oldStore, newStore} {
		if err := os.WriteFile(store, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Make the release profile's store clearly newer
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(oldStore, past, past); err != nil {
		t.Fatal(err)
	}

	found, err := FindFirefoxProfile(root)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if found != newProfile {
		t.Errorf("Expected most recent profile %s, got %s", newProfile, found)
	}
}

func TestFindFirefoxProfile_NoProfiles(t *testing.T) {
	if _, err := FindFirefoxProfile(t.TempDir()); err == nil {
		t.Error("Expected error when no profile has a cookie store")
	}
}

func TestFindFirefoxProfile_MissingRoot(t *testing.T) {
	if _, err := FindFirefoxProfile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing profiles directory")
	}
}
