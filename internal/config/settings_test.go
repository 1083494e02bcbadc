package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/wpget/wp-downloader/internal/convert"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	if got := settings.GetDownloadDirectory(); got != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, got)
	}
}

func TestEmbedImages(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetEmbedImages() != DefaultEmbedImages {
		t.Errorf("Expected default embed images %v", DefaultEmbedImages)
	}

	settings.SetEmbedImages(false)
	if settings.GetEmbedImages() {
		t.Error("Expected embed images to be false after set")
	}

	settings.SetEmbedImages(true)
	if !settings.GetEmbedImages() {
		t.Error("Expected embed images to be true after set")
	}
}

func TestBackendURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default
	if got := settings.GetBackendURL(); got != convert.DefaultBackendURL {
		t.Errorf("Expected default backend URL %s, got %s", convert.DefaultBackendURL, got)
	}

	// Custom value, trailing slash normalized away
	settings.SetBackendURL("https://example.com/api/")
	if got := settings.GetBackendURL(); got != "https://example.com/api" {
		t.Errorf("Expected normalized URL, got %s", got)
	}

	// Whitespace-only resets to default
	settings.SetBackendURL("   ")
	if got := settings.GetBackendURL(); got != convert.DefaultBackendURL {
		t.Errorf("Expected default backend URL after clearing, got %s", got)
	}
}

func TestCookieSource(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetCookieSource(); got != DefaultCookieSource {
		t.Errorf("Expected default cookie source %s, got %s", DefaultCookieSource, got)
	}

	settings.SetCookieSource(CookieSourceFile)
	if got := settings.GetCookieSource(); got != CookieSourceFile {
		t.Errorf("Expected cookie source file, got %s", got)
	}

	// Unknown values reset to the default
	settings.SetCookieSource(CookieSourceKind("chrome"))
	if got := settings.GetCookieSource(); got != DefaultCookieSource {
		t.Errorf("Expected default after unknown kind, got %s", got)
	}
}

func TestCookiesFilePath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetCookiesFilePath() != "" {
		t.Error("Expected empty cookies file path by default")
	}

	settings.SetCookiesFilePath("  /home/user/cookies.txt  ")
	if got := settings.GetCookiesFilePath(); got != "/home/user/cookies.txt" {
		t.Errorf("Expected trimmed path, got %q", got)
	}
}
