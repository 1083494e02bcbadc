package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/wpget/wp-downloader/internal/convert"
	"github.com/wpget/wp-downloader/internal/platform"
)

// CookieSourceKind selects where browser cookies come from
type CookieSourceKind string

const (
	CookieSourceNone    CookieSourceKind = "none"
	CookieSourceFile    CookieSourceKind = "file"
	CookieSourceFirefox CookieSourceKind = "firefox"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir     = "download_directory"
	KeyEmbedImages     = "embed_images"
	KeyBackendURL      = "backend_url"
	KeyCookieSource    = "cookie_source"
	KeyCookiesFilePath = "cookies_file_path"
)

// Default values
const (
	DefaultEmbedImages  = true
	DefaultCookieSource = CookieSourceFirefox
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetEmbedImages returns whether story images are embedded into the book
func (s *Settings) GetEmbedImages() bool {
	return s.app.Preferences().BoolWithFallback(KeyEmbedImages, DefaultEmbedImages)
}

// SetEmbedImages sets the embed images flag
func (s *Settings) SetEmbedImages(embed bool) {
	s.app.Preferences().SetBool(KeyEmbedImages, embed)
}

// GetBackendURL returns the conversion backend base URL
func (s *Settings) GetBackendURL() string {
	url := strings.TrimSpace(s.app.Preferences().String(KeyBackendURL))
	if url == "" {
		return convert.DefaultBackendURL
	}
	return strings.TrimRight(url, "/")
}

// SetBackendURL sets the conversion backend base URL
func (s *Settings) SetBackendURL(url string) {
	s.app.Preferences().SetString(KeyBackendURL, strings.TrimSpace(url))
}

// GetCookieSource returns the configured cookie source kind
func (s *Settings) GetCookieSource() CookieSourceKind {
	kind := CookieSourceKind(s.app.Preferences().String(KeyCookieSource))
	switch kind {
	case CookieSourceNone, CookieSourceFile, CookieSourceFirefox:
		return kind
	default:
		return DefaultCookieSource
	}
}

// SetCookieSource sets the cookie source kind; unknown values reset to the
// default.
func (s *Settings) SetCookieSource(kind CookieSourceKind) {
	switch kind {
	case CookieSourceNone, CookieSourceFile, CookieSourceFirefox:
	default:
		kind = DefaultCookieSource
	}
	s.app.Preferences().SetString(KeyCookieSource, string(kind))
}

// GetCookiesFilePath returns the configured cookies.txt path
func (s *Settings) GetCookiesFilePath() string {
	return s.app.Preferences().String(KeyCookiesFilePath)
}

// SetCookiesFilePath sets the cookies.txt path
func (s *Settings) SetCookiesFilePath(path string) {
	s.app.Preferences().SetString(KeyCookiesFilePath, strings.TrimSpace(path))
}

// GetCookieSourceOptions returns the selectable cookie source kinds
func (s *Settings) GetCookieSourceOptions() []CookieSourceKind {
	return []CookieSourceKind{CookieSourceFirefox, CookieSourceFile, CookieSourceNone}
}
