package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconBook     = "📖"
	IconFolder   = "📁"
	IconError    = "❌"
)

// Layout sizing
const (
	WindowWidth  float32 = 360
	WindowHeight float32 = 280

	LogoSize float32 = 48
)

// Popup behavior
const (
	// EnvPageURL carries the page URL when the app is launched by an
	// external trigger instead of a command-line argument.
	EnvPageURL = "WP_DOWNLOADER_URL"

	// EnvDevMode enables the placeholder-story fallback for development
	// sessions without a page URL.
	EnvDevMode = "WP_DOWNLOADER_DEV"
)
