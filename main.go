package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/wpget/wp-downloader/internal/classify"
	"github.com/wpget/wp-downloader/internal/config"
	"github.com/wpget/wp-downloader/internal/convert"
	"github.com/wpget/wp-downloader/internal/cookies"
	"github.com/wpget/wp-downloader/internal/download"
	"github.com/wpget/wp-downloader/internal/platform"
	"github.com/wpget/wp-downloader/internal/ui"
	"github.com/wpget/wp-downloader/internal/wattpad"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.wpget.wp-downloader"
	AppName = "Wattpad EPUB Downloader"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	// Initialize services
	metadataClient := wattpad.NewClient("")
	classifier := classify.NewClassifier(metadataClient)
	converter := convert.NewClient(settings.GetBackendURL())

	downloadSvc := download.NewService(downloadsDir, converter)
	downloadSvc.SetTitleFetcher(metadataClient)
	if src := cookieSource(settings); src != nil {
		downloadSvc.SetCookieSource(src)
	}

	// Create and setup UI, then run the one classification pass
	rootUI := ui.NewRootUI(myWindow, myApp, classifier, downloadSvc, metadataClient)
	rootUI.Activate(pageURL())

	myWindow.ShowAndRun()
}

// pageURL returns the page URL the app was pointed at: first command-line
// argument, or the environment variable set by an external trigger.
func pageURL() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return os.Getenv(ui.EnvPageURL)
}

// cookieSource builds the configured browser cookie source, or nil for
// anonymous downloads
func cookieSource(settings *config.Settings) cookies.Source {
	switch settings.GetCookieSource() {
	case config.CookieSourceFile:
		if path := settings.GetCookiesFilePath(); path != "" {
			return cookies.NewFileSource(path)
		}
		return nil
	case config.CookieSourceFirefox:
		return cookies.NewFirefoxSource("")
	default:
		return nil
	}
}
