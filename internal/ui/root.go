package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wpget/wp-downloader/internal/classify"
	"github.com/wpget/wp-downloader/internal/config"
	"github.com/wpget/wp-downloader/internal/download"
	"github.com/wpget/wp-downloader/internal/model"
	"github.com/wpget/wp-downloader/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	classifier   *classify.Classifier
	downloadSvc  download.Downloader
	titles       download.TitleFetcher // optional, header display only

	page model.StoryPage

	// content is swapped wholesale on every state transition
	content *fyne.Container

	titleLabel  *widget.Label
	embedCheck  *widget.Check
	downloadBtn *widget.Button
	resultLabel *widget.Label
	revealBtn   *widget.Button

	lastOutputPath string

	// openInManager is swappable in tests
	openInManager func(path string) error
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, classifier *classify.Classifier, downloadSvc download.Downloader, titles download.TitleFetcher) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()

	ui := &RootUI{
		window:        window,
		settings:      settings,
		localization:  localization,
		classifier:    classifier,
		downloadSvc:   downloadSvc,
		titles:        titles,
		page:          model.StoryPage{Status: model.PageStatusUnknown},
		content:       container.NewStack(),
		openInManager: platform.OpenFileInManager,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Keep the action button in sync with the download slot
	ui.downloadSvc.SetUpdateCallback(ui.onDownloadStatusChange)

	ui.setupUI()
	return ui
}

// setupUI arranges the static shell and the swappable state view
func (ui *RootUI) setupUI() {
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil, settingsBtn,
		widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	ui.renderLoading()

	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, ui.content))
	log.Printf("UI setup completed successfully")
}

// Activate runs the single classification pass for the given page URL and
// renders the outcome. It is called once per app start; later URL changes do
// not re-trigger it.
func (ui *RootUI) Activate(pageURL string) {
	if pageURL == "" {
		if os.Getenv(EnvDevMode) != "" {
			log.Printf("No page URL, dev mode active: using placeholder story")
			ui.applyPage(ui.classifier.Placeholder())
			return
		}
		ui.applyPage(model.StoryPage{Status: model.PageStatusInvalid})
		return
	}

	go func() {
		page := ui.classifier.Classify(context.Background(), pageURL)
		fyne.Do(func() {
			ui.applyPage(page)
		})
	}()
}

// applyPage stores the classification result and renders the matching view
func (ui *RootUI) applyPage(page model.StoryPage) {
	ui.page = page
	log.Printf("Page classified as %s (story id: %q)", page.Status, page.StoryID)

	switch page.Status {
	case model.PageStatusValid:
		ui.renderReady()
		ui.fetchTitle()
	case model.PageStatusInvalid:
		ui.renderInvalid()
	default:
		ui.renderLoading()
	}
}

// renderLoading shows the placeholder used before classification resolves
func (ui *RootUI) renderLoading() {
	spinner := widget.NewProgressBarInfinite()
	label := widget.NewLabelWithStyle(ui.localization.GetText(KeyLoading), fyne.TextAlignCenter, fyne.TextStyle{})
	ui.swapContent(container.NewVBox(label, spinner))
}

// renderInvalid shows the static not-a-story-page message
func (ui *RootUI) renderInvalid() {
	label := widget.NewLabelWithStyle(ui.localization.GetText(KeyInvalidPage), fyne.TextAlignCenter, fyne.TextStyle{})
	label.Wrapping = fyne.TextWrapWord
	ui.swapContent(container.NewCenter(label))
}

// renderReady shows the action panel for a valid story page
func (ui *RootUI) renderReady() {
	logoBox := ui.buildLogo()

	ui.titleLabel = widget.NewLabelWithStyle(ui.page.GetDisplayTitle(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.titleLabel.Wrapping = fyne.TextWrapWord

	ui.embedCheck = widget.NewCheck(ui.localization.GetText(KeyEmbedImages), func(checked bool) {
		ui.settings.SetEmbedImages(checked)
	})
	ui.embedCheck.SetChecked(ui.settings.GetEmbedImages())

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.resultLabel = widget.NewLabel("")
	ui.resultLabel.Hide()
	ui.revealBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyRevealFile), ui.onRevealFile)
	ui.revealBtn.Hide()

	ui.swapContent(container.NewVBox(
		logoBox,
		ui.titleLabel,
		ui.embedCheck,
		ui.downloadBtn,
		ui.resultLabel,
		ui.revealBtn,
	))
}

// buildLogo returns the logo image, or a book glyph when the asset is absent
func (ui *RootUI) buildLogo() fyne.CanvasObject {
	logo, err := LoadLogoResource()
	if err != nil {
		return container.NewCenter(widget.NewLabelWithStyle(IconBook, fyne.TextAlignCenter, fyne.TextStyle{}))
	}
	logoImage := canvas.NewImageFromResource(logo)
	logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	logoImage.FillMode = canvas.ImageFillContain
	return container.NewCenter(logoImage)
}

// swapContent replaces the state view
func (ui *RootUI) swapContent(view fyne.CanvasObject) {
	ui.content.Objects = []fyne.CanvasObject{view}
	ui.content.Refresh()
}

// fetchTitle fills the header with the story title; failure keeps the
// id-based placeholder.
func (ui *RootUI) fetchTitle() {
	if ui.titles == nil {
		return
	}
	storyID := ui.page.StoryID
	go func() {
		title, err := ui.titles.StoryTitle(context.Background(), storyID)
		if err != nil {
			log.Printf("Title lookup for story %s failed: %v", storyID, err)
			return
		}
		fyne.Do(func() {
			if ui.page.StoryID == storyID && ui.titleLabel != nil {
				ui.page.Title = title
				ui.titleLabel.SetText(title)
			}
		})
	}()
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	if ui.page.Status != model.PageStatusValid {
		return
	}
	storyID := ui.page.StoryID
	embedImages := ui.settings.GetEmbedImages()

	ui.resultLabel.Hide()
	ui.revealBtn.Hide()

	go func() {
		result, err := ui.downloadSvc.Start(context.Background(), storyID, embedImages)
		if err != nil {
			if errors.Is(err, download.ErrDownloadInProgress) {
				// UI disablement normally prevents this; nothing to do
				return
			}
			log.Printf("Download of story %s failed: %v", storyID, err)
			fyne.Do(func() {
				dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyDownloadFailed), err), ui.window)
			})
			return
		}

		fyne.Do(func() {
			ui.lastOutputPath = result.OutputPath
			ui.resultLabel.SetText(ui.localization.GetText(KeySaved) + ": " + result.Filename)
			ui.resultLabel.Show()
			ui.revealBtn.Show()
		})
	}()
}

// onDownloadStatusChange disables the action button while the download slot
// is busy. Called from the download goroutine.
func (ui *RootUI) onDownloadStatusChange(status model.DownloadStatus) {
	fyne.Do(func() {
		if ui.downloadBtn == nil {
			return
		}
		if status.IsBusy() {
			ui.downloadBtn.SetText(ui.localization.GetText(KeyDownloading))
			ui.downloadBtn.Disable()
		} else {
			ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
			ui.downloadBtn.Enable()
		}
	})
}

// onRevealFile highlights the finished book in the system file manager
func (ui *RootUI) onRevealFile() {
	if ui.lastOutputPath == "" {
		return
	}
	if err := ui.openInManager(ui.lastOutputPath); err != nil {
		log.Printf("Failed to reveal %s: %v", ui.lastOutputPath, err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}
