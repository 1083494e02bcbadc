package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wpget/wp-downloader/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	backendURLEntry  *widget.Entry
	downloadDirEntry *widget.Entry
	cookieSelect     *widget.Select
	cookiesFileEntry *widget.Entry
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI(localization)
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI(localization *Localization) {
	sd.backendURLEntry = widget.NewEntry()
	sd.backendURLEntry.SetPlaceHolder("https://…")

	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder(localization.GetText(KeyDownloadDir))

	cookieOptions := []string{}
	for _, kind := range sd.settings.GetCookieSourceOptions() {
		cookieOptions = append(cookieOptions, string(kind))
	}
	sd.cookieSelect = widget.NewSelect(cookieOptions, func(selected string) {
		// cookies.txt path only matters for the file source
		if selected == string(config.CookieSourceFile) {
			sd.cookiesFileEntry.Enable()
		} else {
			sd.cookiesFileEntry.Disable()
		}
	})

	sd.cookiesFileEntry = widget.NewEntry()
	sd.cookiesFileEntry.SetPlaceHolder("~/cookies.txt")

	form := container.NewVBox(
		widget.NewLabel(localization.GetText(KeyBackendURL)),
		sd.backendURLEntry,
		widget.NewLabel(localization.GetText(KeyDownloadDir)),
		sd.downloadDirEntry,
		widget.NewLabel(localization.GetText(KeyCookieSource)),
		sd.cookieSelect,
		widget.NewLabel(localization.GetText(KeyCookiesFilePath)),
		sd.cookiesFileEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		localization.GetText(KeySettings),
		localization.GetText(KeySave),
		localization.GetText(KeyCancel),
		form,
		func(save bool) {
			if save {
				sd.saveSettings()
			}
		},
		sd.window,
	)
}

// loadCurrentSettings fills the dialog with the stored values
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendURLEntry.SetText(sd.settings.GetBackendURL())
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.cookieSelect.SetSelected(string(sd.settings.GetCookieSource()))
	sd.cookiesFileEntry.SetText(sd.settings.GetCookiesFilePath())
}

// saveSettings persists the dialog values
func (sd *SettingsDialog) saveSettings() {
	sd.settings.SetBackendURL(sd.backendURLEntry.Text)
	sd.settings.SetDownloadDirectory(sd.downloadDirEntry.Text)
	sd.settings.SetCookieSource(config.CookieSourceKind(sd.cookieSelect.Selected))
	sd.settings.SetCookiesFilePath(sd.cookiesFileEntry.Text)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
