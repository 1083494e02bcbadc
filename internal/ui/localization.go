package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyLoading         = "loading"
	KeyInvalidPage     = "invalid_page"
	KeyDownload        = "download"
	KeyDownloading     = "downloading"
	KeyEmbedImages     = "embed_images"
	KeySettings        = "settings"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyDownloadFailed  = "download_failed"
	KeySaved           = "saved"
	KeyRevealFile      = "reveal_file"
	KeyBackendURL      = "backend_url"
	KeyDownloadDir     = "download_directory"
	KeyCookieSource    = "cookie_source"
	KeyCookiesFilePath = "cookies_file_path"
	KeySettingsSaved   = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts fills the translation tables
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Wattpad EPUB Downloader",
		KeyLoading:         "Checking page…",
		KeyInvalidPage:     "This is not a Wattpad story page.\nOpen a story or a chapter and try again.",
		KeyDownload:        "Download EPUB",
		KeyDownloading:     "Downloading…",
		KeyEmbedImages:     "Embed images",
		KeySettings:        "Settings",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyDownloadFailed:  "Download failed",
		KeySaved:           "Saved",
		KeyRevealFile:      "Show in folder",
		KeyBackendURL:      "Backend URL",
		KeyDownloadDir:     "Download directory",
		KeyCookieSource:    "Browser cookies",
		KeyCookiesFilePath: "cookies.txt path",
		KeySettingsSaved:   "Settings saved",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Загрузчик EPUB для Wattpad",
		KeyLoading:         "Проверка страницы…",
		KeyInvalidPage:     "Это не страница истории Wattpad.\nОткройте историю или главу и попробуйте снова.",
		KeyDownload:        "Скачать EPUB",
		KeyDownloading:     "Загрузка…",
		KeyEmbedImages:     "Встраивать изображения",
		KeySettings:        "Настройки",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyDownloadFailed:  "Не удалось скачать",
		KeySaved:           "Сохранено",
		KeyRevealFile:      "Показать в папке",
		KeyBackendURL:      "Адрес сервера",
		KeyDownloadDir:     "Папка загрузок",
		KeyCookieSource:    "Cookies браузера",
		KeyCookiesFilePath: "Путь к cookies.txt",
		KeySettingsSaved:   "Настройки сохранены",
	}
}
