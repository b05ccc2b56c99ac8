package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySearch           = "search"
	KeySearchHint       = "search_hint"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyAPIEndpoint      = "api_endpoint"
	KeyMediaType        = "media_type"
	KeyRequestTimeout   = "request_timeout"
	KeySaveDirectory    = "save_directory"
	KeyAutoReveal       = "auto_reveal"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyWarning          = "warning"
	KeyLog              = "log"
	KeyResults          = "results"
	KeyPreviewTitle     = "preview_title"
	KeyImageSaved       = "image_saved"
	KeyErrorSavingImage = "error_saving_image"
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

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"pl": "Polski",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "NASA Image Search",
		KeySearch:           "Search",
		KeySearchHint:       "Enter a search phrase (e.g. apollo 11)",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyAPIEndpoint:      "API Endpoint",
		KeyMediaType:        "Media Type",
		KeyRequestTimeout:   "Request Timeout (seconds)",
		KeySaveDirectory:    "Save Directory",
		KeyAutoReveal:       "Reveal saved images",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyWarning:          "Warning",
		KeyLog:              "Log",
		KeyResults:          "Results",
		KeyPreviewTitle:     "Image preview",
		KeyImageSaved:       "Image saved",
		KeyErrorSavingImage: "Error saving image",
	}

	l.texts["pl"] = map[string]string{
		KeyAppTitle:         "Wyszukiwarka zdjęć NASA",
		KeySearch:           "Szukaj",
		KeySearchHint:       "Wpisz frazę do wyszukania (np. apollo 11)",
		KeySettings:         "Ustawienia",
		KeyFile:             "Plik",
		KeyLanguage:         "Język",
		KeyAPIEndpoint:      "Adres API",
		KeyMediaType:        "Typ mediów",
		KeyRequestTimeout:   "Limit czasu żądania (sekundy)",
		KeySaveDirectory:    "Katalog zapisu",
		KeyAutoReveal:       "Pokaż zapisane obrazy",
		KeySave:             "Zapisz",
		KeyCancel:           "Anuluj",
		KeyBrowse:           "Przeglądaj",
		KeySettingsSaved:    "Ustawienia zapisane!",
		KeyWarning:          "Uwaga",
		KeyLog:              "Dziennik",
		KeyResults:          "Wyniki",
		KeyPreviewTitle:     "Podgląd obrazu",
		KeyImageSaved:       "Obraz zapisany",
		KeyErrorSavingImage: "Błąd zapisu obrazu",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Поиск изображений NASA",
		KeySearch:           "Искать",
		KeySearchHint:       "Введите поисковый запрос (например, apollo 11)",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyAPIEndpoint:      "Адрес API",
		KeyMediaType:        "Тип медиа",
		KeyRequestTimeout:   "Таймаут запроса (секунды)",
		KeySaveDirectory:    "Папка сохранения",
		KeyAutoReveal:       "Показывать сохранённые изображения",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyWarning:          "Внимание",
		KeyLog:              "Журнал",
		KeyResults:          "Результаты",
		KeyPreviewTitle:     "Просмотр изображения",
		KeyImageSaved:       "Изображение сохранено",
		KeyErrorSavingImage: "Ошибка сохранения изображения",
	}
}
