package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/nasa-images/internal/nasa"
	"github.com/ytget/nasa-images/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL       = "api_base_url"
	KeyMediaType        = "media_type"
	KeyRequestTimeout   = "request_timeout_seconds"
	KeyLanguage         = "app_language"
	KeySaveDir          = "save_directory"
	KeyAutoRevealOnSave = "auto_reveal_on_save"
)

// Default values
const (
	DefaultAPIBaseURL       = nasa.DefaultBaseURL
	DefaultMediaType        = nasa.DefaultMediaType
	DefaultRequestTimeout   = 30
	DefaultLanguage         = "system"
	DefaultAutoRevealOnSave = true
)

// Request timeout bounds, in seconds
const (
	MinRequestTimeout = 1
	MaxRequestTimeout = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the search endpoint
func (s *Settings) GetAPIBaseURL() string {
	url := s.app.Preferences().String(KeyAPIBaseURL)
	if url == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return url
}

// SetAPIBaseURL sets the search endpoint; empty restores the default
func (s *Settings) SetAPIBaseURL(url string) {
	if url == "" {
		url = DefaultAPIBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetMediaType returns the media_type filter sent with every search
func (s *Settings) GetMediaType() string {
	return s.app.Preferences().StringWithFallback(KeyMediaType, DefaultMediaType)
}

// SetMediaType sets the media_type filter
func (s *Settings) SetMediaType(mediaType string) {
	s.app.Preferences().SetString(KeyMediaType, mediaType)
}

// GetRequestTimeout returns the per-request timeout in seconds
func (s *Settings) GetRequestTimeout() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return value
}

// SetRequestTimeout sets the per-request timeout in seconds
func (s *Settings) SetRequestTimeout(seconds int) {
	if seconds < MinRequestTimeout {
		seconds = MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// RequestTimeout returns the timeout as a duration
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeout()) * time.Second
}

// GetSaveDirectory returns the directory previews are saved into
func (s *Settings) GetSaveDirectory() string {
	dir := s.app.Preferences().String(KeySaveDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetSaveDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSaveDirectory sets the save directory
func (s *Settings) SetSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeySaveDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnSave returns whether saved previews are revealed in the file manager
func (s *Settings) GetAutoRevealOnSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealOnSave, DefaultAutoRevealOnSave)
}

// SetAutoRevealOnSave sets whether saved previews are revealed in the file manager
func (s *Settings) SetAutoRevealOnSave(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealOnSave, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pl":     "Polski",
		"ru":     "Русский",
	}
}

// ClientOptions returns the transport options matching the current settings
func (s *Settings) ClientOptions() []nasa.Option {
	return []nasa.Option{
		nasa.WithBaseURL(s.GetAPIBaseURL()),
		nasa.WithMediaType(s.GetMediaType()),
		nasa.WithTimeout(s.RequestTimeout()),
	}
}
