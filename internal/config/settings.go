package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage          = "app_language"
	KeyFetchOnStart      = "fetch_on_start"
	KeyConfirmBeforeOpen = "confirm_before_open"
)

// Default values
const (
	DefaultLanguage          = "system"
	DefaultFetchOnStart      = true
	DefaultConfirmBeforeOpen = false
)

// Settings manages application configuration. Only UI preferences live here;
// catalog data is never persisted.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
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

// GetFetchOnStart returns whether the catalog is fetched when the app opens
func (s *Settings) GetFetchOnStart() bool {
	return s.app.Preferences().BoolWithFallback(KeyFetchOnStart, DefaultFetchOnStart)
}

// SetFetchOnStart sets whether the catalog is fetched when the app opens
func (s *Settings) SetFetchOnStart(fetch bool) {
	s.app.Preferences().SetBool(KeyFetchOnStart, fetch)
}

// GetConfirmBeforeOpen returns whether a confirmation dialog is shown before
// opening a detail page in the browser
func (s *Settings) GetConfirmBeforeOpen() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmBeforeOpen, DefaultConfirmBeforeOpen)
}

// SetConfirmBeforeOpen sets whether detail pages require confirmation
func (s *Settings) SetConfirmBeforeOpen(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmBeforeOpen, confirm)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ja":     "日本語",
		"ru":     "Русский",
	}
}
