package config

import "fyne.io/fyne/v2"

// Theme names accepted by SetTheme.
const (
	ThemeSystem = "System"
	ThemeLight  = "Light"
	ThemeDark   = "Dark"
)

// Themes lists the selectable themes in display order.
var Themes = []string{ThemeSystem, ThemeLight, ThemeDark}

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// AppUpdateCheckEnabledKey is the key for the startup update check preference
const AppUpdateCheckEnabledKey = "app_update_check_enabled"

// GetUpdateCheckEnabled returns whether the application should check for updates at startup
func (c *AppConfig) GetUpdateCheckEnabled() bool {
	return c.prefs.BoolWithFallback(AppUpdateCheckEnabledKey, true)
}

// SetUpdateCheckEnabled sets whether the application should check for updates at startup
func (c *AppConfig) SetUpdateCheckEnabled(enabled bool) {
	c.prefs.SetBool(AppUpdateCheckEnabledKey, enabled)
}

// AppThemeKey is the key for the app theme preference
const AppThemeKey = "app_theme"

// GetTheme returns the current application theme. Unknown stored values read as ThemeSystem.
func (c *AppConfig) GetTheme() string {
	t := c.prefs.StringWithFallback(AppThemeKey, ThemeSystem)
	for _, known := range Themes {
		if t == known {
			return t
		}
	}
	return ThemeSystem
}

// SetTheme sets the application theme
func (c *AppConfig) SetTheme(theme string) {
	c.prefs.SetString(AppThemeKey, theme)
}
