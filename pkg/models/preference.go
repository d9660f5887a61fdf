package models

// ThemeMode is the persisted UI theme preference
type ThemeMode string

const (
	// ThemeModeLight forces the light theme
	ThemeModeLight ThemeMode = "LIGHT"
	// ThemeModeDark forces the dark theme
	ThemeModeDark ThemeMode = "DARK"
	// ThemeModeDefault follows the system setting
	ThemeModeDefault ThemeMode = "DEFAULT"
)
