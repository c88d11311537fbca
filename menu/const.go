package menu

import "time"

// Menu item labels.
const (
	settingsLabel        = "Settings…"
	aboutLabel           = "About"
	checkUpdatesLabel    = "Check for Updates"
	updateMenuItemPrefix = "Update to "
	quitLabel            = "Quit"
)

// AboutTab is the dialog tab the About item opens.
const AboutTab = "About"

// PreferencesTab is the dialog tab the Settings item opens.
const PreferencesTab = "Preferences"

// updateCheckTimeout bounds a single release query.
const updateCheckTimeout = 15 * time.Second
