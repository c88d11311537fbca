package ui

// OS hides the platform differences in how a tray-only app shows a window.
type OS interface {
	// TransformToForeground makes the app a regular foreground app while a dialog is visible.
	TransformToForeground()
	// TransformToBackground returns the app to tray-only mode.
	TransformToBackground()
}
