package ui

import "errors"

var (
	// ErrTrayUnavailable reports that the host desktop cannot present a tray icon.
	// The shell stays usable without tray presence.
	ErrTrayUnavailable = errors.New("system tray unavailable")

	// ErrDialogCreation reports that the dialog content could not be built.
	// No dialog is left behind and showing can be retried.
	ErrDialogCreation = errors.New("dialog creation failed")

	// ErrClosed is returned by operations on a shell that has been torn down.
	ErrClosed = errors.New("shell closed")
)
