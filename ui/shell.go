// Package ui owns the application shell: the tray icon, the tray menu
// attached to it and the on-demand settings dialog.
//
// All Shell methods must run on the fyne event thread. Background work
// hands results back with fyne.Do.
package ui

import (
	"errors"
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"

	"github.com/projecteur/projecteur/util/log"
)

// MenuBuilder supplies the finished tray menu. It wires its items into the
// callbacks in Actions.
type MenuBuilder interface {
	BuildMenu(actions Actions) *fyne.Menu
}

// Actions is the callback surface the shell exposes to menu items.
type Actions struct {
	ShowDialog  func()
	Quit        func()
	RefreshMenu func()
	OpenURL     func(*url.URL) error
}

// Options configures a Shell.
type Options struct {
	// Args is the process argument vector. The shell does not interpret it.
	Args []string
	// Icon is the tray icon image.
	Icon fyne.Resource
	// Tooltip is the tray status text.
	Tooltip string
	// DialogTitle is the title of the dialog window.
	DialogTitle string
	// Menu builds the tray menu. Nil gives a menu with a single quit item.
	Menu MenuBuilder
	// Dialog populates the dialog window. Required.
	Dialog DialogContent
	// Probe checks for host tray support. Nil uses the platform check.
	Probe func() error
}

// Shell coordinates the tray icon, the tray menu and the dialog for the
// lifetime of the process. Create one with New and pass it by reference.
type Shell struct {
	app    fyne.App
	args   []string
	os     OS
	tray   *trayIcon
	menu   *fyne.Menu
	dialog *dialogSlot
	closed bool
}

// New creates the shell, builds the tray menu and shows the tray icon. The
// dialog is created on first use.
//
// If the host has no tray support, New returns a usable Shell without tray
// presence together with an error matching ErrTrayUnavailable. The caller
// decides whether to continue or Close it.
func New(a fyne.App, opts Options) (*Shell, error) {
	if opts.Dialog == nil {
		return nil, errors.New("ui: dialog content is required")
	}

	s := &Shell{
		app:    a,
		args:   opts.Args,
		os:     getOS(),
		dialog: newDialogSlot(a, opts.DialogTitle, opts.Dialog),
	}
	s.dialog.onShown = func() { s.os.TransformToForeground() }
	s.dialog.onHidden = func() { s.os.TransformToBackground() }
	s.chainOnStopped(a.Lifecycle())

	log.Debugf("Starting shell with args %q", s.args)

	host, err := trayHost(a, opts.Probe)
	if err != nil {
		log.Printf("Tray icon not supported: %v", err)
		return s, err
	}

	if opts.Menu != nil {
		s.menu = opts.Menu.BuildMenu(s.Actions())
	}
	if s.menu == nil {
		quit := fyne.NewMenuItem(quitMenuLabel, s.Quit)
		quit.IsQuit = true
		s.menu = fyne.NewMenu(opts.Tooltip, quit)
	}

	s.tray = newTrayIcon(host, opts.Icon, opts.Tooltip)
	s.tray.attach(s.menu)
	s.tray.show()
	s.os.TransformToBackground()
	return s, nil
}

// chainOnStopped makes the lifecycle stopped hook tear the shell down before
// running any hook set earlier.
func (s *Shell) chainOnStopped(lc fyne.Lifecycle) {
	var prev func()
	if hooks, ok := lc.(interface{ OnStopped() func() }); ok {
		prev = hooks.OnStopped()
	}
	lc.SetOnStopped(func() {
		s.Close()
		if prev != nil {
			prev()
		}
	})
}

// trayHost returns the app's tray surface once the host passes the probe.
func trayHost(a fyne.App, probe func() error) (TrayHost, error) {
	host, ok := a.(TrayHost)
	if !ok {
		return nil, fmt.Errorf("%w: driver has no tray support", ErrTrayUnavailable)
	}
	if probe == nil {
		probe = probeTray
	}
	if err := probe(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTrayUnavailable, err)
	}
	return host, nil
}

// Actions returns the callbacks menu items use to drive the shell.
func (s *Shell) Actions() Actions {
	return Actions{
		ShowDialog: func() {
			// Failures are logged by ShowDialog.
			_ = s.ShowDialog()
		},
		Quit:        s.Quit,
		RefreshMenu: s.RefreshMenu,
		OpenURL:     s.app.OpenURL,
	}
}

// ShowDialog shows the dialog, creating it if none is alive. An existing
// dialog is raised and focused, never duplicated.
func (s *Shell) ShowDialog() error {
	if s.closed {
		return ErrClosed
	}
	if err := s.dialog.show(); err != nil {
		log.Printf("Failed to show dialog: %v", err)
		return err
	}
	return nil
}

// HideDialog hides the dialog if it is visible.
func (s *Shell) HideDialog() {
	s.dialog.hide()
}

// RefreshMenu pushes changes made to the tray menu items to the host.
func (s *Shell) RefreshMenu() {
	if s.tray == nil || s.menu == nil {
		return
	}
	s.tray.attach(s.menu)
}

// Quit tears the shell down and stops the event loop.
func (s *Shell) Quit() {
	s.Close()
	s.app.Quit()
}

// Close tears the shell down: the dialog first, then the menu is detached
// from the icon and released, then the icon. Later calls are no-ops.
func (s *Shell) Close() {
	if s.closed {
		return
	}
	s.closed = true

	s.dialog.destroy()
	if s.tray != nil {
		s.tray.detach()
	}
	s.menu = nil
	if s.tray != nil {
		s.tray.destroy()
		s.tray = nil
	}
	log.Println("Shell closed")
}

// Closed reports whether Close has run.
func (s *Shell) Closed() bool {
	return s.closed
}

// TrayVisible reports whether the tray icon is shown.
func (s *Shell) TrayVisible() bool {
	return s.tray != nil && s.tray.visible
}

// Menu returns the owned tray menu, or nil without tray or after Close.
func (s *Shell) Menu() *fyne.Menu {
	return s.menu
}

// HasDialog reports whether a dialog instance is alive.
func (s *Shell) HasDialog() bool {
	return s.dialog.win != nil
}

// DialogVisible reports whether the dialog is alive and shown.
func (s *Shell) DialogVisible() bool {
	return s.dialog.win != nil && s.dialog.visible
}

// DialogID returns the ID of the live dialog instance, or "".
func (s *Shell) DialogID() string {
	return s.dialog.id
}

// DialogsCreated returns how many dialog instances have been created.
func (s *Shell) DialogsCreated() int {
	return s.dialog.created
}
