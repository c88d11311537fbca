package ui

import "fyne.io/fyne/v2"

// TrayHost is the host desktop's tray surface. A fyne app that implements
// desktop.App satisfies it.
type TrayHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// trayIcon is the process-lifetime tray handle. It references the menu
// owned by the Shell and never owns it.
type trayIcon struct {
	host    TrayHost
	icon    fyne.Resource
	tooltip string
	menu    *fyne.Menu
	visible bool
}

func newTrayIcon(host TrayHost, icon fyne.Resource, tooltip string) *trayIcon {
	return &trayIcon{host: host, icon: icon, tooltip: tooltip}
}

// attach points the host tray at m. Calling it again with the same menu
// pushes item changes to the host.
func (t *trayIcon) attach(m *fyne.Menu) {
	if m.Label == "" {
		m.Label = t.tooltip
	}
	t.host.SetSystemTrayMenu(m)
	t.menu = m
}

// detach swaps the owned menu for an empty placeholder so the host never
// holds a released menu.
func (t *trayIcon) detach() {
	if t.menu == nil {
		return
	}
	t.host.SetSystemTrayMenu(fyne.NewMenu(t.tooltip))
	t.menu = nil
}

func (t *trayIcon) show() {
	if t.icon != nil {
		t.host.SetSystemTrayIcon(t.icon)
	}
	t.visible = true
}

// destroy releases the handle. The native icon goes away with the runtime.
func (t *trayIcon) destroy() {
	t.detach()
	t.visible = false
	t.icon = nil
	t.host = nil
}
