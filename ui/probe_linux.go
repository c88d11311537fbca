//go:build linux

package ui

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// statusNotifierWatcher is the well-known name tray hosts register on the
// session bus. The Linux tray driver talks only to it.
const statusNotifierWatcher = "org.kde.StatusNotifierWatcher"

// probeTray reports whether a StatusNotifierWatcher is running.
func probeTray() error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect to session bus: %w", err)
	}
	defer conn.Close()

	var owned bool
	if err := conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, statusNotifierWatcher).Store(&owned); err != nil {
		return fmt.Errorf("query %s: %w", statusNotifierWatcher, err)
	}
	if !owned {
		return fmt.Errorf("no %s on the session bus", statusNotifierWatcher)
	}
	return nil
}
