//go:build !linux

package ui

// probeTray always succeeds; macOS and Windows always have a tray area.
func probeTray() error {
	return nil
}
