//go:build !darwin && !linux && !windows

package ui

type otherOS struct{}

func (o *otherOS) TransformToForeground() {}

func (o *otherOS) TransformToBackground() {}

func getOS() OS {
	return &otherOS{}
}
