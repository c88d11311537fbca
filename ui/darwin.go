//go:build darwin
// +build darwin

package ui

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation -framework AppKit

#import <AppKit/AppKit.h>

// Regular apps have a Dock icon and a menu bar.
const NSApplicationActivationPolicy Regular = NSApplicationActivationPolicyRegular;

// Accessory apps have no Dock icon and stay out of the Force Quit window.
const NSApplicationActivationPolicy Accessory = NSApplicationActivationPolicyAccessory;

// setActivationPolicy switches policy and activates the app so the change sticks.
void setActivationPolicy(NSApplicationActivationPolicy policy) {
    [NSApp setActivationPolicy:policy];
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// darwinOS implements the OS interface for macOS.
type darwinOS struct{}

// TransformToForeground gives the app a Dock icon so the dialog can take focus.
func (d *darwinOS) TransformToForeground() {
	C.setActivationPolicy(C.Regular)
}

// TransformToBackground hides the Dock icon again.
func (d *darwinOS) TransformToBackground() {
	C.setActivationPolicy(C.Accessory)
}

func getOS() OS {
	return &darwinOS{}
}
