//go:build darwin

package ui

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation -framework AppKit

#import <AppKit/AppKit.h>

// NSApplicationActivationPolicyRegular is a normal, foreground application.
const NSApplicationActivationPolicy Regular = 0;

// NSApplicationActivationPolicyAccessory has no Dock icon, like a menu bar extra.
const NSApplicationActivationPolicy Accessory = 1;

void setActivationPolicy(long policy) {
    [NSApp setActivationPolicy:policy];
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// darwinOS implements the OS interface for macOS.
type darwinOS struct{}

// TransformToForeground changes the application to be a regular app with a Dock icon.
func (d *darwinOS) TransformToForeground() {
	C.setActivationPolicy(C.Regular)
}

// TransformToBackground changes the application to be a menu bar only app.
func (d *darwinOS) TransformToBackground() {
	C.setActivationPolicy(C.Accessory)
}

func getOS() OS {
	return &darwinOS{}
}
