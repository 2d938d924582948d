//go:build !darwin

package ui

// trayOS implements the OS interface for Windows and Linux, which have no Dock.
type trayOS struct{}

func (trayOS) TransformToForeground() {}

func (trayOS) TransformToBackground() {}

func getOS() OS {
	return trayOS{}
}
