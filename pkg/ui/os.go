package ui

// OS hides the platform differences of a tray-only application.
type OS interface {
	TransformToForeground() // Give the app a Dock icon while a window is showing.
	TransformToBackground() // Back to a tray-only app.
}

// NewOS returns the OS for the running platform.
func NewOS() OS {
	return getOS()
}
