//go:build !darwin && !windows

package hotkey

import "golang.design/x/hotkey"

// X11 grabs are unreliable under Wayland sessions, so shortcuts stay off here.
const supported = false

const (
	modCtrl = hotkey.Modifier(0)
	modAlt  = hotkey.Modifier(0)

	keyRight = hotkey.Key(0)
	keyDown  = hotkey.Key(0)
)
