//go:build darwin

package hotkey

import "golang.design/x/hotkey"

const supported = true

const (
	modCtrl = hotkey.ModCmd
	modAlt  = hotkey.ModOption

	keyRight = hotkey.KeyRight
	keyDown  = hotkey.KeyDown
)
