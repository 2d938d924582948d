//go:build windows

package hotkey

import "golang.design/x/hotkey"

const supported = true

const (
	modCtrl = hotkey.ModCtrl
	modAlt  = hotkey.ModAlt

	keyRight = hotkey.KeyRight
	keyDown  = hotkey.KeyDown
)
