//go:build !linux && !darwin && !windows

package wallpaper

import (
	"fmt"
	"runtime"
)

type unsupportedDesktop struct{}

func getDesktop() Desktop {
	return unsupportedDesktop{}
}

func (unsupportedDesktop) SetWallpaper(path string, displayID int) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedDesktop, runtime.GOOS)
}
