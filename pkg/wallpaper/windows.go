//go:build windows

package wallpaper

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	systemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// Windows API constants (defined manually)
const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

// windowsDesktop implements Desktop for Windows.
type windowsDesktop struct{}

// getDesktop returns a new instance of the windowsDesktop struct.
func getDesktop() Desktop {
	return &windowsDesktop{}
}

// SetWallpaper sets the wallpaper to the given image file path. SPI_SETDESKWALLPAPER
// covers every monitor, so only the primary display id is accepted.
func (w *windowsDesktop) SetWallpaper(path string, displayID int) error {
	if err := checkDisplayID(displayID); err != nil {
		return err
	}
	if displayID != PrimaryDisplay {
		return fmt.Errorf("%w: per-display wallpapers", ErrUnsupportedDesktop)
	}
	if err := systemParametersInfo.Find(); err != nil {
		return fmt.Errorf("loading SystemParametersInfoW: %w", err)
	}

	pathUTF16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	ret, _, callErr := systemParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		uintptr(0),
		uintptr(unsafe.Pointer(pathUTF16)),
		uintptr(spifUpdateIniFile|spifSendChange),
	)
	if ret == 0 {
		return fmt.Errorf("SystemParametersInfoW failed: %w", callErr)
	}
	return nil
}
