//go:build darwin

package wallpaper

import (
	"fmt"
	"os/exec"
)

// macOSDesktop implements Desktop for macOS.
type macOSDesktop struct{}

// getDesktop returns a new instance of the macOSDesktop struct.
func getDesktop() Desktop {
	return &macOSDesktop{}
}

// SetWallpaper sets the desktop picture of the given display using AppleScript.
func (m *macOSDesktop) SetWallpaper(path string, displayID int) error {
	if err := checkDisplayID(displayID); err != nil {
		return err
	}
	cmd := exec.Command("osascript", "-e", appleScriptFor(path, displayID))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w: %s", err, out)
	}
	return nil
}
