//go:build linux

package wallpaper

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// linuxDesktop implements Desktop for X11 and the common Wayland compositors.
type linuxDesktop struct {
	run func(name string, args ...string) error
}

// getDesktop returns a new instance of the linuxDesktop struct.
func getDesktop() Desktop {
	return &linuxDesktop{run: runCommand}
}

// SetWallpaper sets the desktop wallpaper on Linux. Only the primary display is addressed.
func (l *linuxDesktop) SetWallpaper(path string, displayID int) error {
	if err := checkDisplayID(displayID); err != nil {
		return err
	}
	cmds, err := linuxWallpaperCommands(detectSession(os.Getenv), path)
	if err != nil {
		return err
	}
	for _, c := range cmds {
		if err := l.run(c[0], c[1:]...); err != nil {
			return fmt.Errorf("failed to set wallpaper with %s: %w", strings.Join(c, " "), err)
		}
	}
	return nil
}

func runCommand(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil && len(out) > 0 {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return err
}
