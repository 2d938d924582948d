package wallpaper

import (
	"fmt"
	"strconv"
	"strings"
)

// Desktop sets the operating system wallpaper. Implementations live in the
// per-platform files.
type Desktop interface {
	SetWallpaper(path string, displayID int) error
}

// NewDesktop returns the Desktop for the running platform.
func NewDesktop() Desktop {
	return getDesktop()
}

func checkDisplayID(displayID int) error {
	if displayID < 0 {
		return fmt.Errorf("invalid display id %d", displayID)
	}
	return nil
}

// appleScriptFor builds the System Events script setting path on the given display.
// AppleScript desktops are 1-based.
func appleScriptFor(path string, displayID int) string {
	return fmt.Sprintf(`tell application "System Events" to tell desktop %d to set picture to POSIX file %s`,
		displayID+1, strconv.Quote(path))
}

// desktopSession describes the Linux graphical session.
type desktopSession struct {
	name    string // lower-cased XDG_CURRENT_DESKTOP or DESKTOP_SESSION
	wayland bool
}

// detectSession reads the session from the environment.
func detectSession(getenv func(string) string) desktopSession {
	name := getenv("XDG_CURRENT_DESKTOP")
	if name == "" {
		name = getenv("DESKTOP_SESSION")
	}
	return desktopSession{
		name:    strings.ToLower(name),
		wayland: getenv("WAYLAND_DISPLAY") != "",
	}
}

// linuxWallpaperCommands returns the commands that set path as wallpaper in session.
func linuxWallpaperCommands(session desktopSession, path string) ([][]string, error) {
	uri := "file://" + path
	gnome := [][]string{
		{"gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri},
		{"gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri},
	}
	name := session.name

	if session.wayland {
		switch {
		case strings.Contains(name, "gnome") || strings.Contains(name, "mutter") || strings.Contains(name, "ubuntu"):
			return gnome, nil
		case strings.Contains(name, "sway"):
			return [][]string{{"swaymsg", "output", "*", "bg", path, "fill"}}, nil
		case strings.Contains(name, "kde"):
			return [][]string{{"plasma-apply-wallpaperimage", path}}, nil
		default:
			return nil, fmt.Errorf("%w: wayland compositor %q", ErrUnsupportedDesktop, name)
		}
	}

	switch {
	case strings.Contains(name, "gnome") || strings.Contains(name, "unity") || strings.Contains(name, "cinnamon") || strings.Contains(name, "ubuntu"):
		return gnome, nil
	case strings.Contains(name, "kde"):
		return [][]string{{"plasma-apply-wallpaperimage", path}}, nil
	case strings.Contains(name, "xfce"):
		return [][]string{{"xfconf-query", "--channel", "xfce4-desktop",
			"--property", "/backdrop/screen0/monitor0/workspace0/last-image", "--set", path}}, nil
	default:
		return nil, fmt.Errorf("%w: X11 desktop environment %q", ErrUnsupportedDesktop, name)
	}
}
