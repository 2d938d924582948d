package wallpaper

import (
	"fmt"
	"net/url"
	"strings"
)

// Locator identifies a wallpaper on the remote service.
type Locator struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// IsZero reports whether the locator is unset.
func (l Locator) IsZero() bool {
	return l.URL == "" && l.Filename == ""
}

// Validate checks that the locator has an absolute http(s) URL and a filename.
func (l Locator) Validate() error {
	if strings.TrimSpace(l.Filename) == "" {
		return fmt.Errorf("locator %q has no filename", l.URL)
	}
	u, err := url.Parse(l.URL)
	if err != nil {
		return fmt.Errorf("locator url %q: %w", l.URL, err)
	}
	if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("locator url %q is not an absolute http(s) url", l.URL)
	}
	return nil
}

func (l Locator) String() string {
	return l.Filename
}
