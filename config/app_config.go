package config

import (
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// AppNotificationsEnabledKey is the key for the app notifications enabled preference
const AppNotificationsEnabledKey = "app_notifications_enabled"

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// GetAppNotificationsEnabled returns whether system notifications are enabled
func (c *AppConfig) GetAppNotificationsEnabled() bool {
	return c.prefs.BoolWithFallback(AppNotificationsEnabledKey, true)
}

// SetAppNotificationsEnabled sets whether system notifications are enabled
func (c *AppConfig) SetAppNotificationsEnabled(enabled bool) {
	c.prefs.SetBool(AppNotificationsEnabledKey, enabled)
}

// AutoApplyOnLaunchKey is the key for the apply-wallpaper-on-launch preference
const AutoApplyOnLaunchKey = "autoApplyOnLaunch"

// GetAutoApplyOnLaunch returns whether the current image is pushed to the desktop after launch
func (c *AppConfig) GetAutoApplyOnLaunch() bool {
	return c.prefs.BoolWithFallback(AutoApplyOnLaunchKey, true)
}

// SetAutoApplyOnLaunch sets whether the current image is pushed to the desktop after launch
func (c *AppConfig) SetAutoApplyOnLaunch(enabled bool) {
	c.prefs.SetBool(AutoApplyOnLaunchKey, enabled)
}

// RefreshIntervalSecondsKey is the key for the periodic auto-change interval. 0 disables it.
const RefreshIntervalSecondsKey = "refreshIntervalSeconds"

// GetRefreshIntervalSeconds returns the periodic auto-change interval in seconds
func (c *AppConfig) GetRefreshIntervalSeconds() int {
	secs := c.prefs.IntWithFallback(RefreshIntervalSecondsKey, 0)
	if secs < 0 {
		return 0
	}
	return secs
}

// SetRefreshIntervalSeconds sets the periodic auto-change interval in seconds
func (c *AppConfig) SetRefreshIntervalSeconds(secs int) {
	if secs < 0 {
		secs = 0
	}
	c.prefs.SetInt(RefreshIntervalSecondsKey, secs)
}

// LastFetchTimestampKey is the key for the time of the last successful wallpaper fetch
const LastFetchTimestampKey = "lastFetchTimestamp"

// GetLastFetchTimestamp returns the time of the last successful fetch, zero if never
func (c *AppConfig) GetLastFetchTimestamp() time.Time {
	secs := c.prefs.IntWithFallback(LastFetchTimestampKey, 0)
	if secs <= 0 {
		return time.Time{}
	}
	return time.Unix(int64(secs), 0)
}

// SetLastFetchTimestamp records the time of the last successful fetch
func (c *AppConfig) SetLastFetchTimestamp(t time.Time) {
	c.prefs.SetInt(LastFetchTimestampKey, int(t.Unix()))
}

// ServiceURLKey is the key for the wallpaper service base URL
const ServiceURLKey = "serviceURL"

// GetServiceURL returns the wallpaper service base URL. The environment override wins.
func (c *AppConfig) GetServiceURL() string {
	if env := strings.TrimSpace(os.Getenv(ServiceURLEnv)); env != "" {
		return strings.TrimRight(env, "/")
	}
	return strings.TrimRight(c.prefs.StringWithFallback(ServiceURLKey, DefaultServiceURL), "/")
}

// SetServiceURL sets the wallpaper service base URL
func (c *AppConfig) SetServiceURL(url string) {
	c.prefs.SetString(ServiceURLKey, url)
}

// CacheLimitKey is the key for the maximum number of cached images. 0 keeps everything.
const CacheLimitKey = "cacheLimit"

// GetCacheLimit returns the maximum number of cached images
func (c *AppConfig) GetCacheLimit() int {
	limit := c.prefs.IntWithFallback(CacheLimitKey, 0)
	if limit < 0 {
		return 0
	}
	return limit
}

// SetCacheLimit sets the maximum number of cached images
func (c *AppConfig) SetCacheLimit(limit int) {
	c.prefs.SetInt(CacheLimitKey, limit)
}
