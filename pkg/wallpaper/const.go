package wallpaper

import "time"

// Remote service
const (
	wallpaperEndpoint = "/wallpaper"
	imagesField       = "images"
	requestIDHeader   = "X-Request-ID"
)

// Batch sizes requested from the service
const (
	InitialBatchSize = 2 // InitialBatchSize fills Previous/Current and Next on startup
	AdvanceBatchSize = 1 // AdvanceBatchSize refills Next after an advance
)

// Cache layout
const (
	CacheDirName    = "wallin"
	CacheFilePrefix = "wallin_cache_"
	MaxImageBytes   = 64 << 20
)

// Carousel and policy tuning
const (
	MaxAdvancesPerWindow = 20
	AdvanceWindow        = 30 * time.Second
	AutoApplyDelay       = 2 * time.Second
	MaxBackgroundTasks   = 4
	PrimaryDisplay       = 0

	// Side slots render in a narrow portrait frame.
	PreviewWidth  = 80
	PreviewHeight = 200
)

// Outbound request pacing for the wallpaper API.
const (
	APIRequestsPerSecond = 5
	APIRequestBurst      = 5
)

// RefreshInterval represents the periodic auto-change presets offered in the settings menu.
type RefreshInterval int

// RefreshInterval constants
const (
	RefreshOff RefreshInterval = iota
	Refresh6Hours
	Refresh12Hours
	RefreshInvalid
)

// RefreshIntervalSeconds maps a RefreshInterval to the number of seconds persisted in preferences.
var RefreshIntervalSeconds = map[RefreshInterval]int{
	RefreshOff:     0,
	Refresh6Hours:  6 * 60 * 60,
	Refresh12Hours: 12 * 60 * 60,
}

// String returns the string representation of a RefreshInterval
func (r RefreshInterval) String() string {
	switch r {
	case RefreshOff:
		return "Off"
	case Refresh6Hours:
		return "Every 6 Hours"
	case Refresh12Hours:
		return "Every 12 Hours"
	default:
		return "Unknown"
	}
}

// Seconds returns the persisted value of a RefreshInterval.
func (r RefreshInterval) Seconds() int {
	return RefreshIntervalSeconds[r]
}

// Duration returns the interval as a time.Duration. Zero means disabled.
func (r RefreshInterval) Duration() time.Duration {
	return time.Duration(r.Seconds()) * time.Second
}

// RefreshIntervalFromSeconds returns the preset matching secs, or RefreshInvalid.
func RefreshIntervalFromSeconds(secs int) RefreshInterval {
	for r, s := range RefreshIntervalSeconds {
		if s == secs {
			return r
		}
	}
	return RefreshInvalid
}

// GetRefreshIntervals returns all presets in menu order.
func GetRefreshIntervals() []RefreshInterval {
	return []RefreshInterval{RefreshOff, Refresh6Hours, Refresh12Hours}
}

// CacheLimit represents the predefined cache sizes (in number of images).
type CacheLimit int

// CacheLimit constants
const (
	CacheUnbounded CacheLimit = iota
	Cache50Images
	Cache100Images
	Cache200Images
)

// CacheLimitValues maps CacheLimit to its integer representation.
var CacheLimitValues = map[CacheLimit]int{
	CacheUnbounded: 0,
	Cache50Images:  50,
	Cache100Images: 100,
	Cache200Images: 200,
}

// String returns the string representation of a CacheLimit.
func (cl CacheLimit) String() string {
	switch cl {
	case CacheUnbounded:
		return "Unlimited"
	case Cache50Images:
		return "50 Images"
	case Cache100Images:
		return "100 Images"
	case Cache200Images:
		return "200 Images"
	default:
		return "Unknown"
	}
}

// Size returns the integer value of a CacheLimit.
func (cl CacheLimit) Size() int {
	return CacheLimitValues[cl]
}

// GetCacheLimits returns a list of all available cache limits.
func GetCacheLimits() []CacheLimit {
	return []CacheLimit{CacheUnbounded, Cache50Images, Cache100Images, Cache200Images}
}

// NetworkTimeouts defines the standard durations for various network operations.
const (
	// HTTPClientRequestTimeout is the total time limit for a single HTTP request,
	// including connection, redirects and reading the body.
	HTTPClientRequestTimeout = 60 * time.Second

	// HTTPClientDialerTimeout is the timeout for establishing a TCP connection.
	HTTPClientDialerTimeout = 15 * time.Second

	// HTTPClientTLSHandshakeTimeout is the time limit for the TLS handshake for HTTPS.
	HTTPClientTLSHandshakeTimeout = 10 * time.Second

	// HTTPClientResponseHeaderTimeout is the time limit for receiving response headers
	// after the request has been sent.
	HTTPClientResponseHeaderTimeout = 15 * time.Second

	// HTTPClientKeepAlive is the duration for TCP keep-alive probes.
	HTTPClientKeepAlive = 30 * time.Second
)
