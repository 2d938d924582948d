package wallpaper

import "errors"

var (
	// ErrNetwork reports a transport failure or an unexpected HTTP status.
	ErrNetwork = errors.New("network error")
	// ErrDecode reports a malformed or incomplete service response.
	ErrDecode = errors.New("malformed wallpaper response")
	// ErrCacheWrite reports a failure to persist image bytes.
	ErrCacheWrite = errors.New("cache write failed")
	// ErrCacheMiss is returned by CacheStore.Read for unknown locators.
	ErrCacheMiss = errors.New("not in cache")
	// ErrImageDecode reports bytes that are not a decodable image.
	ErrImageDecode = errors.New("invalid image data")
	// ErrRateLimited is returned when the advance limiter denies a click.
	ErrRateLimited = errors.New("too many advances")
	// ErrNotReady is returned when advancing before the next image has loaded.
	ErrNotReady = errors.New("next wallpaper not loaded yet")
	// ErrUnsupportedDesktop is returned by Desktop implementations that cannot set wallpapers.
	ErrUnsupportedDesktop = errors.New("unsupported desktop environment")
)
