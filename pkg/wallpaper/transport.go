package wallpaper

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestTransport wraps an http.RoundTripper and stamps every request with the
// application User-Agent and a correlation id.
type RequestTransport struct {
	http.RoundTripper
	UserAgent string
}

// RoundTrip executes a single HTTP transaction, adding the User-Agent and X-Request-ID headers.
func (t *RequestTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", t.UserAgent)
	if clonedReq.Header.Get(requestIDHeader) == "" {
		clonedReq.Header.Set(requestIDHeader, uuid.NewString())
	}

	rt := t.RoundTripper
	if rt == nil {
		rt = http.DefaultTransport
	}
	return rt.RoundTrip(clonedReq)
}
