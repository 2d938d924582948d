package wallpaper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dixieflatline76/Wallin/util/log"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Fetcher resolves wallpaper locators and downloads their bytes.
type Fetcher interface {
	FetchBatch(ctx context.Context, count int) ([]Locator, error)
	DownloadImage(ctx context.Context, loc Locator) ([]byte, error)
}

// Client talks to the wallpaper service. Both calls block; callers run them off the UI context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewHTTPClient returns an http.Client with the network timeouts used for all wallpaper traffic.
func NewHTTPClient(userAgent string) *http.Client {
	return &http.Client{
		Timeout: HTTPClientRequestTimeout,
		Transport: &RequestTransport{
			UserAgent: userAgent,
			RoundTripper: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   HTTPClientDialerTimeout,
					KeepAlive: HTTPClientKeepAlive,
				}).DialContext,
				ResponseHeaderTimeout: HTTPClientResponseHeaderTimeout,
				TLSHandshakeTimeout:   HTTPClientTLSHandshakeTimeout,
			},
		},
	}
}

// NewClient creates a Client for the service at baseURL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(APIRequestsPerSecond), APIRequestBurst),
	}
}

type batchResponse map[string][]Locator

// FetchBatch asks the service for count wallpaper locators.
// Transport failures and non-2xx statuses wrap ErrNetwork; anything other than exactly
// count well-formed locators wraps ErrDecode.
func (c *Client) FetchBatch(ctx context.Context, count int) ([]Locator, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid batch size %d", count)
	}

	endpoint, err := url.Parse(c.baseURL + wallpaperEndpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid service url %q: %w", c.baseURL, err)
	}
	q := endpoint.Query()
	q.Set("count", strconv.Itoa(count))
	endpoint.RawQuery = q.Encode()

	body, err := c.get(ctx, endpoint.String())
	if err != nil {
		return nil, err
	}

	var decoded batchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	locs, ok := decoded[imagesField]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrDecode, imagesField)
	}
	if len(locs) != count {
		return nil, fmt.Errorf("%w: expected %d images, got %d", ErrDecode, count, len(locs))
	}
	for i, loc := range locs {
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("%w: image %d: %v", ErrDecode, i, err)
		}
	}
	return locs, nil
}

// DownloadImage fetches the raw bytes behind loc. It does not retry.
func (c *Client) DownloadImage(ctx context.Context, loc Locator) ([]byte, error) {
	return c.get(ctx, loc.URL)
}

// get performs a paced GET and returns the body. Failures wrap ErrNetwork.
func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: waiting for request slot: %w", ErrNetwork, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("GET %s failed (request %s): %v", target, reqID, err)
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("GET %s failed with status %d (request %s)", target, resp.StatusCode, reqID)
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrNetwork, target, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrNetwork, target, err)
	}
	if len(body) > MaxImageBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrNetwork, target, MaxImageBytes)
	}
	return body, nil
}
