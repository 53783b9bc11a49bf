// internal/common/http/client.go
package http

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"catalog-viewer/internal/common/errors"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/time/rate"
)

// DefaultMaxBody caps response bodies when Options.MaxBody is not set.
const DefaultMaxBody int64 = 10 << 20

// Options configure a Client. A zero RateLimit disables client-side limiting.
type Options struct {
	Timeout   time.Duration
	RateLimit float64
	Burst     int
	UserAgent string
	MaxBody   int64
}

// Client performs single-shot GET requests for catalog documents. It is safe
// for concurrent use; the limiter is shared by every caller.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	maxBody    int64
}

func NewClient(opts Options) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent: opts.UserAgent,
		maxBody:   opts.MaxBody,
	}
	if c.maxBody <= 0 {
		c.maxBody = DefaultMaxBody
	}
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return c
}

// Get fetches url and returns the body as UTF-8. Status 200 is the only
// success; >= 400 is RESOURCE_NOT_FOUND, any other status UNEXPECTED_STATUS
// and transport failures NO_CONNECTION. A body larger than the configured
// cap is INVALID_DATA_FORMAT. There are no retries.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.NewNoConnectionError(url, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewNoConnectionError(url, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewNoConnectionError(url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, errors.NewResourceNotFoundError(url, resp.StatusCode)
	default:
		return nil, errors.NewUnexpectedStatusError(url, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, errors.NewNoConnectionError(url, err)
	}
	if int64(len(raw)) > c.maxBody {
		return nil, errors.NewInvalidDataFormatError(fmt.Errorf("response body from %s exceeds %d bytes", url, c.maxBody))
	}

	if isWindows1251(resp.Header.Get("Content-Type")) {
		decoded, _, err := transform.Bytes(charmap.Windows1251.NewDecoder(), raw)
		if err != nil {
			return nil, errors.NewInvalidDataFormatError(err)
		}
		return decoded, nil
	}
	return raw, nil
}

func isWindows1251(contentType string) bool {
	if contentType == "" {
		return false
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch strings.ToLower(params["charset"]) {
	case "windows-1251", "cp1251", "cp-1251":
		return true
	}
	return false
}
