package httputil

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const DefaultTimeout = 15 * time.Second

// NewClient returns an HTTP client with standard timeout configuration.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
	}
}

// ThrottledTransport rate-limits outbound requests. The NWS asks clients to
// keep request rates modest; one limiter is shared by every client built on
// the same transport.
type ThrottledTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// NewThrottledTransport wraps base with a token-bucket limiter allowing rps
// requests per second with the given burst.
func NewThrottledTransport(base http.RoundTripper, rps float64, burst int) *ThrottledTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &ThrottledTransport{
		base:    base,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (t *ThrottledTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// NewThrottledClient returns an HTTP client whose requests share a rate
// limiter, for upstreams that expect polite request rates.
func NewThrottledClient(timeout time.Duration, rps float64, burst int) *http.Client {
	c := NewClient(timeout)
	c.Transport = NewThrottledTransport(nil, rps, burst)
	return c
}
