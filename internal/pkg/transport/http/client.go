// Package http builds the HTTP client used to talk to the analytics API.
// It wraps HashiCorp's retryablehttp.Client behind functional options.
//
// Transport-level retries default to zero: the swap retrieval policy runs its
// own fixed attempt loop, and a failed request must surface to the caller
// rather than be silently re-issued with backoff.
package http

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout  time.Duration // maximum duration for a single HTTP request
	retryMax int           // transport-level retry attempts on failure
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient creates a retryablehttp.Client configured with the provided
// options. Defaults: 10 second request timeout, no transport-level retries.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:  10 * time.Second,
		retryMax: 0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryMax = cfg.retryMax

	if cfg.retryMax == 0 {
		// With retries disabled, every response belongs to the caller as-is.
		// The default policy would otherwise turn 429/5xx responses into
		// "giving up" errors instead of handing them back.
		client.CheckRetry = func(_ context.Context, _ *nethttp.Response, err error) (bool, error) {
			return false, err
		}
	}

	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 10 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryMax sets the number of transport-level retries for failed
// requests. Default: 0.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}
