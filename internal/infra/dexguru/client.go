// Package dexguru implements the swapsearch source interfaces on top of the
// dex.guru style analytics HTTP API. It owns request construction, the API
// key header, and the decoding of responses into domain types.
package dexguru

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/CXYZTW/swapscout/internal/swapsearch"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedStatusCode is returned when the analytics API answers with a
// non-2xx status. The response is not inspected further.
var ErrUnexpectedStatusCode = errors.New("unexpected status code from analytics api")

// ErrMalformedResponse is returned when a response decodes but lacks the
// expected envelope or per-record fields. Missing data is never silently
// defaulted.
var ErrMalformedResponse = errors.New("malformed analytics api response")

// Client talks to the analytics API. It is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *retryablehttp.Client
}

// Compile-time checks that *Client serves both swapsearch source ports.
var (
	_ swapsearch.SwapSource  = (*Client)(nil)
	_ swapsearch.PriceSource = (*Client)(nil)
)

// NewClient creates an analytics API client. The API key is an externally
// supplied secret and is attached to every request as the api-key header.
func NewClient(baseURL, apiKey string, httpc *retryablehttp.Client) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   httpc,
	}
}

// get issues an authenticated GET against the given API path and returns the
// raw response body. Non-2xx statuses surface as ErrUnexpectedStatusCode.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
