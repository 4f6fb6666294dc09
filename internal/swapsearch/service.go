// Package swapsearch implements the swap retrieval and normalization
// pipeline: given a chain, token and lookback window, it fetches swap
// transactions from an analytics backend, keeps the buys of the requested
// token, and shapes them into a display-ready table. Each search is
// stateless and independent; nothing is cached or persisted.
package swapsearch

import (
	"context"
	"time"
)

// Service is the entrypoint consumed by the presentation layer. It exposes
// exactly two operations: the transaction search and the companion current
// price lookup used as a chart annotation.
type Service interface {
	// SearchTransactions runs one full search for the given query and
	// returns the normalized buy table. An empty table is a valid outcome,
	// not an error. Transport and malformed-response failures from the
	// backend propagate unchanged.
	SearchTransactions(ctx context.Context, query Query) (Table, error)

	// CurrentPrice returns the most recent USD market price of the token.
	// It issues a single request with no retry loop and returns
	// ErrPriceUnavailable when the source has no price.
	CurrentPrice(ctx context.Context, chainID ChainID, tokenAddress string) (float64, error)
}

const (
	// fetchAttempts is the fixed number of identical fetches one search
	// performs against the backend.
	fetchAttempts = 5

	// defaultAttemptDelay is the pause between consecutive fetch attempts,
	// kept short to respect the backend's rate limits.
	defaultAttemptDelay = 200 * time.Millisecond
)

// config holds the tunable settings of the service.
type config struct {
	attemptDelay time.Duration // pause between fetch attempts
}

// Option configures the service at construction time.
type Option func(*config)

// WithAttemptDelay overrides the pause between consecutive fetch attempts.
// Default: 200ms.
func WithAttemptDelay(d time.Duration) Option {
	return func(c *config) {
		c.attemptDelay = d
	}
}

// service is the concrete Service implementation. It owns no state beyond
// its collaborators; every search is a pure function of the query and the
// remote data.
type service struct {
	swaps  SwapSource
	prices PriceSource
	cfg    config
}

// Compile-time check that *service satisfies the Service interface.
var _ Service = (*service)(nil)

// New creates the swapsearch service on top of the given swap and price
// sources.
func New(swaps SwapSource, prices PriceSource, opts ...Option) *service {
	cfg := config{attemptDelay: defaultAttemptDelay}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		swaps:  swaps,
		prices: prices,
		cfg:    cfg,
	}
}

// CurrentPrice looks up the latest market price for the token on the given
// chain. The chain must be one of the supported networks.
func (s *service) CurrentPrice(ctx context.Context, chainID ChainID, tokenAddress string) (float64, error) {
	if _, ok := ChainName(chainID); !ok {
		return 0, ErrUnsupportedChain
	}

	return s.prices.TokenPrice(ctx, chainID, tokenAddress)
}
