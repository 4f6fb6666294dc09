package swapsearch

import (
	"context"
	"errors"
)

// ErrPriceUnavailable is returned by PriceSource implementations when the
// analytics source has no current price for the requested token. Callers
// tolerate it: a missing price only disables the price annotation, it never
// affects the transaction search.
var ErrPriceUnavailable = errors.New("current token price unavailable")

// TimeWindow is a closed lookback interval in epoch seconds.
type TimeWindow struct {
	Begin int64
	End   int64
}

// SwapSource fetches raw swap transactions from the analytics backend.
type SwapSource interface {
	// FetchSwaps returns the swap transactions recorded for the given token
	// on the given chain inside the time window, ordered by timestamp
	// descending. It returns an error for transport failures (endpoint
	// unreachable, non-2xx status) and for responses missing expected
	// fields; it never retries on its own.
	FetchSwaps(ctx context.Context, chainID ChainID, tokenAddress string, window TimeWindow) ([]SwapTransaction, error)
}

// PriceSource fetches the single most recent market price of a token.
type PriceSource interface {
	// TokenPrice returns the latest known USD price for the token on the
	// given chain. It returns ErrPriceUnavailable when the source has no
	// price for the token.
	TokenPrice(ctx context.Context, chainID ChainID, tokenAddress string) (float64, error)
}
