package swapsearch

import (
	"context"
	"math"
	"time"

	"github.com/CXYZTW/swapscout/internal/pkg/logger"
	"github.com/CXYZTW/swapscout/internal/pkg/types"

	"github.com/google/uuid"
)

// SearchTransactions runs one full search: it computes the lookback window
// at call time, issues the fixed number of identical fetch attempts against
// the swap source with a short pause in between, and filters and normalizes
// each attempt's response.
//
// Every attempt's batch is accumulated, but the returned table is built from
// the final attempt's batch alone. This mirrors the retrieval policy of the
// system this tool replaced; downstream consumers rely on the resulting
// shape, so merging or deduplicating across attempts is deliberately not
// done here (see the open question in DESIGN.md).
//
// The attempt loop is unconditional with respect to success: it is not a
// failure-driven retry. The first failing attempt aborts the whole search
// and its error propagates to the caller unchanged.
func (s *service) SearchTransactions(ctx context.Context, query Query) (Table, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		searchID = uuid.NewString()
		window   = query.window(time.Now())
	)

	logger.Debug(ctx, "starting transaction search",
		"search_id", searchID,
		"chain_id", query.ChainID,
		"symbol", query.Symbol,
		"begin_timestamp", window.Begin,
		"end_timestamp", window.End,
	)

	var (
		accumulated Table // gathered across attempts, ultimately discarded
		batch       Table // the last attempt's filtered rows
	)

	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		swaps, err := s.swaps.FetchSwaps(ctx, query.ChainID, query.TokenAddress, window)
		if err != nil {
			return nil, err
		}

		batch = normalizeSwaps(swaps, query.Symbol, query.categorySet())
		accumulated = append(accumulated, batch...)

		logger.Debug(ctx, "fetch attempt completed",
			"search_id", searchID,
			"attempt", attempt,
			"fetched", len(swaps),
			"matching", len(batch),
		)

		if err := sleep(ctx, s.cfg.attemptDelay); err != nil {
			return nil, err
		}
	}

	logger.Info(ctx, "transaction search completed",
		"search_id", searchID,
		"symbol", query.Symbol,
		"rows", len(batch),
	)

	return batch, nil
}

// normalizeSwaps applies the inclusion rule and reshapes the qualifying
// transactions into table rows, preserving source order.
//
// A transaction is included iff its direction is "out", at least one of its
// tokens_out legs carries the target symbol, and, when a category filter is
// active, its wallet category is in the filter set. When several legs carry
// the target symbol, the first one in source order wins.
func normalizeSwaps(swaps []SwapTransaction, symbol string, categories types.Set[string]) Table {
	rows := make(Table, 0, len(swaps))

	for _, tx := range swaps {
		if tx.Direction != DirectionOut {
			continue
		}

		if categories != nil && !categories.Has(tx.WalletCategory) {
			continue
		}

		leg, ok := matchLeg(tx.TokensOut, symbol)
		if !ok {
			continue
		}

		rows = append(rows, Row{
			Date:               time.Unix(tx.Timestamp, 0).UTC(),
			TransactionAddress: tx.TransactionAddress,
			AmountUSD:          math.Round(tx.AmountUSD),
			AmountOut:          math.Round(leg.AmountOut),
			PriceUSD:           leg.PriceUSD,
			WalletCategory:     tx.WalletCategory,
		})
	}

	return rows
}

// matchLeg returns the first tokens_out leg whose symbol equals the target.
func matchLeg(legs []TokenLeg, symbol string) (TokenLeg, bool) {
	for _, leg := range legs {
		if leg.Symbol == symbol {
			return leg, true
		}
	}

	return TokenLeg{}, false
}

// sleep blocks for the given duration, honoring context cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
