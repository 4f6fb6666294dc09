package swapsearch

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/CXYZTW/swapscout/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests to prevent nil pointer dereference
	_ = logger.Init(logger.WithLevel("error"))
}

// swapSourceStub plays the analytics backend. Each call returns the next
// configured response, capturing the windows it was asked for.
type swapSourceStub struct {
	responses []stubResponse
	calls     int
	windows   []TimeWindow
}

type stubResponse struct {
	swaps []SwapTransaction
	err   error
}

func (s *swapSourceStub) FetchSwaps(_ context.Context, _ ChainID, _ string, window TimeWindow) ([]SwapTransaction, error) {
	s.windows = append(s.windows, window)

	resp := s.responses[len(s.responses)-1]
	if s.calls < len(s.responses) {
		resp = s.responses[s.calls]
	}
	s.calls++

	return resp.swaps, resp.err
}

// repeat builds a stub that answers every attempt with the same swaps.
func repeat(swaps ...SwapTransaction) *swapSourceStub {
	return &swapSourceStub{responses: []stubResponse{{swaps: swaps}}}
}

type priceSourceStub struct {
	price float64
	err   error
}

func (s *priceSourceStub) TokenPrice(context.Context, ChainID, string) (float64, error) {
	return s.price, s.err
}

func buyTx(symbol string) SwapTransaction {
	return SwapTransaction{
		Timestamp:          1700000000,
		TransactionAddress: "0xabc",
		Direction:          DirectionOut,
		TokensOut:          []TokenLeg{{Symbol: symbol, AmountOut: 120.6, PriceUSD: 0.05}},
		AmountUSD:          6.03,
		WalletCategory:     WalletCategoryBot,
	}
}

func fooQuery() Query {
	return Query{
		ChainID:      1,
		TokenAddress: "0xtoken",
		Symbol:       "FOO",
		Days:         1,
	}
}

func TestService_SearchTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes a matching buy with rounded amounts and exact price", func(t *testing.T) {
		source := repeat(buyTx("FOO"))
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		table, err := svc.SearchTransactions(ctx, fooQuery())

		require.NoError(t, err)
		require.Len(t, table, 1)

		row := table[0]
		assert.Equal(t, time.Unix(1700000000, 0).UTC(), row.Date)
		assert.Equal(t, "0xabc", row.TransactionAddress)
		assert.Equal(t, float64(6), row.AmountUSD)
		assert.Equal(t, float64(121), row.AmountOut)
		assert.Equal(t, 0.05, row.PriceUSD)
		assert.Equal(t, WalletCategoryBot, row.WalletCategory)
	})

	t.Run("excludes transactions whose direction is not out", func(t *testing.T) {
		sell := buyTx("FOO")
		sell.Direction = DirectionIn

		source := repeat(sell, buyTx("FOO"))
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		table, err := svc.SearchTransactions(ctx, fooQuery())

		require.NoError(t, err)
		require.Len(t, table, 1)
	})

	t.Run("excludes transactions without a leg for the target symbol", func(t *testing.T) {
		source := repeat(buyTx("FOO"), buyTx("BAR"))
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		table, err := svc.SearchTransactions(ctx, fooQuery())

		require.NoError(t, err)
		assert.Len(t, table, 1)
	})

	t.Run("category filter excludes non-member wallets regardless of symbol match", func(t *testing.T) {
		source := repeat(buyTx("FOO")) // wallet_category is bot
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		query := fooQuery()
		query.Categories = []string{WalletCategoryHeavy, WalletCategoryMedium}

		table, err := svc.SearchTransactions(ctx, query)

		require.NoError(t, err)
		assert.True(t, table.IsEmpty())
	})

	t.Run("empty category filter applies no category filtering", func(t *testing.T) {
		source := repeat(buyTx("FOO"))
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		table, err := svc.SearchTransactions(ctx, fooQuery())

		require.NoError(t, err)
		assert.Len(t, table, 1)
	})

	t.Run("first matching leg wins when several carry the target symbol", func(t *testing.T) {
		tx := buyTx("FOO")
		tx.TokensOut = []TokenLeg{
			{Symbol: "FOO", AmountOut: 10.2, PriceUSD: 0.01},
			{Symbol: "FOO", AmountOut: 99.9, PriceUSD: 0.99},
		}

		source := repeat(tx)
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		table, err := svc.SearchTransactions(ctx, fooQuery())

		require.NoError(t, err)
		require.Len(t, table, 1)
		assert.Equal(t, float64(10), table[0].AmountOut)
		assert.Equal(t, 0.01, table[0].PriceUSD)
	})

	t.Run("issues exactly five identical fetch attempts", func(t *testing.T) {
		source := repeat(buyTx("FOO"))
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		_, err := svc.SearchTransactions(ctx, fooQuery())

		require.NoError(t, err)
		require.Equal(t, 5, source.calls)
		for _, window := range source.windows[1:] {
			assert.Equal(t, source.windows[0], window, "every attempt must reuse the same window")
		}
	})

	t.Run("returns only the final attempt's batch", func(t *testing.T) {
		first := buyTx("FOO")
		first.TransactionAddress = "0xfirst"

		last := buyTx("FOO")
		last.TransactionAddress = "0xlast"

		source := &swapSourceStub{responses: []stubResponse{
			{swaps: []SwapTransaction{first}},
			{swaps: []SwapTransaction{first}},
			{swaps: []SwapTransaction{first}},
			{swaps: []SwapTransaction{first}},
			{swaps: []SwapTransaction{last, last}},
		}}
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		table, err := svc.SearchTransactions(ctx, fooQuery())

		require.NoError(t, err)
		require.Len(t, table, 2)
		assert.Equal(t, "0xlast", table[0].TransactionAddress)
		assert.Equal(t, "0xlast", table[1].TransactionAddress)
	})

	t.Run("does not deduplicate repeated transactions inside a batch", func(t *testing.T) {
		source := repeat(buyTx("FOO"), buyTx("FOO"))
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		table, err := svc.SearchTransactions(ctx, fooQuery())

		require.NoError(t, err)
		assert.Len(t, table, 2)
	})

	t.Run("computes the lookback window at call time", func(t *testing.T) {
		const days = 7

		source := repeat()
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		query := fooQuery()
		query.Days = days

		before := time.Now().Unix()
		_, err := svc.SearchTransactions(ctx, query)
		after := time.Now().Unix()

		require.NoError(t, err)
		require.NotEmpty(t, source.windows)

		window := source.windows[0]
		assert.Equal(t, window.End-int64(days)*86400, window.Begin)
		assert.GreaterOrEqual(t, window.End, before)
		assert.LessOrEqual(t, window.End, after)
	})

	t.Run("zero matching transactions yield an empty table, not an error", func(t *testing.T) {
		source := repeat()
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		table, err := svc.SearchTransactions(ctx, fooQuery())

		require.NoError(t, err)
		assert.True(t, table.IsEmpty())
	})

	t.Run("a failing attempt aborts the search immediately", func(t *testing.T) {
		fetchErr := errors.New("connection refused")
		source := &swapSourceStub{responses: []stubResponse{{err: fetchErr}}}
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		table, err := svc.SearchTransactions(ctx, fooQuery())

		assert.ErrorIs(t, err, fetchErr)
		assert.Nil(t, table)
		assert.Equal(t, 1, source.calls, "no further attempts after a hard failure")
	})

	t.Run("rejects an invalid query before touching the network", func(t *testing.T) {
		source := repeat()
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		for name, query := range map[string]Query{
			"zero days":         {ChainID: 1, TokenAddress: "0xtoken", Symbol: "FOO", Days: 0},
			"too many days":     {ChainID: 1, TokenAddress: "0xtoken", Symbol: "FOO", Days: 31},
			"missing symbol":    {ChainID: 1, TokenAddress: "0xtoken", Days: 1},
			"lowercase symbol":  {ChainID: 1, TokenAddress: "0xtoken", Symbol: "foo", Days: 1},
			"missing token":     {ChainID: 1, Symbol: "FOO", Days: 1},
			"unknown category":  {ChainID: 1, TokenAddress: "0xtoken", Symbol: "FOO", Days: 1, Categories: []string{"whale"}},
			"unsupported chain": {ChainID: 1337, TokenAddress: "0xtoken", Symbol: "FOO", Days: 1},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := svc.SearchTransactions(ctx, query)

				assert.Error(t, err)
				assert.Zero(t, source.calls)
			})
		}
	})

	t.Run("rounding is idempotent", func(t *testing.T) {
		source := repeat(buyTx("FOO"))
		svc := New(source, &priceSourceStub{}, WithAttemptDelay(0))

		table, err := svc.SearchTransactions(ctx, fooQuery())

		require.NoError(t, err)
		require.Len(t, table, 1)
		assert.Equal(t, table[0].AmountUSD, math.Round(table[0].AmountUSD))
		assert.Equal(t, table[0].AmountOut, math.Round(table[0].AmountOut))
	})
}
