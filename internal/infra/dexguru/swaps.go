package dexguru

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/CXYZTW/swapscout/internal/pkg/validator"
	"github.com/CXYZTW/swapscout/internal/swapsearch"
)

// swapsPathFormat is the swaps endpoint, parameterized by chain ID and token
// address.
const swapsPathFormat = "/v1/chain/%d/tokens/%s/transactions/swaps"

// fetchLimit is the maximum number of swap records requested per fetch.
const fetchLimit = 50000

// tokenLegRecord is one tokens_out entry on the wire.
type tokenLegRecord struct {
	Symbol    string  `json:"symbol"`
	AmountOut float64 `json:"amount_out"`
	PriceUSD  float64 `json:"price_usd"`
}

// swapRecord is a raw swap transaction on the wire. The validate tags define
// the fields a well-formed record must carry.
type swapRecord struct {
	Timestamp          int64            `json:"timestamp" validate:"required"`
	TransactionAddress string           `json:"transaction_address" validate:"required"`
	Direction          string           `json:"direction" validate:"required,oneof=in out"`
	TokensOut          []tokenLegRecord `json:"tokens_out"`
	AmountUSD          float64          `json:"amount_usd"`
	WalletCategory     string           `json:"wallet_category"`
}

// swapsEnvelope is the response wrapper of the swaps endpoint. Data is a
// pointer so a response without the data field is distinguishable from an
// empty result set.
type swapsEnvelope struct {
	Data *[]swapRecord `json:"data"`
}

// toDomain converts a wire record into the domain representation.
func (r swapRecord) toDomain() swapsearch.SwapTransaction {
	legs := make([]swapsearch.TokenLeg, len(r.TokensOut))
	for i, leg := range r.TokensOut {
		legs[i] = swapsearch.TokenLeg{
			Symbol:    leg.Symbol,
			AmountOut: leg.AmountOut,
			PriceUSD:  leg.PriceUSD,
		}
	}

	return swapsearch.SwapTransaction{
		Timestamp:          r.Timestamp,
		TransactionAddress: r.TransactionAddress,
		Direction:          r.Direction,
		TokensOut:          legs,
		AmountUSD:          r.AmountUSD,
		WalletCategory:     r.WalletCategory,
	}
}

// FetchSwaps requests the swap transactions of a token inside the given time
// window, sorted by timestamp descending, up to the fixed fetch limit.
//
// It implements swapsearch.SwapSource. Transport failures and non-2xx
// statuses propagate as-is; a response missing the data envelope or required
// per-record fields fails with ErrMalformedResponse.
func (c *Client) FetchSwaps(ctx context.Context, chainID swapsearch.ChainID, tokenAddress string, window swapsearch.TimeWindow) ([]swapsearch.SwapTransaction, error) {
	query := url.Values{
		"begin_timestamp": []string{strconv.FormatInt(window.Begin, 10)},
		"end_timestamp":   []string{strconv.FormatInt(window.End, 10)},
		"sort_by":         []string{"timestamp"},
		"order":           []string{"desc"},
		"limit":           []string{strconv.Itoa(fetchLimit)},
	}

	body, err := c.get(ctx, fmt.Sprintf(swapsPathFormat, chainID, url.PathEscape(tokenAddress)), query)
	if err != nil {
		return nil, err
	}

	var envelope swapsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: missing data field", ErrMalformedResponse)
	}

	swaps := make([]swapsearch.SwapTransaction, 0, len(*envelope.Data))
	for _, record := range *envelope.Data {
		if err := validator.Validate(record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}

		swaps = append(swaps, record.toDomain())
	}

	return swaps, nil
}
