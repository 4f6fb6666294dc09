package dexguru

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/CXYZTW/swapscout/internal/swapsearch"
)

// marketPathFormat is the token market endpoint, parameterized by chain ID.
const marketPathFormat = "/v1/chain/%d/tokens/market"

// marketRecord is one market data entry on the wire. Only the price is
// consumed; a null price counts as unavailable.
type marketRecord struct {
	PriceUSD *float64 `json:"price_usd"`
}

// marketEnvelope is the response wrapper of the market endpoint.
type marketEnvelope struct {
	Data *[]marketRecord `json:"data"`
}

// TokenPrice fetches the single most recent USD market price of a token.
//
// It implements swapsearch.PriceSource: one request, no retry loop. An empty
// result set or a null price yields swapsearch.ErrPriceUnavailable.
func (c *Client) TokenPrice(ctx context.Context, chainID swapsearch.ChainID, tokenAddress string) (float64, error) {
	query := url.Values{
		"token_addresses": []string{tokenAddress},
		"sort_by":         []string{"timestamp"},
		"order":           []string{"desc"},
		"limit":           []string{"1"},
		"offset":          []string{"0"},
	}

	body, err := c.get(ctx, fmt.Sprintf(marketPathFormat, chainID), query)
	if err != nil {
		return 0, err
	}

	var envelope marketEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if envelope.Data == nil {
		return 0, fmt.Errorf("%w: missing data field", ErrMalformedResponse)
	}

	if len(*envelope.Data) == 0 || (*envelope.Data)[0].PriceUSD == nil {
		return 0, swapsearch.ErrPriceUnavailable
	}

	return *(*envelope.Data)[0].PriceUSD, nil
}
