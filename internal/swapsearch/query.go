package swapsearch

import (
	"errors"
	"fmt"
	"time"

	"github.com/CXYZTW/swapscout/internal/pkg/types"
	"github.com/CXYZTW/swapscout/internal/pkg/validator"
)

// ErrUnsupportedChain is returned when a query names a chain ID outside the
// set of networks the analytics API serves.
var ErrUnsupportedChain = errors.New("unsupported chain id")

// secondsPerDay converts the lookback length in days to epoch seconds.
const secondsPerDay = 86400

// Query holds the immutable parameters of one transaction search. The token
// address is passed through unvalidated: the remote source is the authority
// on whether it exists. Symbol must already be uppercased by the caller.
type Query struct {
	ChainID      ChainID  `validate:"required"`
	TokenAddress string   `validate:"required"`
	Symbol       string   `validate:"required,uppercase"`
	Days         int      `validate:"min=1,max=30"`
	Categories   []string `validate:"dive,oneof=heavy medium casual bot noob"`
}

// Validate checks the query's field constraints and that the chain is one of
// the supported networks.
func (q Query) Validate() error {
	if err := validator.Validate(q); err != nil {
		return err
	}

	if _, ok := ChainName(q.ChainID); !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedChain, q.ChainID)
	}

	return nil
}

// categorySet returns the category filter as a set, or nil when the query
// requests no category filtering.
func (q Query) categorySet() types.Set[string] {
	if len(q.Categories) == 0 {
		return nil
	}

	return types.NewSet(q.Categories...)
}

// window computes the lookback interval ending at the given instant:
// [now - Days*86400, now] in epoch seconds.
func (q Query) window(now time.Time) TimeWindow {
	end := now.Unix()
	return TimeWindow{
		Begin: end - int64(q.Days)*secondsPerDay,
		End:   end,
	}
}
