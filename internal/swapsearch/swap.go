package swapsearch

import "time"

// ChainID identifies a blockchain network on the analytics API.
type ChainID int64

// supportedChains maps every chain the analytics API can be queried for
// to its display name.
var supportedChains = map[ChainID]string{
	1:     "Ethereum",
	10:    "Optimism",
	56:    "BSC",
	100:   "Gnosis",
	137:   "Polygon",
	250:   "Fantom",
	7000:  "Canto",
	42161: "Arbitrum",
	42170: "Arbitrum Nova",
	42220: "CELO",
	43114: "Avalanche",
}

// ChainName returns the display name for a chain ID and whether the chain
// is supported.
func ChainName(id ChainID) (string, bool) {
	name, ok := supportedChains[id]
	return name, ok
}

// SupportedChains returns a copy of the chain ID to display name mapping.
func SupportedChains() map[ChainID]string {
	chains := make(map[ChainID]string, len(supportedChains))
	for id, name := range supportedChains {
		chains[id] = name
	}
	return chains
}

// Wallet categories assigned by the analytics source, classifying the
// initiating wallet by its historical activity.
const (
	WalletCategoryHeavy  = "heavy"
	WalletCategoryMedium = "medium"
	WalletCategoryCasual = "casual"
	WalletCategoryBot    = "bot"
	WalletCategoryNoob   = "noob"
)

// WalletCategories lists every wallet category the analytics source assigns.
func WalletCategories() []string {
	return []string{
		WalletCategoryHeavy,
		WalletCategoryMedium,
		WalletCategoryCasual,
		WalletCategoryBot,
		WalletCategoryNoob,
	}
}

// Swap leg directions as reported by the analytics source. "out" marks the
// token(s) a wallet received in the swap, so an "out" leg on the searched
// token is a buy.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// TokenLeg is one entry of a swap's tokens_out sequence: a token the wallet
// received, with the received amount and the token's USD price at execution.
type TokenLeg struct {
	Symbol    string
	AmountOut float64
	PriceUSD  float64
}

// SwapTransaction is a raw swap record as received from the analytics
// source. A transaction address may appear in more than one record when the
// transaction has multiple qualifying legs.
type SwapTransaction struct {
	Timestamp          int64      // seconds since epoch
	TransactionAddress string     // on-chain transaction identifier
	Direction          string     // DirectionIn or DirectionOut
	TokensOut          []TokenLeg // tokens received, in source order
	AmountUSD          float64    // USD notional of the swap
	WalletCategory     string     // activity classification of the wallet
}

// Row is one normalized buy, shaped for display and export. AmountUSD and
// AmountOut are rounded to whole units; PriceUSD keeps full precision.
type Row struct {
	Date               time.Time // swap instant, UTC
	TransactionAddress string
	AmountUSD          float64
	AmountOut          float64
	PriceUSD           float64
	WalletCategory     string
}

// Table is an ordered list of normalized rows. Row order follows the order
// the remote source returned the matching transactions in. Rows are
// displayed 1-indexed.
type Table []Row

// IsEmpty reports whether the table holds no rows. Consumers must branch on
// this before handing the table to chart or export operations.
func (t Table) IsEmpty() bool {
	return len(t) == 0
}

// TableColumns returns the display column headers, in table order.
func TableColumns() []string {
	return []string{
		"Date",
		"Transaction Address",
		"Amount (USD)",
		"Amount (Token)",
		"Price (USD)",
		"Wallet Category",
	}
}
