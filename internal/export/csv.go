package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CXYZTW/swapscout/internal/swapsearch"
)

// RenderCSV renders the table as CSV with the display column headers.
// It returns ErrEmptyTable when the table has no rows.
func RenderCSV(table swapsearch.Table) (string, error) {
	if table.IsEmpty() {
		return "", ErrEmptyTable
	}

	var sb strings.Builder

	sb.WriteString(strings.Join(swapsearch.TableColumns(), ","))
	sb.WriteByte('\n')

	for _, row := range table {
		sb.WriteString(fmt.Sprintf("%s,%s,%.0f,%.0f,%s,%s\n",
			formatDate(row.Date),
			row.TransactionAddress,
			row.AmountUSD,
			row.AmountOut,
			strconv.FormatFloat(row.PriceUSD, 'f', -1, 64),
			row.WalletCategory,
		))
	}

	return sb.String(), nil
}
