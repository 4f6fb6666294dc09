package export

import (
	"io"

	"github.com/CXYZTW/swapscout/internal/swapsearch"

	"github.com/xuri/excelize/v2"
)

// sheetName is the single worksheet holding the exported table.
const sheetName = "Sheet1"

// WriteXLSX writes the table as a one-sheet spreadsheet: an unlabeled
// 1-based index column, the display headers, then one row per table row.
// It returns ErrEmptyTable when the table has no rows.
func WriteXLSX(w io.Writer, table swapsearch.Table) error {
	if table.IsEmpty() {
		return ErrEmptyTable
	}

	f := excelize.NewFile()
	defer f.Close()

	header := append([]any{""}, toAnySlice(swapsearch.TableColumns())...)
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, row := range table {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := []any{
			i + 1,
			formatDate(row.Date),
			row.TransactionAddress,
			row.AmountUSD,
			row.AmountOut,
			row.PriceUSD,
			row.WalletCategory,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
