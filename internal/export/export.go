// Package export renders a normalized swap table into file formats: an xlsx
// spreadsheet for the download artifact and CSV for terminal or pipe use.
//
// Exporting an empty table is an error. Callers must branch on emptiness
// first, the same way they must before charting.
package export

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyTable is returned when an empty table is handed to a writer.
var ErrEmptyTable = errors.New("refusing to export an empty table")

// dateLayout formats a row's UTC instant in the exported files.
const dateLayout = "2006-01-02 15:04:05"

// FileName returns the canonical spreadsheet name for a symbol's export,
// e.g. "FOO_transactions.xlsx".
func FileName(symbol string) string {
	return fmt.Sprintf("%s_transactions.xlsx", symbol)
}

func formatDate(date time.Time) string {
	return date.UTC().Format(dateLayout)
}
