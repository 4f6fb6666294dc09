package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/CXYZTW/swapscout/internal/export"
	"github.com/CXYZTW/swapscout/internal/pkg/logger"
	"github.com/CXYZTW/swapscout/internal/swapsearch"

	"github.com/urfave/cli/v3"
)

// dateLayout formats UTC instants in the terminal output.
const dateLayout = "2006-01-02 15:04:05"

// searchCommand returns the CLI command that runs one swap transaction
// search and renders the normalized buy table.
//
// Usage example:
//
//	swapscout search --chain 1 --token 0xABC123... --symbol FOO --days 7 \
//	    --category heavy --category medium --output FOO_transactions.xlsx
func searchCommand(svc swapsearch.Service) *cli.Command {
	return &cli.Command{
		Name:        "search",
		Description: "Search swap transactions where a wallet bought the given token, filtered by time range and wallet categories.",
		Usage:       "Runs one search and prints the result table. Optionally exports it as a spreadsheet.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "chain",
				Usage:    "Numeric chain ID (e.g., 1 for Ethereum; see the chains command)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "token",
				Usage:    "Token contract address to search transactions for",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "symbol",
				Usage:    "Token ticker to filter on (case-insensitive)",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "days",
				Usage: "Lookback window in days, between 1 and 30",
				Value: 1,
			},
			&cli.StringSliceFlag{
				Name:  "category",
				Usage: fmt.Sprintf("Wallet category to include (%s); repeatable, empty means all", strings.Join(swapsearch.WalletCategories(), ", ")),
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Print the result table as CSV instead of an aligned table, for terminal pipes",
			},
			&cli.BoolFlag{
				Name:  "export",
				Usage: "Write the result table as an xlsx spreadsheet named {SYMBOL}_transactions.xlsx",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Spreadsheet path to write instead of the default name; implies --export",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				days   = int(c.Int("days"))
				symbol = strings.ToUpper(c.String("symbol"))

				query = swapsearch.Query{
					ChainID:      swapsearch.ChainID(c.Int("chain")),
					TokenAddress: c.String("token"),
					Symbol:       symbol,
					Days:         days,
					Categories:   c.StringSlice("category"),
				}
			)

			table, err := svc.SearchTransactions(ctx, query)
			if err != nil {
				return err
			}

			var (
				out    = c.Root().Writer
				asCSV  = c.Bool("csv")
				notice = out
			)
			if asCSV {
				// CSV mode keeps stdout clean for pipes.
				notice = c.Root().ErrWriter
			}

			end := time.Now().UTC()
			begin := end.Add(-time.Duration(days) * 24 * time.Hour)
			fmt.Fprintf(notice, "Chosen period (UTC): %s - %s\n", begin.Format(dateLayout), end.Format(dateLayout))

			if table.IsEmpty() {
				fmt.Fprintln(notice, "No matching transactions found.")
				return nil
			}

			if asCSV {
				rendered, err := export.RenderCSV(table)
				if err != nil {
					return err
				}
				fmt.Fprint(out, rendered)
			} else {
				fmt.Fprintf(out, "Total number of buys in the given time period: %d\n\n", len(table))
				printTable(out, table)
			}

			if price, err := svc.CurrentPrice(ctx, query.ChainID, query.TokenAddress); err != nil {
				// A missing price only loses the annotation, never the result.
				logger.Warn(ctx, "current price lookup failed", "error", err)
			} else {
				fmt.Fprintf(notice, "\nCurrent %s price (USD): %s\n", symbol, formatPrice(price))
			}

			path := c.String("output")
			if path == "" && c.Bool("export") {
				path = export.FileName(symbol)
			}
			if path != "" {
				if err := writeSpreadsheet(path, table); err != nil {
					return err
				}
				fmt.Fprintf(notice, "\nSaved %d rows to %s\n", len(table), path)
			}

			return nil
		},
	}
}

// printTable renders the normalized rows as an aligned, 1-indexed table.
func printTable(out io.Writer, table swapsearch.Table) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "#\t%s\n", strings.Join(swapsearch.TableColumns(), "\t"))
	for i, row := range table {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.0f\t%.0f\t%s\t%s\n",
			i+1,
			row.Date.Format(dateLayout),
			row.TransactionAddress,
			row.AmountUSD,
			row.AmountOut,
			formatPrice(row.PriceUSD),
			row.WalletCategory,
		)
	}

	w.Flush()
}

// writeSpreadsheet exports the table to the given path as xlsx.
func writeSpreadsheet(path string, table swapsearch.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return export.WriteXLSX(f, table)
}

// formatPrice renders a USD price at full precision.
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
