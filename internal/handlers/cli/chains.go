package cli

import (
	"context"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/CXYZTW/swapscout/internal/swapsearch"

	"github.com/urfave/cli/v3"
)

// chainsCommand returns the CLI command that lists every blockchain network
// the analytics API can be queried for.
//
// Usage example:
//
//	swapscout chains
func chainsCommand() *cli.Command {
	return &cli.Command{
		Name:        "chains",
		Description: "List the supported blockchain networks and their numeric chain IDs.",
		Usage:       "Prints the chain ID to network name table.",
		Action: func(ctx context.Context, c *cli.Command) error {
			chains := swapsearch.SupportedChains()

			ids := make([]swapsearch.ChainID, 0, len(chains))
			for id := range chains {
				ids = append(ids, id)
			}
			slices.Sort(ids)

			w := tabwriter.NewWriter(c.Root().Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Chain ID\tNetwork")
			for _, id := range ids {
				fmt.Fprintf(w, "%d\t%s\n", id, chains[id])
			}

			return w.Flush()
		},
	}
}
