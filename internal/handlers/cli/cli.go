// Package cli wires the swapsearch service into a command-line interface.
// It owns all presentation concerns: rendering the result table, branching
// on emptiness, the current-price annotation, and export wiring.
package cli

import (
	"context"
	"os"

	"github.com/CXYZTW/swapscout/internal/swapsearch"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the swapscout CLI application.
//
// It registers all available commands:
//
//   - `search`: Runs one swap transaction search and renders the result.
//   - `chains`: Lists the supported blockchain networks.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - svc: The swapsearch service implementation used by the commands.
func Run(ctx context.Context, svc swapsearch.Service) error {
	return newApp(svc).Run(ctx, os.Args)
}

// newApp assembles the root command with every subcommand registered.
func newApp(svc swapsearch.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "swapscout",
		Description:           "Command-line interface for searching token swap buys on the analytics API.",
		Usage:                 "swapscout [command] [flags]",
		Commands: []*cli.Command{
			searchCommand(svc),
			chainsCommand(),
		},
	}
}
