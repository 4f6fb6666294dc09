package main

import (
	"context"
	"fmt"
	"os"

	"github.com/CXYZTW/swapscout/internal/handlers/cli"
	"github.com/CXYZTW/swapscout/internal/infra/dexguru"
	"github.com/CXYZTW/swapscout/internal/pkg/logger"
	transporthttp "github.com/CXYZTW/swapscout/internal/pkg/transport/http"
	"github.com/CXYZTW/swapscout/internal/swapsearch"
)

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return err
	}
	defer logger.Sync()

	httpc := transporthttp.NewClient(transporthttp.WithTimeout(cfg.HTTPTimeout))
	api := dexguru.NewClient(cfg.BaseURL, cfg.APIKey, httpc)
	svc := swapsearch.New(api, api)

	return cli.Run(ctx, svc)
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "swapscout:", err)
		os.Exit(1)
	}
}
