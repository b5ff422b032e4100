package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/samvad-hq/vzaar-go/internal/app"
	"github.com/samvad-hq/vzaar-go/internal/config"
	"github.com/samvad-hq/vzaar-go/internal/logger"
)

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("vzaar"),
		kong.Description("Command line client for the vzaar video API."),
		kong.UsageOnError(),
	)

	if err := run(kctx, &cli); err != nil {
		fmt.Fprintf(os.Stderr, "vzaar: %v\n", err)
		os.Exit(1)
	}
}

func run(kctx *kong.Context, cli *CLI) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cli.Globals.apply(cfg)

	// stdout carries command output, so logs go to stderr.
	if _, err := logger.InitWriter(cfg, os.Stderr); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	client, err := app.NewClient(cfg, logger.ZapLogger{})
	if err != nil {
		logger.ErrorObj("failed to initialize client", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return kctx.Run(&runtime{ctx: ctx, api: client, out: os.Stdout})
}
