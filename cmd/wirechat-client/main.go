package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vovakirdan/wirechat-client/internal/client"
	"github.com/vovakirdan/wirechat-client/internal/config"
	"github.com/vovakirdan/wirechat-client/internal/display"
	"github.com/vovakirdan/wirechat-client/internal/logger"
	"github.com/vovakirdan/wirechat-client/internal/wire"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logger.New("wirechat-client")

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("load config")
		return fmt.Errorf("config: %w", err)
	}

	conn := wire.NewClient(cfg, log)
	if err := conn.Connect(ctx); err != nil {
		log.Error().Err(err).Msg("connect")
		return fmt.Errorf("connect %s: %w", cfg.URL, err)
	}
	defer conn.Close()

	out := display.New(os.Stdout)
	out.Line("Connected to " + cfg.URL)

	app := client.New(os.Stdin, conn, out, log)
	return app.Run(ctx)
}
