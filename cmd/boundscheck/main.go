// boundscheck opens every configured region preset and reports its cell count.
// With validation on, each preset gets the full cuboid self-check.
//
// Usage:
//
//	go run ./cmd/boundscheck -config config/builder.yaml
//	go run ./cmd/boundscheck -validate
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/cuboid/internal/bounds"
	"github.com/udisondev/cuboid/internal/config"
)

const BuilderConfigPath = "config/builder.yaml"

func main() {
	cfgPath := flag.String("config", BuilderConfigPath, "builder config file")
	validate := flag.Bool("validate", false, "force cuboid validation on")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *cfgPath, *validate); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath string, forceValidate bool) error {
	if p := os.Getenv("CUBOID_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadBuilder(cfgPath)
	if err != nil {
		return fmt.Errorf("loading builder config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	validate := cfg.Validate || forceValidate
	slog.Info("config loaded",
		"path", cfgPath,
		"validate", validate,
		"presets", len(cfg.Presets))

	opened, err := openPresets(ctx, cfg.Presets, validate)
	if err != nil {
		return err
	}

	var total int64
	for i, c := range opened {
		slog.Info("preset ready",
			"name", cfg.Presets[i].Name,
			"dims", c.String(),
			"cells", c.Size())
		total += int64(c.Size())
	}
	slog.Info("all presets ready", "count", len(opened), "cells", total)
	return nil
}

// openPresets opens each preset on its own goroutine. The result is in preset order.
func openPresets(ctx context.Context, presets []config.Preset, validate bool) ([]bounds.Cuboid, error) {
	opened := make([]bounds.Cuboid, len(presets))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range presets {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := bounds.Open(validate, p.SizeX, p.SizeY, p.SizeZ)
			if err != nil {
				return fmt.Errorf("preset %q: %w", p.Name, err)
			}
			slog.Debug("preset opened", "name", p.Name, "dims", c.String())
			opened[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return opened, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
