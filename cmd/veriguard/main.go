package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prototypevg/VeriGuard-AI-app/internal/infrastructure/config"
	"github.com/prototypevg/VeriGuard-AI-app/internal/presentation/cli"
	"github.com/prototypevg/VeriGuard-AI-app/pkg/observability"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Logs go to stderr so stdout carries only results.
	logger := observability.InitLogger(observability.LogConfig{
		Output:  os.Stderr,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "veriguard",
	})

	if cfg.TraceStdout {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			Output:      os.Stderr,
			ServiceName: "veriguard",
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Warn("tracer shutdown", "error", err)
				}
			}()
		}
	}

	app := &cli.App{
		Config: cfg,
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	return app.Run(ctx, os.Args[1:])
}
