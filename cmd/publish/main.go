package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"golang.org/x/sync/errgroup"

	"github.com/publish-data/publish-data/cmd/publish/cli"
	"github.com/publish-data/publish-data/internal/app"
	"github.com/publish-data/publish-data/internal/datafiles"
	"github.com/publish-data/publish-data/internal/observability"
	"github.com/publish-data/publish-data/internal/shared"
	"github.com/publish-data/publish-data/internal/view"
)

const usage = `usage: publish [command]

commands:
  serve     run the HTTP service (default)
  resolve   resolve one set of date parts and print the range
`

func main() {
	args := os.Args[1:]
	command := "serve"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	switch command {
	case "serve":
		if err := serve(); err != nil {
			slog.Default().Error("publish exited", slog.Any("error", err))
			os.Exit(1)
		}
	case "resolve":
		opts, err := cli.ParseResolveFlags(args, os.Stderr)
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(cli.ExitUsage)
		}
		os.Exit(cli.ResolveCommand(datafiles.NewResolver(), opts))
	case "help", "-h", "--help":
		_, _ = fmt.Fprint(os.Stdout, usage)
	default:
		_, _ = fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", command, usage)
		os.Exit(cli.ExitUsage)
	}
}

func serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	templates, err := view.NewEngine()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	metrics := observability.NewMetrics()
	datafilesHandler := datafiles.NewHandler(logger, datafiles.NewResolver(), templates, shared.SystemClock{Location: loc}, metrics)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		DatafilesHandler: datafilesHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", cfg.AppAddr), slog.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.AppShutdownGrace)
		defer cancel()
		logger.Info("server shutting down")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
