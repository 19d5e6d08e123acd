package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/pkg/telemetry"

	healthgo "github.com/hellofresh/health-go/v5"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the enabled jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) (err error) {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, a.close()) }()

	logger := a.logger
	logger.InfoContext(ctx, "Setting up opentelemetry")
	otelShutdown, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName:    a.cfg.App.Name,
		ServiceVersion: a.cfg.App.Version,
		Enabled:        a.cfg.Telemetry.Enabled,
		Endpoint:       a.cfg.Telemetry.Endpoint,
		SampleRate:     a.cfg.Telemetry.SampleRate,
		BatchTimeout:   a.cfg.Telemetry.BatchTimeout,
	})
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, otelShutdown(context.Background())) }()

	sqlDB, err := a.gormDB.DB()
	if err != nil {
		return err
	}
	health, err := healthgo.New(
		healthgo.WithComponent(healthgo.Component{
			Name:    a.cfg.App.Name,
			Version: a.cfg.App.Version,
		}),
		healthgo.WithChecks(healthgo.Config{
			Name:    "postgres",
			Timeout: 2 * time.Second,
			Check:   sqlDB.PingContext,
		}),
	)
	if err != nil {
		return err
	}

	e, err := httpadapter.NewRouter(a.root.CreateServer(), httpadapter.RouterOptions{
		ServiceName:   a.cfg.App.Name,
		Logger:        logger,
		Health:        health,
		EnablePprof:   a.cfg.HTTP.Pprof,
		EnableSwagger: a.cfg.HTTP.Swagger,
	})
	if err != nil {
		return err
	}

	jobManager, err := a.root.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	errChan := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "listening for requests", slog.String("addr", a.cfg.HTTP.Address()))
		errChan <- e.Start(a.cfg.HTTP.Address())
	}()

	select {
	case err = <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		// first signal received
	}

	logger.InfoContext(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
