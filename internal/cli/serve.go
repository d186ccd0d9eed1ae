package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/salon-api/internal/audit"
	dbpkg "github.com/BruksfildServices01/salon-api/internal/db"
	"github.com/BruksfildServices01/salon-api/internal/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	closePool := func() error { return dbpkg.Close(db) }

	auditDispatcher := audit.NewDispatcher(audit.New(logger))

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, logger, auditDispatcher)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	logger.Info("server listening", "addr", cfg.Addr(), "env", cfg.AppEnv)

	select {
	case err := <-serverErr:
		auditDispatcher.Close()
		closeDBPool(logger, closePool)
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	return shutdown(logger, srv, auditDispatcher, closePool, cfg.ShutdownTimeout)
}

type drainer interface {
	Shutdown(ctx context.Context) error
}

// shutdown stops accepting requests, waits for in-flight ones, then drains
// the audit queue and closes the pool. If the wait times out the pool stays
// open because handlers may still be using it; process exit releases it.
func shutdown(
	logger *slog.Logger,
	srv drainer,
	events interface{ Close() },
	closePool func() error,
	timeout time.Duration,
) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		events.Close()
		logger.Warn("handlers still running, leaving database pool open", "error", err)
		return fmt.Errorf("server shutdown error: %w", err)
	}
	logger.Info("server stopped")

	events.Close()
	closeDBPool(logger, closePool)
	return nil
}

func closeDBPool(logger *slog.Logger, closePool func() error) {
	if err := closePool(); err != nil {
		logger.Error("failed to close database pool", "error", err)
		return
	}
	logger.Info("database pool closed")
}
