package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"niyam/internal/config"
	"niyam/internal/engine"
	"niyam/internal/handler"
	"niyam/internal/logger"
	"niyam/internal/rcm"
	"niyam/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Log); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	// Initialize the engine
	detector := rcm.NewDetector()
	eng := engine.NewWithDetector(detector)

	// Initialize handlers
	h := router.Handlers{
		Assess:  handler.NewAssessHandler(eng),
		Tax:     handler.NewTaxHandler(detector),
		ITC:     handler.NewITCHandler(),
		Returns: handler.NewReturnsHandler(),
		Recon:   handler.NewReconHandler(),
		TDS:     handler.NewTDSHandler(),
		Health:  handler.NewHealthHandler(),
	}

	// Setup router
	r := router.Setup(cfg, h)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
