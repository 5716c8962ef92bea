package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-client/internal/config"
	"storefront-client/internal/stubapi"
	"storefront-client/pkg/logger"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(logger.Options{Service: "stubapi", Env: "local", Level: cfg.LogLevel})

	stub := stubapi.New(log)
	stub.AddSession(cfg.StubSessionToken, "user-demo", "demo@example.com")

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           stub.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting stub backend", "addr", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info("shutting down", "signal", sig.String())
	case err := <-serverErr:
		log.Error("server error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
