package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/quantumio/qtask/internal/logging"
	"github.com/quantumio/qtask/internal/mockapi"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	seed := flag.Int64("seed", time.Now().UnixNano(), "rng seed for generated users")
	flag.Parse()

	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)
	ctx := context.Background()

	logger.Info(ctx, "mock listing endpoint starting", "addr", *addr)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mockapi.NewRouter(logger, *seed),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
