// Package main is the entry point for mazebound.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/MarouanBenali/mazebound/internal/game"
	"github.com/MarouanBenali/mazebound/internal/telemetry"
)

func main() {
	// Load .env for local development. Not fatal: env vars may be set
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	// Tracing is optional; without an endpoint the game runs with the
	// default no-op provider.
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg := game.LoadConfig()

	g, err := game.New()
	if err != nil {
		log.Fatalf("failed to initialize game: %v", err)
	}

	if err := g.Run(ctx, cfg); err != nil {
		log.Fatalf("game error: %v", err)
	}
}
