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

	"github.com/pokecode-app/pokecode/internal/achievement"
	"github.com/pokecode-app/pokecode/internal/capture"
	"github.com/pokecode-app/pokecode/internal/config"
	"github.com/pokecode-app/pokecode/internal/database"
	"github.com/pokecode-app/pokecode/internal/database/postgres"
	"github.com/pokecode-app/pokecode/internal/encounter"
	"github.com/pokecode-app/pokecode/internal/hatchery"
	"github.com/pokecode-app/pokecode/internal/logger"
	"github.com/pokecode-app/pokecode/internal/pokeapi"
	"github.com/pokecode-app/pokecode/internal/server"
	"github.com/pokecode-app/pokecode/internal/shop"
)

const shutdownTimeout = 10 * time.Second

// @title PokeCode API
// @version 1.0
// @description Reward engine for competitive programming: solves earn gold and wild Pokémon to catch, collect, and hatch.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))
	slog.Info("Starting PokeCode", "environment", cfg.Environment, "version", cfg.Version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	inventoryRepo := postgres.NewInventoryRepository(dbPool)
	pokemonRepo := postgres.NewPokemonRepository(dbPool)
	achievementRepo := postgres.NewAchievementRepository(dbPool)
	solveRepo := postgres.NewSolveRepository(dbPool)

	// External detail source
	fetcher, err := pokeapi.NewClient(cfg.PokeAPIURL)
	if err != nil {
		slog.Error("Failed to create detail client", "error", err)
		os.Exit(1)
	}

	// Services; achievements first, the other services push progress into it
	achievementService := achievement.NewService(achievementRepo, pokemonRepo, solveRepo, userRepo, inventoryRepo, fetcher)
	encounterService := encounter.NewService(pokemonRepo, solveRepo, userRepo, fetcher, achievementService)
	captureService := capture.NewService(pokemonRepo, inventoryRepo, achievementService)
	shopService := shop.NewService(userRepo, inventoryRepo)
	hatcheryService := hatchery.NewService(inventoryRepo, pokemonRepo, userRepo, fetcher, achievementService)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, server.Services{
		Users:       userRepo,
		Inventory:   inventoryRepo,
		Encounter:   encounterService,
		Capture:     captureService,
		Achievement: achievementService,
		Shop:        shopService,
		Hatchery:    hatcheryService,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced to shut down", "error", err)
	}
	slog.Info("Server stopped")
}
