package main

import (
	"context"
	"fmt"
	"os"

	auth "gig-market/internal/authService"
	bids "gig-market/internal/bidService"
	"gig-market/internal/config"
	gigs "gig-market/internal/gigService"
	"gig-market/internal/notifier"
	"gig-market/internal/repository"
	"gig-market/internal/server"
	"gig-market/utils"
)

func main() {
	cfg := config.Load()

	store, err := newStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize store: %v\n", err)
		os.Exit(1)
	}

	sink := newNotifier(cfg)

	gigService := gigs.NewGigService(store)
	bidService := bids.NewBidService(store, sink)
	authService := auth.NewAuthService(store, cfg.JWTSecret)

	router := server.SetupRouter(gigService, bidService, authService, cfg.JWTSecret)

	fmt.Printf("Starting gig market server on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// newStore selects Postgres when DATABASE_URL is set, in-memory otherwise
func newStore(cfg config.Config) (repository.MarketStore, error) {
	if cfg.DatabaseURL == "" {
		utils.Warn("DATABASE_URL not set, using in-memory store", nil)
		return repository.NewMemoryStore(), nil
	}
	return repository.NewPostgresStore(context.Background(), cfg.DatabaseURL)
}

// newNotifier selects the Redis push channel when REDIS_ADDR is set,
// log-only delivery otherwise
func newNotifier(cfg config.Config) notifier.Notifier {
	if cfg.RedisAddr == "" {
		utils.Warn("REDIS_ADDR not set, hire notifications will only be logged", nil)
		return notifier.NewLogNotifier()
	}
	return notifier.NewRedisNotifier(cfg.RedisAddr, cfg.RedisPassword)
}
