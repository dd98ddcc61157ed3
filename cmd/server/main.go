package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"ridelite/internal/app"
	"ridelite/internal/config"
	"ridelite/internal/handler"
	"ridelite/internal/service"
	"ridelite/internal/store"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the store backend can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize the key-value store backend.
	var kv store.Store
	var redisClient *redis.Client
	switch cfg.Store.Backend {
	case "redis":
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		kv = store.NewRedisStore(redisClient)
		log.Println("Connected to Redis")
	case "memory":
		kv = store.NewMemoryStore()
		log.Println("Using in-memory store (state is process-local)")
	default:
		log.Fatalf("unknown store backend: %s", cfg.Store.Backend)
	}

	// Wire dependencies.
	server, err := wireServer(ctx, kv, redisClient, nrApp, cfg)
	if err != nil {
		log.Fatalf("failed to wire server: %v", err)
	}

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(ctx context.Context, kv store.Store, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, error) {
	sim := service.DefaultSim()
	if cfg.Simulation.Seed != 0 {
		sim = service.SeededSim(cfg.Simulation.Seed)
		sim.Sleep = time.Sleep
	}

	// Initialize services. The session rehydrates from the store here.
	sessions, err := service.NewSessionService(ctx, kv, cfg.Simulation.LoginDelay, sim)
	if err != nil {
		return nil, err
	}
	matching := service.NewMatchingService(kv, cfg.Simulation.SearchDelay, sim)
	wallet := service.NewWalletService(kv, cfg.Simulation.PaymentDelay, sim)

	// Initialize handlers.
	authHandler := handler.NewAuthHandler(sessions)
	rideHandler := handler.NewRideHandler(matching)
	walletHandler := handler.NewWalletHandler(wallet)
	tripHandler := handler.NewTripHandler(wallet)
	metaHandler := handler.NewMetaHandler()

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:   authHandler,
		RideHandler:   rideHandler,
		WalletHandler: walletHandler,
		TripHandler:   tripHandler,
		MetaHandler:   metaHandler,
		RedisClient:   redisClient,
		NewRelicApp:   nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, nil
}
