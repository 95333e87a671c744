package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/janus/internal/api/rest"
	"github.com/fortuna/janus/internal/cache"
	"github.com/fortuna/janus/internal/config"
	"github.com/fortuna/janus/internal/season"
	"github.com/fortuna/janus/internal/store"
	"github.com/fortuna/janus/internal/trade"
)

const (
	serviceName    = "janus"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - Trade Evaluation Service", serviceName, serviceVersion)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := store.NewDatabase(cfg.AtlasDSN)
	if err != nil {
		log.Fatalf("Failed to connect to Atlas database: %v", err)
	}
	defer db.Close()

	log.Println("✓ Connected to Atlas database")

	// Run migrations
	if cfg.RunMigrations {
		if err := db.RunMigrations(cfg.MigrationsDir); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		log.Println("✓ Database migrations applied")
	}

	checks := map[string]rest.HealthChecker{"database": db}

	var lookup trade.SeasonLookup = season.NewDatabaseProvider(db)

	// Season cache sits in front of the database provider
	if cfg.EnableCache {
		redisCache := connectRedis(cfg)
		defer redisCache.Close()

		checks["redis"] = redisCache
		lookup = season.NewCachedLookup(lookup, redisCache, cfg.CacheTTL)
		log.Printf("✓ Season cache enabled (ttl %s)", cfg.CacheTTL)
	} else {
		log.Println("⚠️  Season cache disabled")
	}

	analyzer := trade.NewAnalyzer(lookup, trade.WithLookupTimeout(cfg.LookupTimeout))

	// Initialize REST API server
	restServer := rest.NewServer(cfg.RESTPort, rest.NewHandler(analyzer, checks), cfg.CORSOrigins)
	go func() {
		log.Printf("Starting REST API server on port %s", cfg.RESTPort)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ REST API server listening on :%s", cfg.RESTPort)
	log.Printf("✓ Janus v%s started successfully", serviceVersion)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down Janus gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}

	log.Println("Janus stopped")
}

// connectRedis retries until Redis answers or the attempts run out
func connectRedis(cfg config.Config) *cache.RedisCache {
	log.Println("Connecting to Redis...")
	for i := 0; ; i++ {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL)
		if err == nil {
			log.Println("✓ Connected to Redis")
			return redisCache
		}

		if i >= cfg.RedisRetries-1 {
			log.Fatalf("Failed to connect to Redis after %d attempts: %v", cfg.RedisRetries, err)
		}
		log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, cfg.RedisRetries, err, cfg.RetryDelay)
		time.Sleep(cfg.RetryDelay)
	}
}
