package main

import (
	"context"   // Lifecycle and Redis operations
	"errors"    // Server close detection
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Graceful shutdown
	"syscall"   // SIGTERM
	"time"      // Timeouts

	"moneywise/internal/api"     // HTTP handlers
	"moneywise/internal/chat"    // Chat bot
	"moneywise/internal/config"  // Configuration
	"moneywise/internal/db"      // MySQL session store
	"moneywise/internal/session" // Session store and deferrer
	"moneywise/internal/utils"   // Cache

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"golang.org/x/sync/errgroup"   // Server and sweeper lifecycle
)

const shutdownTimeout = 30 * time.Second

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	store := openStore(cfg)
	cache := openCache(cfg)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Options{
		Store:        store,
		Cache:        cache,
		Deferrer:     session.TimerDeferrer{},
		Bot:          chat.NewBot(nil, cfg.ChatDelayMin, cfg.ChatDelayMax),
		JWTSecret:    cfg.JWTSecret,
		SessionTTL:   cfg.SessionTTL,
		PaymentDelay: cfg.PaymentDelay,
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.WithFields(logrus.Fields{
			"port":    cfg.AppPort,
			"backend": cfg.StoreBackend,
			"cache":   cache != nil,
		}).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		sweep(ctx, store, cfg.SweepInterval, cfg.SessionIdleTimeout)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logrus.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
	logrus.Info("Server stopped gracefully")
}

// openStore selects the session backend
func openStore(cfg *config.Config) session.Store {
	if cfg.StoreBackend != config.BackendMySQL {
		return session.NewMemoryStore()
	}
	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	return db.NewSessionStore(gdb)
}

// openCache connects to Redis when configured. A nil cache disables caching.
func openCache(cfg *config.Config) *utils.Cache {
	if cfg.RedisAddr == "" {
		return nil
	}
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}
	return utils.NewCache(redisClient, cfg.CacheTTL)
}

// sweep ends sessions that have been idle longer than idle
func sweep(ctx context.Context, store session.Store, every, idle time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := store.Sweep(ctx, now.Add(-idle))
			if err != nil {
				logrus.WithError(err).Warn("Session sweep failed")
				continue
			}
			if n > 0 {
				logrus.WithField("sessions", n).Info("Idle sessions ended")
			}
		}
	}
}
