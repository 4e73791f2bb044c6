/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the compliance engine service. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env / environment)
  2. Build the zap logger
  3. Build the clock (optionally offset for demo environments)
  4. Load and expand registration patterns (fatal on duplicate years)
  5. Open the session store (memory or SQLite)
  6. Configure the HTTP router
  7. Start server with graceful shutdown

CONFIGURATION:
  See config/config.go. Notably SESSION_DB_PATH selects the session
  store, PATTERNS_FILE the registration patterns, and TIME_OFFSET shifts
  the engine clock.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the session store
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - regperiod/provider.go: Pattern expansion
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/packlane/compliance-engine/api"
	"github.com/packlane/compliance-engine/clock"
	"github.com/packlane/compliance-engine/config"
	"github.com/packlane/compliance-engine/factory"
	"github.com/packlane/compliance-engine/logger"
	"github.com/packlane/compliance-engine/regperiod"
	"github.com/packlane/compliance-engine/session"
	"github.com/packlane/compliance-engine/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var clk clock.Clock = clock.System{}
	if cfg.TimeOffset != 0 {
		clk = clock.Offset{Delta: cfg.TimeOffset}
		log.Warn("engine clock is offset", zap.Duration("offset", cfg.TimeOffset))
	}

	// Registration patterns. Duplicate-year configuration is fatal here,
	// before the server accepts traffic.
	patternFactory := factory.NewPatternFactory()
	var patterns []regperiod.Pattern
	if cfg.PatternsFile != "" {
		patterns, err = patternFactory.LoadPatterns(cfg.PatternsFile)
	} else {
		patterns, err = patternFactory.ParsePatterns(factory.DefaultPatternsJSON())
	}
	if err != nil {
		log.Fatal("failed to load registration patterns", zap.Error(err))
	}

	windows, err := regperiod.NewProvider(patterns, clk)
	if err != nil {
		log.Fatal("invalid registration pattern configuration", zap.Error(err))
	}

	// Session store
	var sessions session.Store
	var closeStore func() error
	if cfg.SessionDBPath != "" {
		store, err := sqlite.New(cfg.SessionDBPath)
		if err != nil {
			log.Fatal("failed to open session database", zap.Error(err))
		}
		sessions = store
		closeStore = store.Close
		go sweepSessions(store, cfg.SessionTTL, clk, log)
	} else {
		sessions = session.NewMemory()
		closeStore = func() error { return nil }
	}
	defer closeStore()

	handler := api.NewHandler(sessions, windows, clk, log)
	router := api.NewRouter(handler, log, cfg.CORS.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.Int("port", cfg.Port), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

// sweepSessions periodically removes sessions untouched for longer than
// the configured TTL.
func sweepSessions(store *sqlite.Store, ttl time.Duration, clk clock.Clock, log *zap.Logger) {
	ticker := time.NewTicker(ttl / 4)
	defer ticker.Stop()

	for range ticker.C {
		removed, err := store.DeleteExpired(context.Background(), clk.Now().Add(-ttl))
		if err != nil {
			log.Error("session sweep failed", zap.Error(err))
			continue
		}
		if removed > 0 {
			log.Info("expired sessions removed", zap.Int64("count", removed))
		}
	}
}
