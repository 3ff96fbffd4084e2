package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jonathangoncalves/MTGADraft/internal/adapters/cards"
	httpadapter "github.com/jonathangoncalves/MTGADraft/internal/adapters/http"
	"github.com/jonathangoncalves/MTGADraft/internal/adapters/slotconfig"
	"github.com/jonathangoncalves/MTGADraft/internal/app"
	"github.com/jonathangoncalves/MTGADraft/internal/config"
	"github.com/jonathangoncalves/MTGADraft/internal/domain"
)

// stdRNG delegates to the auto-seeded top-level math/rand/v2 functions.
type stdRNG struct{}

func (stdRNG) IntN(n int) int   { return rand.IntN(n) }
func (stdRNG) Float64() float64 { return rand.Float64() }

// lockedRNG serializes access to a seeded generator shared by requests.
type lockedRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRNG) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRNG) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	store := cards.NewFileStore(cfg.CardsPath, cfg.BasicLandsPath)
	if err := store.Load(); err != nil {
		logger.Error("failed to load card database", "error", err)
		os.Exit(1)
	}

	slots, err := slotconfig.Load(cfg.SpecialSlotsPath)
	if err != nil {
		logger.Error("failed to load special land slots", "error", err)
		os.Exit(1)
	}
	registry, err := slotconfig.Build(context.Background(), store, slots)
	if err != nil {
		logger.Error("failed to build land slot registry", "error", err)
		os.Exit(1)
	}
	logger.Info("land slots ready", "sets", len(registry.Sets()), "special", len(slots.Slots))

	var rng domain.RNG = stdRNG{}
	if cfg.HasSeed {
		rng = &lockedRNG{r: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))}
		logger.Info("using seeded rng", "seed", cfg.Seed)
	}

	svc := app.NewLandService(registry, store, rng, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
