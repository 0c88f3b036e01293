package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/journeyexplore/trip-planner-api/internal/adapters/httpapi"
	memgenerations "github.com/journeyexplore/trip-planner-api/internal/adapters/memory/generations"
	memidempotency "github.com/journeyexplore/trip-planner-api/internal/adapters/memory/idempotency"
	memprofilerepo "github.com/journeyexplore/trip-planner-api/internal/adapters/memory/profilerepo"
	memtripstore "github.com/journeyexplore/trip-planner-api/internal/adapters/memory/tripstore"
	"github.com/journeyexplore/trip-planner-api/internal/adapters/pdf"
	postgres "github.com/journeyexplore/trip-planner-api/internal/adapters/postgres"
	pgidempotency "github.com/journeyexplore/trip-planner-api/internal/adapters/postgres/idempotency"
	pgprofilerepo "github.com/journeyexplore/trip-planner-api/internal/adapters/postgres/profilerepo"
	pgtripstore "github.com/journeyexplore/trip-planner-api/internal/adapters/postgres/tripstore"
	"github.com/journeyexplore/trip-planner-api/internal/adapters/providers"
	"github.com/journeyexplore/trip-planner-api/internal/app/export"
	"github.com/journeyexplore/trip-planner-api/internal/app/planner"
	"github.com/journeyexplore/trip-planner-api/internal/app/profile"
	"github.com/journeyexplore/trip-planner-api/internal/app/trips"
	platformclock "github.com/journeyexplore/trip-planner-api/internal/platform/clock"
	"github.com/journeyexplore/trip-planner-api/internal/platform/config"
	"github.com/journeyexplore/trip-planner-api/internal/platform/logging"
	idempotencyport "github.com/journeyexplore/trip-planner-api/internal/ports/out/idempotency"
	profilerepoport "github.com/journeyexplore/trip-planner-api/internal/ports/out/profilerepo"
	tripstoreport "github.com/journeyexplore/trip-planner-api/internal/ports/out/tripstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("api stopped", "err", err)
		os.Exit(1)
	}
}

// run serves the API until ctx ends. Every resource it opens is released
// before it returns.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	model, err := providers.New(ctx, cfg.Model, logger)
	if err != nil {
		return fmt.Errorf("model setup (%s): %w", cfg.Model.Provider, err)
	}

	clk := platformclock.NewSystemClock()

	var (
		tripStore   tripstoreport.Store
		profileRepo profilerepoport.Repository
		idemStore   idempotencyport.Store
	)
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Storage.DatabaseURL, postgres.PoolOptions{ApplicationName: "trip-planner-api"})
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		tripStore = pgtripstore.NewStore(pool)
		profileRepo = pgprofilerepo.NewRepo(pool)
		idemStore = pgidempotency.NewStore(pool)
	default:
		tripStore = memtripstore.NewStore()
		profileRepo = memprofilerepo.NewRepo()
		idemStore = memidempotency.NewStore(memidempotency.DefaultTTL)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	plannerSvc := planner.NewService(model,
		planner.WithLogger(logger),
		planner.WithMetrics(planner.NewMetrics(reg)),
		planner.WithTimeout(cfg.Model.Timeout),
	)
	tripSvc := trips.NewService(tripStore, clk)
	if cfg.Storage.SeedSamples {
		if err := tripSvc.SeedSampleTrips(ctx); err != nil {
			return fmt.Errorf("seeding sample trips: %w", err)
		}
	}

	api := httpapi.NewServer(
		plannerSvc,
		memgenerations.NewStore(cfg.Generate.TTL),
		tripSvc,
		profile.NewService(profileRepo),
		export.NewExporter(pdf.NewCanvas, clk),
		clk,
		httpapi.WithLogger(logger),
		httpapi.WithIdempotencyStore(idemStore),
	)
	handler := httpapi.NewRouter(api, httpapi.RouterOptions{
		Logger:         logger,
		Metrics:        httpapi.NewMetrics(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("api listening",
			"port", cfg.Server.Port,
			"provider", cfg.Model.Provider,
			"model", cfg.Model.Name,
			"storage", cfg.Storage.Backend,
		)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
