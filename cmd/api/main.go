package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/smartcitysecure/smartcity-api/api/controllers"
	"github.com/smartcitysecure/smartcity-api/api/middleware"
	"github.com/smartcitysecure/smartcity-api/api/routes"
	"github.com/smartcitysecure/smartcity-api/internal/alerts"
	"github.com/smartcitysecure/smartcity-api/internal/auth"
	"github.com/smartcitysecure/smartcity-api/internal/energy"
	"github.com/smartcitysecure/smartcity-api/internal/luminaires"
	"github.com/smartcitysecure/smartcity-api/internal/postes"
	"github.com/smartcitysecure/smartcity-api/internal/sensors"
	"github.com/smartcitysecure/smartcity-api/internal/users"
	"github.com/smartcitysecure/smartcity-api/pkg/config"
	"github.com/smartcitysecure/smartcity-api/pkg/db"
	"github.com/smartcitysecure/smartcity-api/pkg/instance"
	"github.com/smartcitysecure/smartcity-api/pkg/logger"
	"github.com/smartcitysecure/smartcity-api/pkg/metrics"
	"github.com/smartcitysecure/smartcity-api/pkg/redis"
	"github.com/smartcitysecure/smartcity-api/pkg/security"
)

const serviceName = "smartcity-api"

func main() {
	logg := logger.New(logger.Options{ServiceName: serviceName, Format: os.Getenv(config.EnvLogFormat)})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment", nil)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storeMetrics := metrics.NewStoreMetrics(reg)

	readinessDeps := map[string]controllers.Pinger{}

	var dbClient *db.Client
	if cfg.Store.UsesMemory() {
		logg.Warn(ctx, "store driver is memory; records are lost on restart", nil)
	} else {
		dbClient, err = db.New(ctx, cfg.Store, logg)
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, dbClient.Close())
		}()
		// Fails when existing documents already share an email.
		if err := dbClient.EnsureIndexes(ctx); err != nil {
			logg.Warn(ctx, "mongo index bootstrap failed", err)
		}
		readinessDeps["mongo"] = dbClient
	}

	var limiter middleware.RateLimitStore
	if cfg.Redis.Enabled() {
		var redisClient *redis.Client
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
		limiter = redisClient
		readinessDeps["redis"] = redisClient
	} else {
		logg.Info(ctx, "redis not configured; auth rate limiting disabled")
	}

	services, err := buildServices(cfg, newStores(dbClient, storeMetrics))
	if err != nil {
		return err
	}

	addr := ":" + cfg.App.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, reg, readinessDeps, limiter, services),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logCtx := logg.WithFields(ctx, map[string]any{
			"env":      cfg.App.Env,
			"addr":     addr,
			"driver":   cfg.Store.Driver,
			"instance": instance.GetID(),
		})
		logg.Info(logCtx, "starting api server")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logg.Info(context.Background(), "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func buildServices(cfg *config.Config, st stores) (routes.Services, error) {
	hasher := security.NewHasher(cfg.Password)

	usersService, err := users.NewService(users.ServiceParams{
		Store:              st.users,
		Hasher:             hasher,
		ExposePasswordHash: cfg.Users.ExposePasswordHash,
	})
	if err != nil {
		return routes.Services{}, err
	}
	authService, err := auth.NewService(auth.ServiceParams{
		Users:    st.users,
		Verifier: hasher,
	})
	if err != nil {
		return routes.Services{}, err
	}
	sensorsService, err := sensors.NewService(st.sensors, nil)
	if err != nil {
		return routes.Services{}, err
	}
	luminairesService, err := luminaires.NewService(st.luminaires, nil)
	if err != nil {
		return routes.Services{}, err
	}
	energyService, err := energy.NewService(st.energy, nil)
	if err != nil {
		return routes.Services{}, err
	}
	alertsService, err := alerts.NewService(st.alerts, nil)
	if err != nil {
		return routes.Services{}, err
	}
	postesService, err := postes.NewService(st.postes)
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Users:      usersService,
		Auth:       authService,
		Sensors:    sensorsService,
		Luminaires: luminairesService,
		Energy:     energyService,
		Alerts:     alertsService,
		Postes:     postesService,
	}, nil
}
