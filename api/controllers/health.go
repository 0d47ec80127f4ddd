package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/smartcitysecure/smartcity-api/api/responses"
	"github.com/smartcitysecure/smartcity-api/pkg/config"
	pkgerrors "github.com/smartcitysecure/smartcity-api/pkg/errors"
	"github.com/smartcitysecure/smartcity-api/pkg/logger"
)

const (
	envHeader        = "X-SmartCity-Env"
	readinessTimeout = 2 * time.Second
)

// Pinger is any dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every named dependency. Nil entries are skipped, which is
// how an unconfigured Redis stays out of the check. Ping errors are logged;
// callers only see "ok" or "unavailable" per dependency.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := make(map[string]string, len(deps))
		failed := false
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				if logg != nil {
					logg.Warn(logg.WithField(r.Context(), "dependency", name), "health.ready.ping_failed", err)
				}
				checks[name] = "unavailable"
				failed = true
				continue
			}
			checks[name] = "ok"
		}

		if failed {
			err := pkgerrors.New(pkgerrors.CodeDependency, "dependency unavailable").WithDetails(checks)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
