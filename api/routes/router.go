package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smartcitysecure/smartcity-api/api/controllers"
	"github.com/smartcitysecure/smartcity-api/api/middleware"
	"github.com/smartcitysecure/smartcity-api/api/responses"
	"github.com/smartcitysecure/smartcity-api/internal/alerts"
	"github.com/smartcitysecure/smartcity-api/internal/auth"
	"github.com/smartcitysecure/smartcity-api/internal/energy"
	"github.com/smartcitysecure/smartcity-api/internal/luminaires"
	"github.com/smartcitysecure/smartcity-api/internal/postes"
	"github.com/smartcitysecure/smartcity-api/internal/sensors"
	"github.com/smartcitysecure/smartcity-api/internal/users"
	"github.com/smartcitysecure/smartcity-api/pkg/config"
	pkgerrors "github.com/smartcitysecure/smartcity-api/pkg/errors"
	"github.com/smartcitysecure/smartcity-api/pkg/logger"
	"github.com/smartcitysecure/smartcity-api/pkg/metrics"
)

// Services groups the domain services exposed over HTTP.
type Services struct {
	Users      users.Service
	Auth       auth.Service
	Sensors    sensors.Service
	Luminaires luminaires.Service
	Energy     energy.Service
	Alerts     alerts.Service
	Postes     postes.Service
}

// baseMiddleware runs on every route. RequestID comes first so panics caught
// by Recoverer are logged with the request id.
func baseMiddleware(logg *logger.Logger, httpMetrics *metrics.HTTPMetrics) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(logg),
		middleware.Recoverer(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	}
}

// NewRouter builds the API handler. reg may be nil to skip metrics; limiter
// may be nil to run without rate limiting.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	reg *prometheus.Registry,
	readinessDeps map[string]controllers.Pinger,
	limiter middleware.RateLimitStore,
	svc Services,
) http.Handler {
	r := chi.NewRouter()

	var httpMetrics *metrics.HTTPMetrics
	if reg != nil {
		httpMetrics = metrics.NewHTTPMetrics(reg)
	}

	r.Use(baseMiddleware(logg, httpMetrics)...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), nil, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), nil, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "method not allowed"))
	})

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Get("/", controllers.Root())
	r.Get("/ping", controllers.Ping())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readinessDeps))
	})

	if reg != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	r.With(middleware.AuthRateLimit(loginPolicy, limiter, logg)).Post("/login", controllers.AuthLogin(svc.Auth, logg))

	// Route mounts each collection on both "/name/" and "/name".
	r.Route("/usuarios", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, limiter, logg)).Post("/", controllers.UsersCreate(svc.Users, logg))
		r.Get("/", controllers.UsersList(svc.Users, logg))
	})
	r.Route("/sensores", func(r chi.Router) {
		r.Post("/", controllers.SensorsCreate(svc.Sensors, logg))
		r.Get("/", controllers.SensorsList(svc.Sensors, logg))
	})
	r.Route("/luminarias", func(r chi.Router) {
		r.Post("/", controllers.LuminairesCreate(svc.Luminaires, logg))
		r.Get("/", controllers.LuminairesList(svc.Luminaires, logg))
	})
	r.Route("/consumo", func(r chi.Router) {
		r.Post("/", controllers.EnergyCreate(svc.Energy, logg))
		r.Get("/", controllers.EnergyList(svc.Energy, logg))
	})
	r.Route("/alertas", func(r chi.Router) {
		r.Post("/", controllers.AlertsCreate(svc.Alerts, logg))
		r.Get("/", controllers.AlertsList(svc.Alerts, logg))
	})
	r.Route("/postes", func(r chi.Router) {
		r.Post("/", controllers.PostesCreate(svc.Postes, logg))
		r.Get("/", controllers.PostesList(svc.Postes, logg))
	})

	return r
}
