package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/heartmarshall/leadfinder-backend/internal/config"
	"github.com/heartmarshall/leadfinder-backend/internal/metrics"
	"github.com/heartmarshall/leadfinder-backend/internal/service/dashboard"
	"github.com/heartmarshall/leadfinder-backend/internal/service/identity"
	"github.com/heartmarshall/leadfinder-backend/internal/service/lead"
	"github.com/heartmarshall/leadfinder-backend/internal/service/profile"
	"github.com/heartmarshall/leadfinder-backend/internal/service/search"
	"github.com/heartmarshall/leadfinder-backend/internal/service/shell"
	"github.com/heartmarshall/leadfinder-backend/internal/transport/middleware"
	"github.com/heartmarshall/leadfinder-backend/internal/transport/rest"
)

const rateLimitCleanup = 5 * time.Minute

// services groups the application services served over HTTP.
type services struct {
	identity  *identity.Service
	profiles  *profile.Service
	search    *search.Service
	leads     *lead.Service
	dashboard *dashboard.Service
}

// newServices wires the services over the selected data source.
func newServices(cfg *config.Config, ds *dataSource, m *metrics.Metrics, logger *slog.Logger) services {
	return services{
		identity:  identity.NewService(logger, ds.provider, ds.users, ds.verifier, m, cfg.Site.CallbackURL()),
		profiles:  profile.NewService(logger, ds.profiles, ds.tx),
		search:    search.NewService(logger, ds.leads, ds.profiles, ds.history, ds.results, m),
		leads:     lead.NewService(logger, ds.leads, ds.statuses, ds.tx),
		dashboard: dashboard.NewService(logger, ds.users, ds.profiles, ds.leads, ds.history),
	}
}

// newRouter builds the HTTP handler. The returned RateLimiter must be
// stopped on shutdown.
func newRouter(
	cfg *config.Config,
	svc services,
	checks map[string]rest.Pinger,
	m *metrics.Metrics,
	logger *slog.Logger,
) (http.Handler, *middleware.RateLimiter) {
	loginPath := cfg.Site.LoginPath
	cookies := middleware.SessionCookies{
		Access:  cfg.Session.AccessCookie,
		Refresh: cfg.Session.RefreshCookie,
		Secure:  cfg.Session.Secure,
		MaxAge:  cfg.Session.MaxAge,
	}
	prefs := shell.Store{
		Cookie: cfg.Session.ThemeCookie,
		Secure: cfg.Session.Secure,
		MaxAge: cfg.Session.MaxAge,
	}

	authH := rest.NewAuthHandler(svc.identity, rest.AuthConfig{
		Cookies:        cookies,
		VerifierCookie: cfg.Session.VerifierCookie,
		LoginPath:      loginPath,
		ErrorPath:      cfg.Site.ErrorPath,
	}, logger)
	profileH := rest.NewProfileHandler(svc.profiles, loginPath, logger)
	searchH := rest.NewSearchHandler(svc.search, loginPath, logger)
	leadH := rest.NewLeadHandler(svc.leads, loginPath, logger)
	dashboardH := rest.NewDashboardHandler(svc.dashboard, loginPath, logger)
	shellH := rest.NewShellHandler(svc.identity, prefs, loginPath, logger)
	healthH := rest.NewHealthHandler(BuildVersion(), checks)

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	authLimit := limiter.Limit(cfg.RateLimit.AuthPerMinute)
	requireUser := middleware.RequireUser(loginPath)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.Origins(),
		AllowedMethods:   cfg.CORS.Methods(),
		AllowedHeaders:   cfg.CORS.Headers(),
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))
	r.Use(middleware.Session(svc.identity, cookies, logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(m))

	r.Get("/live", healthH.Live)
	r.Get("/ready", healthH.Ready)
	r.Get("/health", healthH.Health)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.With(authLimit).Post("/signin", authH.SignIn)
		r.With(authLimit).Post("/signup", authH.SignUp)
		r.Post("/signout", authH.SignOut)
		r.Get("/callback", authH.Callback)
		r.With(requireUser).Get("/me", authH.Me)
		r.With(requireUser).Patch("/me", authH.UpdateMe)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/options", rest.Options)
		r.Get("/shell", shellH.Get)
		r.Put("/shell/theme", shellH.SetTheme)
		r.Post("/shell/theme/toggle", shellH.ToggleTheme)

		r.Group(func(r chi.Router) {
			r.Use(requireUser)

			r.Get("/dashboard", dashboardH.Get)

			r.Get("/profiles", profileH.List)
			r.Post("/profiles", profileH.Create)
			r.Get("/profiles/{id}", profileH.Get)
			r.Put("/profiles/{id}", profileH.Update)
			r.Delete("/profiles/{id}", profileH.Delete)
			r.Post("/profiles/{id}/default", profileH.SetDefault)

			r.Get("/search/context", searchH.Context)
			r.Post("/search", searchH.Run)
			r.Get("/search/export", searchH.Export)
			r.Get("/search/history", searchH.History)
			r.Patch("/search/history/{id}", searchH.SaveHistory)

			r.Get("/leads", leadH.List)
			r.Get("/leads/statuses", leadH.Statuses)
			r.Put("/leads/{id}/status", leadH.UpdateStatus)
		})
	})

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
	)(r), limiter
}
