package router

import (
	"database/sql"
	"net/http"

	_ "cats-api/docs"
	mem "cats-api/internal/adapters/storage/memory"
	pg "cats-api/internal/adapters/storage/postgres"
	lite "cats-api/internal/adapters/storage/sqlite"
	"cats-api/internal/config"
	"cats-api/internal/domain/cats"
	"cats-api/internal/domain/users"
	"cats-api/internal/middleware"
	"cats-api/internal/platform/logger"
	"cats-api/internal/ports/auth"
	"cats-api/internal/smoketest"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Config es opcional; por defecto config.Default().
	Config *config.Config
	Log    logger.Logger

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, se usa con el dialecto de Config.Database.Driver. Si no, in-memory.
	DB *sql.DB

	// SmokeTransport es opcional (tests del runner).
	SmokeTransport http.RoundTripper
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	catRepo, userRepo := repositories(cfg.Database.Driver, opts.DB)

	// Services por módulo
	catsSvc := cats.NewService(catRepo, log)
	usersSvc := users.NewService(userRepo, log)

	r.Route("/api/v1", func(api chi.Router) {
		cats.RegisterRoutes(api, catsSvc, cats.HandlerOptions{AdminRole: cfg.Auth.AdminRole, Log: log})
		users.RegisterRoutes(api, usersSvc, log)
	})

	smoketest.RegisterRoutes(r, smoketest.NewRunner(smoketest.Options{
		Timeout: cfg.SmokeTest.Timeout,
		Credentials: smoketest.Credentials{
			Username: cfg.SmokeTest.Username,
			Password: cfg.SmokeTest.Password,
		},
		Transport: opts.SmokeTransport,
		Log:       log.With(map[string]any{"module": "smoketest"}),
	}))

	if cfg.Swagger.Enabled {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	return r
}

// repositories elige el adapter según el driver; sin DB todo queda en memoria.
func repositories(driver string, db *sql.DB) (cats.Repository, users.Repository) {
	if db != nil {
		switch driver {
		case config.DriverPostgres:
			return pg.NewCatsRepo(db), pg.NewUsersRepo(db)
		case config.DriverSQLite:
			return lite.NewCatsRepo(db), lite.NewUsersRepo(db)
		}
	}

	userRepo := mem.NewUserRepo()
	return mem.NewCatRepo(userRepo), userRepo
}
