package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgconfig"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgmetrics"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgrouter"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgroutine"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	path := a.configPath
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	a.config = cfg
}

// DefaultConfigPath is ./config/config.yaml when LOCAL=true and
// /config/config.yaml otherwise.
func DefaultConfigPath() string {
	if os.Getenv("LOCAL") == "true" {
		return "./config/config.yaml"
	}
	return "/config/config.yaml"
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(100)
	a.uuid = pkguid.NewUUID()
	a.metrics = pkgmetrics.New(ServiceName)

	sf, err := pkguid.NewSnowflake(a.config.GetInt("server.snowflake_node"))
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.snowflake = sf
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)
	a.router.Use(a.metrics.Middleware)
	a.router.Handle(http.MethodGet, "/metrics", a.metrics.Handler())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       seconds(a.config.GetInt("server.timeout.read_seconds"), 60*time.Second),
		WriteTimeout:      seconds(a.config.GetInt("server.timeout.write_seconds"), 60*time.Second),
	}
}

// seconds converts a config value to a duration, using def when unset.
func seconds(v int64, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn[httpServerCloser] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
