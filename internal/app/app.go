package app

import (
	"context"
	"net/http"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgconfig"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkglog"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgmetrics"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgrouter"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgroutine"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	configPath string
	config     pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// resources
	metrics *pkgmetrics.Registry

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

// New wires the application. An empty configPath falls back to the LOCAL
// environment switch.
func New(configPath string) *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:        ctx,
		cancel:     cancel,
		configPath: configPath,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
