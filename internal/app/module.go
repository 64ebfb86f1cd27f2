package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard"
)

// ServiceName prefixes metric names.
const ServiceName = "csvdash"

func (a *App) initModules() {
	if a.config.GetBool("modules.dashboard.enabled") {
		closer, err := dashboard.New(dashboard.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
			ID:        a.uuid,
			RenderID:  a.snowflake,
			Metrics:   a.metrics.Registerer(),
			Namespace: ServiceName,
		})
		if err != nil {
			slog.Error("failed to init module dashboard", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Dashboard"] = closer
		}
	}
}
