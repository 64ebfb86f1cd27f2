package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/inbound"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/render"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/store"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/telemetry"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/usecase"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgconfig"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgrouter"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgroutine"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkguid"
	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/pkg/pkgvalidator"
)

const defaultJanitorInterval = time.Minute

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.StringID
	RenderID  pkguid.NumberID
	Metrics   prometheus.Registerer
	Namespace string
}

func New(dep Dependency) (func(context.Context) error, error) {
	storage := store.NewInMemoryStore()

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}
	if dep.Context == nil {
		dep.Context = context.Background()
	}

	var recorder usecase.Recorder
	if dep.Metrics != nil {
		rec, err := telemetry.New(dep.Metrics, dep.Namespace, storage.Len)
		if err != nil {
			return nil, err
		}
		recorder = rec
	}

	opt := Options(dep.Config)
	uc := usecase.New(usecase.Dependency{
		Store:      storage,
		Rasterizer: render.New(),
		Recorder:   recorder,
		ID:         dep.ID,
		Options:    opt,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, pkgvalidator.New(), dep.RenderID)

	interval := time.Duration(dep.Config.GetInt("dashboard.janitor_interval_seconds")) * time.Second
	if interval <= 0 {
		interval = defaultJanitorInterval
	}
	if dep.Goroutine != nil {
		dep.Goroutine.Go(dep.Context, "dashboard-janitor", janitor(storage, interval))
	}

	slog.Info("dashboard module ready",
		"max_upload_bytes", opt.MaxUploadBytes, "session_ttl_seconds", opt.SessionTTL, "janitor_interval", interval.String())

	return nil, nil
}

// Options reads the dashboard settings; unset keys keep their defaults.
func Options(cfg pkgconfig.Config) usecase.Options {
	return usecase.Options{
		PreviewRows:    int(cfg.GetInt("dashboard.preview_rows")),
		HistogramBins:  int(cfg.GetInt("dashboard.histogram_bins")),
		TopValues:      int(cfg.GetInt("dashboard.top_values")),
		MaxUploadBytes: cfg.GetInt("dashboard.max_upload_bytes"),
		SessionTTL:     cfg.GetInt("dashboard.session_ttl_seconds"),
		ChartWidth:     int(cfg.GetInt("dashboard.chart.width")),
		ChartHeight:    int(cfg.GetInt("dashboard.chart.height")),
	}
}

// janitor evicts expired sessions every interval until ctx is done.
func janitor(s *store.InMemoryStore, interval time.Duration) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if n := s.Sweep(ctx); n > 0 {
					slog.InfoContext(ctx, "expired dataset sessions evicted", "count", n)
				}
			}
		}
	}
}
