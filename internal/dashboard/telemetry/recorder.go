package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/dashboard/usecase"
)

var _ usecase.Recorder = (*Recorder)(nil)

// Recorder exports dashboard activity as Prometheus collectors.
type Recorder struct {
	uploads     *prometheus.CounterVec
	uploadBytes prometheus.Histogram
	renders     *prometheus.CounterVec
	renderTime  *prometheus.HistogramVec
	sessions    prometheus.GaugeFunc
}

// New registers the dashboard collectors on reg. live reports the number of
// stored sessions and may be nil.
func New(reg prometheus.Registerer, namespace string, live func() int) (*Recorder, error) {
	r := &Recorder{
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "uploads_total",
			Help:      "Uploaded datasets by outcome.",
		}, []string{"outcome"}),
		uploadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "upload_bytes",
			Help:      "Size of uploaded files.",
			Buckets:   prometheus.ExponentialBuckets(1<<10, 4, 10),
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "renders_total",
			Help:      "Rendered views and charts by target and outcome.",
		}, []string{"target", "outcome"}),
		renderTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "render_duration_seconds",
			Help:      "Time spent loading, cleaning and rendering one request.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"target"}),
	}

	collectors := []prometheus.Collector{r.uploads, r.uploadBytes, r.renders, r.renderTime}
	if live != nil {
		r.sessions = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "sessions",
			Help:      "Dataset sessions currently stored.",
		}, func() float64 { return float64(live()) })
		collectors = append(collectors, r.sessions)
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Recorder) Upload(outcome string, size int) {
	r.uploads.WithLabelValues(outcome).Inc()
	if size > 0 {
		r.uploadBytes.Observe(float64(size))
	}
}

func (r *Recorder) Render(target, outcome string, elapsed time.Duration) {
	r.renders.WithLabelValues(target, outcome).Inc()
	r.renderTime.WithLabelValues(target).Observe(elapsed.Seconds())
}
