// Package pkgmetrics exposes Prometheus instrumentation for the application.
//
// A Registry owns its own prometheus.Registry (never the global default) so
// tests can build as many as they need. It provides:
//   - An HTTP middleware counting requests and observing latency per route.
//   - A handler serving the exposition format on /metrics.
//   - A Registerer for feature modules to add their own collectors.
package pkgmetrics
