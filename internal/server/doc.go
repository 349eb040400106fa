// Package server provides the HTTP surface of the recordings page.
//
// # Key Components
//
// PageHandler serves the page itself: it validates configuration, performs
// the per-request Zoom token grant and recordings fetch, and renders the
// HTML document. Every failure is converted to a 500 with a fixed plain
// body; a recover at the handler boundary catches anything unexpected so no
// request ever dies with an unhandled error or partial HTML.
//
// HealthChecker exposes /healthz and /readyz for Kubernetes probes.
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolated
// from page traffic.
//
// ServerContext carries the shared dependencies (config, Zoom client,
// renderer, metrics) and the shutdown state.
package server
