package server

import (
	"context"
	"sync"

	"github.com/teemow/recordingpage/internal/config"
	"github.com/teemow/recordingpage/internal/instrumentation"
	"github.com/teemow/recordingpage/internal/page"
	"github.com/teemow/recordingpage/internal/zoom"
)

// ServerContext holds the shared dependencies of the page server.
type ServerContext struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.Config
	client   *zoom.Client
	renderer *page.Renderer
	metrics  *instrumentation.Metrics
	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context from a validated
// configuration.
func NewServerContext(ctx context.Context, cfg *config.Config, client *zoom.Client, renderer *page.Renderer) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		cfg:      cfg,
		client:   client,
		renderer: renderer,
	}
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the deployment configuration.
func (sc *ServerContext) Config() *config.Config {
	return sc.cfg
}

// ZoomClient returns the shared Zoom client.
func (sc *ServerContext) ZoomClient() *zoom.Client {
	return sc.client
}

// Renderer returns the page renderer.
func (sc *ServerContext) Renderer() *page.Renderer {
	return sc.renderer
}

// SetMetrics sets the metrics recorder used by the page handler.
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// Metrics returns the metrics recorder, or nil when instrumentation is off.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// IsShutdown returns whether the context has been shut down.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown cancels the context and marks the server as shutting down.
// It is safe to call more than once.
func (sc *ServerContext) Shutdown() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.shutdown {
		return
	}
	sc.shutdown = true
	sc.cancel()
}
