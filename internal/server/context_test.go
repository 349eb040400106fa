package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teemow/recordingpage/internal/config"
	"github.com/teemow/recordingpage/internal/instrumentation"
)

func TestServerContext_Accessors(t *testing.T) {
	cfg := &config.Config{MeetingID: "222"}
	sc := NewServerContext(context.Background(), cfg, nil, nil)

	assert.Same(t, cfg, sc.Config())
	assert.Nil(t, sc.ZoomClient())
	assert.Nil(t, sc.Renderer())
	assert.Nil(t, sc.Metrics())
	assert.False(t, sc.IsShutdown())

	m := &instrumentation.Metrics{}
	sc.SetMetrics(m)
	assert.Same(t, m, sc.Metrics())
}

func TestServerContext_Shutdown(t *testing.T) {
	sc := newTestServerContext(t)

	sc.Shutdown()
	assert.True(t, sc.IsShutdown())

	select {
	case <-sc.Context().Done():
	default:
		t.Fatal("context not cancelled after shutdown")
	}

	// Second call is a no-op.
	sc.Shutdown()
	assert.True(t, sc.IsShutdown())
}
