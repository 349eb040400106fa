package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/recordingpage/internal/config"
	"github.com/teemow/recordingpage/internal/page"
	"github.com/teemow/recordingpage/internal/zoom"
)

// fakeZoom is an httptest-backed stand-in for the two Zoom endpoints.
type fakeZoom struct {
	tokenSrv *httptest.Server
	apiSrv   *httptest.Server

	tokenCalls atomic.Int32
	listCalls  atomic.Int32
}

func newFakeZoom(t *testing.T, tokenStatus int, meetings []zoom.Meeting, listStatus int) *fakeZoom {
	t.Helper()
	f := &fakeZoom{}

	f.tokenSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		f.tokenCalls.Add(1)
		if tokenStatus != http.StatusOK {
			w.WriteHeader(tokenStatus)
			_, _ = w.Write([]byte(`{"reason":"denied"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(zoom.TokenResponse{AccessToken: "tok"})
	}))
	t.Cleanup(f.tokenSrv.Close)

	f.apiSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		f.listCalls.Add(1)
		if listStatus != http.StatusOK {
			w.WriteHeader(listStatus)
			_, _ = w.Write([]byte(`{"code":200,"message":"no permission"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(zoom.ListRecordingsResponse{Meetings: meetings})
	}))
	t.Cleanup(f.apiSrv.Close)

	return f
}

func testConfig() *config.Config {
	return &config.Config{
		AccountID:    "acc",
		ClientID:     "id",
		ClientSecret: "secret",
		MeetingID:    "222",
		UserID:       "me",
		DisplayMode:  config.ModeRich,
		Timezone:     "UTC",
		PageSize:     200,
	}
}

func newTestHandler(t *testing.T, cfg *config.Config, f *fakeZoom) *PageHandler {
	t.Helper()

	client, err := zoom.NewClient("acc", "id", "secret",
		zoom.WithOAuthBaseURL(f.tokenSrv.URL),
		zoom.WithAPIBaseURL(f.apiSrv.URL))
	require.NoError(t, err)

	renderer, err := page.NewRenderer(cfg.DisplayMode, cfg.Timezone)
	require.NoError(t, err)

	return NewPageHandler(cfg, client, renderer, nil, nil)
}

func doRequest(h http.Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func sampleMeetings() []zoom.Meeting {
	return []zoom.Meeting{
		{ID: 111, Topic: "other"},
		{
			ID:        222,
			Topic:     "Weekly sync",
			StartTime: "2024-05-01T15:00:00Z",
			RecordingFiles: []zoom.RecordingFile{
				{FileType: zoom.FileTypeChat, PlayURL: "https://zoom.example/chat"},
				{FileType: zoom.FileTypeM4A, PlayURL: "https://zoom.example/a1"},
				{FileType: zoom.FileTypeSummary, PlayURL: "https://zoom.example/sum"},
				{FileType: zoom.FileTypeMP4, PlayURL: "https://zoom.example/v1"},
			},
		},
		{ID: 333, Topic: "another"},
	}
}

func TestPageHandler_MissingConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"missing account id", func(c *config.Config) { c.AccountID = "" }},
		{"missing client id", func(c *config.Config) { c.ClientID = "" }},
		{"missing client secret", func(c *config.Config) { c.ClientSecret = "" }},
		{"missing meeting id", func(c *config.Config) { c.MeetingID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeZoom(t, http.StatusOK, sampleMeetings(), http.StatusOK)
			cfg := testConfig()
			tt.mutate(cfg)
			h := newTestHandler(t, cfg, f)

			rec := doRequest(h)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, config.ErrMissingEnv.Error(), rec.Body.String())

			// Validation fails before any network call.
			assert.Equal(t, int32(0), f.tokenCalls.Load())
			assert.Equal(t, int32(0), f.listCalls.Load())
		})
	}
}

func TestPageHandler_TokenFailure(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError} {
		f := newFakeZoom(t, status, nil, http.StatusOK)
		h := newTestHandler(t, testConfig(), f)

		rec := doRequest(h)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, msgTokenFailure, rec.Body.String())

		// Token failure aborts before the recordings endpoint.
		assert.Equal(t, int32(0), f.listCalls.Load(), "status %d", status)
	}
}

func TestPageHandler_RecordingsFailure(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusBadGateway} {
		f := newFakeZoom(t, http.StatusOK, nil, status)
		h := newTestHandler(t, testConfig(), f)

		rec := doRequest(h)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, msgRecordingsFailure, rec.Body.String())
	}
}

func TestPageHandler_Success(t *testing.T) {
	f := newFakeZoom(t, http.StatusOK, sampleMeetings(), http.StatusOK)
	h := newTestHandler(t, testConfig(), f)

	rec := doRequest(h)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	html := rec.Body.String()
	assert.Contains(t, html, "Meeting ID: 222")
	assert.Contains(t, html, "Weekly sync")
	assert.Contains(t, html, ">VIDEO</a>")
	assert.Contains(t, html, ">AUDIO</a>")
	assert.NotContains(t, html, "zoom.example/chat")
	assert.NotContains(t, html, "zoom.example/sum")

	// Exactly one meeting block: the other listed meetings never render.
	assert.NotContains(t, html, "other")
	assert.NotContains(t, html, "another")
}

func TestPageHandler_NoMatch(t *testing.T) {
	f := newFakeZoom(t, http.StatusOK, sampleMeetings(), http.StatusOK)
	cfg := testConfig()
	cfg.MeetingID = "999"
	h := newTestHandler(t, cfg, f)

	rec := doRequest(h)

	assert.Equal(t, http.StatusOK, rec.Code)
	html := rec.Body.String()
	assert.Contains(t, html, "No recordings found")
	// The subtitle echoes the configured id even without a match.
	assert.Contains(t, html, "Meeting ID: 999")
}

func TestPageHandler_MalformedUpstreamJSON(t *testing.T) {
	f := newFakeZoom(t, http.StatusOK, nil, http.StatusOK)
	// Replace the API server with one that returns garbage.
	f.apiSrv.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"meetings": [{"id": "not-a-number"`))
	})
	h := newTestHandler(t, testConfig(), f)

	rec := doRequest(h)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgUnexpected, rec.Body.String())
}

func TestPageHandler_RecoversFromPanic(t *testing.T) {
	f := newFakeZoom(t, http.StatusOK, sampleMeetings(), http.StatusOK)
	h := newTestHandler(t, testConfig(), f)
	// A nil renderer makes the flow panic after the fetches succeed.
	h.renderer = nil

	rec := doRequest(h)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgUnexpected, rec.Body.String())
}

func TestPageHandler_MethodAgnostic(t *testing.T) {
	f := newFakeZoom(t, http.StatusOK, sampleMeetings(), http.StatusOK)
	h := newTestHandler(t, testConfig(), f)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodHead} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(method, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code, "method %s", method)
	}
}
