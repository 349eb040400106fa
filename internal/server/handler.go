package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/teemow/recordingpage/internal/config"
	"github.com/teemow/recordingpage/internal/instrumentation"
	"github.com/teemow/recordingpage/internal/logging"
	"github.com/teemow/recordingpage/internal/page"
	"github.com/teemow/recordingpage/internal/recordings"
	"github.com/teemow/recordingpage/internal/zoom"
)

// User-facing error bodies. These are deliberately short and fixed; the
// detail goes to the server-side log.
const (
	msgTokenFailure      = "Failed to get Zoom token."
	msgRecordingsFailure = "Failed to fetch recordings from Zoom."
	msgUnexpected        = "Unexpected error loading recordings."
)

// PageHandler serves the recordings page. Every invocation re-reads nothing
// from the environment and caches nothing: configuration is fixed at
// construction, tokens are fetched per request.
//
// The handler never lets a failure escape: every error path is converted to
// a 500 with a short plain-text body, and a recover at the boundary catches
// anything unexpected.
type PageHandler struct {
	cfg      *config.Config
	client   *zoom.Client
	renderer *page.Renderer
	logger   *slog.Logger
	metrics  *instrumentation.Metrics
}

// NewPageHandler creates the handler for one deployment configuration.
func NewPageHandler(cfg *config.Config, client *zoom.Client, renderer *page.Renderer, logger *slog.Logger, metrics *instrumentation.Metrics) *PageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		cfg:      cfg,
		client:   client,
		renderer: renderer,
		logger:   logger,
		metrics:  metrics,
	}
}

// ServeHTTP implements http.Handler. The method is not inspected: any
// request renders the page.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := h.serve(w, r)
	h.metrics.RecordPageRequest(r.Context(), r.Method, status, time.Since(start))
}

// serve runs the render flow and returns the response status for metrics.
func (h *PageHandler) serve(w http.ResponseWriter, r *http.Request) (status int) {
	// The page is rendered into a buffer before anything is written, so a
	// failure never produces partial HTML. The recover therefore always
	// fires before the response is committed.
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("Unhandled error:", "panic", rec)
			status = writePlainError(w, msgUnexpected)
		}
	}()

	ctx := r.Context()

	if err := h.cfg.Validate(); err != nil {
		h.logger.Error("configuration incomplete", logging.Err(err))
		return writePlainError(w, err.Error())
	}

	tokenStart := time.Now()
	token, err := h.client.Token(ctx)
	if err != nil {
		h.metrics.RecordZoomAPIOperation(ctx, "token", instrumentation.StatusError, time.Since(tokenStart))
		h.metrics.RecordTokenGrant(ctx, instrumentation.StatusError)
		return h.fail(w, err, "token acquisition failed", msgTokenFailure)
	}
	h.metrics.RecordZoomAPIOperation(ctx, "token", instrumentation.StatusSuccess, time.Since(tokenStart))
	h.metrics.RecordTokenGrant(ctx, instrumentation.StatusSuccess)

	listStart := time.Now()
	meetings, err := h.client.ListUserRecordings(ctx, token, h.cfg.UserID, h.cfg.PageSize)
	if err != nil {
		h.metrics.RecordZoomAPIOperation(ctx, "listRecordings", instrumentation.StatusError, time.Since(listStart))
		return h.fail(w, err, "recordings fetch failed", msgRecordingsFailure)
	}
	h.metrics.RecordZoomAPIOperation(ctx, "listRecordings", instrumentation.StatusSuccess, time.Since(listStart))

	matched := recordings.MatchMeetings(meetings, h.cfg.MeetingID)

	var buf bytes.Buffer
	data := h.renderer.BuildPage(h.cfg.MeetingID, matched)
	if err := h.renderer.Render(&buf, data); err != nil {
		h.logger.Error("Unhandled error:", logging.Err(err))
		return writePlainError(w, msgUnexpected)
	}

	h.logger.Info("page rendered",
		logging.MeetingID(h.cfg.MeetingID),
		logging.UserID(h.cfg.UserID),
		"matched_meetings", len(matched),
		logging.Status(logging.StatusSuccess))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
	return http.StatusOK
}

// fail maps an upstream error to its fixed user-facing body. Only genuine
// endpoint failures (transport errors and non-2xx statuses) get the specific
// message; anything else falls through to the generic one.
func (h *PageHandler) fail(w http.ResponseWriter, err error, logMsg, userMsg string) int {
	var apiErr *zoom.APIError
	if errors.As(err, &apiErr) {
		h.logger.Error(logMsg,
			logging.Operation("zoom."+apiErr.Op),
			logging.HTTPCode(apiErr.StatusCode),
			logging.Err(err))
		return writePlainError(w, userMsg)
	}

	h.logger.Error("Unhandled error:", logging.Err(err))
	return writePlainError(w, msgUnexpected)
}

// writePlainError writes a 500 with a short plain-text body.
func writePlainError(w http.ResponseWriter, msg string) int {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(msg))
	return http.StatusInternalServerError
}
