package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mozlog-go/mozlog"
	"github.com/mozlog-go/mozlog/mozlogtest"
)

func newTrackedRequest(t *testing.T) (*mozlogtest.Watcher, *RequestTracker) {
	t.Helper()
	watcher := mozlogtest.New()
	log := mozlog.New("test-logger", watcher)
	_, tracker := TrackRequest(context.Background(), log, http.MethodGet, "/widgets", "rid-1")
	return watcher, tracker
}

func TestTrackerSuccessPath(t *testing.T) {
	watcher, tracker := newTrackedRequest(t)
	tracker.SetAgent("A Test Client")

	tracker.Complete(http.StatusOK, nil)
	tracker.Finish()

	records := watcher.Records()
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, RequestSummaryType, rec.Type)
	assert.Equal(t, uint32(5), rec.Severity)
	assert.Equal(t, "GET", rec.Fields["method"])
	assert.Equal(t, "/widgets", rec.Fields["path"])
	assert.Equal(t, "rid-1", rec.Fields["rid"])
	assert.Equal(t, "A Test Client", rec.Fields["agent"])
	assert.Equal(t, "request", rec.Fields["spans"])
	assert.Equal(t, float64(200), rec.Fields["code"])

	assert.GreaterOrEqual(t, rec.Fields["t"].(float64), float64(0))
	assert.GreaterOrEqual(t, rec.Fields["t_ns"].(float64), float64(0))
	assert.NotContains(t, rec.Fields, "errno")
}

func TestTrackerResponseWithApplicationError(t *testing.T) {
	watcher, tracker := newTrackedRequest(t)

	tracker.Complete(0, echo.NewHTTPError(http.StatusBadRequest, "bad widget"))
	tracker.Finish()

	rec, ok := watcher.Find(RequestSummaryType)
	require.True(t, ok)
	assert.Equal(t, uint32(5), rec.Severity, "summary severity is independent of outcome")
	assert.Equal(t, float64(1), rec.Fields["errno"])
	assert.Equal(t, float64(400), rec.Fields["code"])
	assert.Contains(t, rec.Fields["msg"], "bad widget")
	assert.Contains(t, rec.Fields, "t", "a response exists, so elapsed time is measured")
	assert.Contains(t, rec.Fields, "t_ns")
}

func TestTrackerPipelineFailureHasNoTiming(t *testing.T) {
	watcher, tracker := newTrackedRequest(t)

	tracker.Fail(errors.New("handler never ran"))
	tracker.Finish()

	rec, ok := watcher.Find(RequestSummaryType)
	require.True(t, ok)
	assert.Equal(t, float64(1), rec.Fields["errno"])
	assert.Equal(t, float64(500), rec.Fields["code"])
	assert.Equal(t, "handler never ran", rec.Fields["msg"])
	assert.NotContains(t, rec.Fields, "t")
	assert.NotContains(t, rec.Fields, "t_ns")
}

func TestTrackerFinishIsTerminal(t *testing.T) {
	watcher, tracker := newTrackedRequest(t)

	tracker.Complete(http.StatusNoContent, nil)
	tracker.Finish()
	tracker.Finish()

	assert.Len(t, watcher.Records(), 1)
}

func TestTrackerSetAgentSkipsEmpty(t *testing.T) {
	watcher, tracker := newTrackedRequest(t)
	tracker.SetAgent("")

	tracker.Complete(http.StatusOK, nil)
	tracker.Finish()

	rec, ok := watcher.Find(RequestSummaryType)
	require.True(t, ok)
	assert.NotContains(t, rec.Fields, "agent")
}

type statusError struct{ status int }

func (e statusError) Error() string   { return "status error" }
func (e statusError) HTTPStatus() int { return e.status }

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "echo_http_error", err: echo.NewHTTPError(http.StatusTeapot, "teapot"), expected: http.StatusTeapot},
		{name: "wrapped_echo_http_error", err: fmt.Errorf("wrapped: %w", echo.NewHTTPError(http.StatusNotFound, "gone")), expected: http.StatusNotFound},
		{name: "http_status_interface", err: statusError{status: http.StatusConflict}, expected: http.StatusConflict},
		{name: "plain_error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errorStatus(tt.err))
		})
	}
}
