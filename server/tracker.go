package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mozlog-go/mozlog"
)

// RequestSummaryType is the message type of the terminal record emitted for
// every tracked request.
const RequestSummaryType = "request.summary"

// RequestSpanName is the name of the root span a tracker opens.
const RequestSpanName = "request"

// RequestTracker follows one request from arrival to its terminal
// request.summary record. It moves through three states, with no re-entry:
// created by TrackRequest, completed by Complete or Fail, and emitted by
// Finish. A tracker belongs to the goroutine serving its request.
type RequestTracker struct {
	log      *mozlog.Logger
	ctx      context.Context
	span     *mozlog.Span
	start    time.Time
	finished bool
}

// TrackRequest opens the root request span and starts the request clock.
// The returned context carries the span, so events logged by handlers list
// "request" in their spans string and inherit the request fields.
func TrackRequest(ctx context.Context, log *mozlog.Logger, method, path, rid string) (context.Context, *RequestTracker) {
	ctx, span := mozlog.StartSpan(ctx, RequestSpanName, mozlog.Fields{
		"method": method,
		"path":   path,
		"rid":    rid,
	})
	return ctx, &RequestTracker{
		log:   log,
		ctx:   ctx,
		span:  span,
		start: time.Now(),
	}
}

// SetAgent records the inbound User-Agent. Empty values are skipped; the
// field is best effort.
func (t *RequestTracker) SetAgent(agent string) {
	if agent != "" {
		t.span.Record("agent", agent)
	}
}

// Record sets an extra field on the request span.
func (t *RequestTracker) Record(key string, value any) {
	t.span.Record(key, value)
}

// Complete marks the request as finished with a response and records the
// elapsed time in milliseconds (t) and nanoseconds (t_ns). err, when
// non-nil, is the application error attached to the response: the span is
// annotated with the error instead of the raw status.
func (t *RequestTracker) Complete(status int, err error) {
	elapsed := time.Since(t.start)
	t.span.Record("t", uint64(elapsed.Milliseconds()))
	t.span.Record("t_ns", uint64(elapsed.Nanoseconds()))

	if err != nil {
		t.annotateError(err)
		return
	}
	t.span.Record("code", status)
}

// Fail marks the request as finished without any response: the pipeline
// itself failed. No timing fields are recorded on this path, since there is
// no response to measure against.
func (t *RequestTracker) Fail(err error) {
	t.annotateError(err)
}

func (t *RequestTracker) annotateError(err error) {
	t.span.Record("errno", 1)
	t.span.Record("msg", err.Error())
	t.span.Record("code", errorStatus(err))
}

// Finish emits the request.summary record at info level with the request
// span as the only enclosing frame. Second and later calls do nothing; the
// span must not be mutated afterwards.
func (t *RequestTracker) Finish() {
	if t.finished {
		return
	}
	t.finished = true
	t.log.Info(t.ctx).Type(RequestSummaryType).Send()
}

// errorStatus resolves the HTTP status associated with a request error.
func errorStatus(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	var statusErr interface{ HTTPStatus() int }
	if errors.As(err, &statusErr) {
		return statusErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}
