// Package server provides the Echo middleware that gives every request a
// MozLog lifecycle: a root "request" span carrying method, path, request id
// and timing, and a terminal request.summary record.
package server

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"

	"github.com/mozlog-go/mozlog"
	"github.com/mozlog-go/mozlog/location"
)

// RequestLoggerConfig configures the request logging middleware.
type RequestLoggerConfig struct {
	// Logger receives the request.summary records. Required.
	Logger *mozlog.Logger

	// HealthPath and ReadyPath name probe endpoints excluded from request
	// summaries.
	HealthPath string
	ReadyPath  string

	// Location, when set, resolves the client address and records the
	// resulting place fields on the request span.
	Location *location.Resolver
}

// RequestLogger returns the request logging middleware with default
// configuration.
func RequestLogger(log *mozlog.Logger) echo.MiddlewareFunc {
	return RequestLoggerWithConfig(RequestLoggerConfig{Logger: log})
}

// RequestLoggerWithConfig returns middleware that tracks each request's
// lifecycle and emits exactly one request.summary record per request, as the
// last record attributed to the request's span.
//
// A handler error annotates the span with errno, msg and the error's status;
// a panic is treated as a pipeline failure (no response, no timing fields)
// and re-raised for the recovery middleware.
func RequestLoggerWithConfig(cfg RequestLoggerConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			// Probe endpoints stay out of the logs.
			path := req.URL.Path
			if path != "" && (path == cfg.HealthPath || path == cfg.ReadyPath) {
				return next(c)
			}

			ctx, tracker := TrackRequest(req.Context(), cfg.Logger, req.Method, path, requestID(c))
			tracker.SetAgent(req.UserAgent())

			if sc := trace.SpanContextFromContext(req.Context()); sc.IsValid() {
				tracker.Record("trace_id", sc.TraceID().String())
			}
			if cfg.Location != nil {
				loc := cfg.Location.Resolve(ctx, clientAddr(c))
				for k, v := range loc.Fields() {
					tracker.Record(k, v)
				}
			}

			c.SetRequest(req.WithContext(ctx))

			defer func() {
				if r := recover(); r != nil {
					tracker.Fail(fmt.Errorf("panic while handling request: %v", r))
					tracker.Finish()
					panic(r)
				}
			}()

			err := next(c)
			tracker.Complete(c.Response().Status, err)
			tracker.Finish()
			return err
		}
	}
}
