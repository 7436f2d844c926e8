// Package mozlog renders structured log events into the MozLog JSON format:
// one newline-terminated record per event, carrying the fields of the event
// merged with those of its enclosing spans.
//
// Events emitted without a span see spans "" and only their own fields.
// Inside spans, the event's own fields win over span fields, and inner spans
// win over outer ones. Every record carries a message type; events without
// one get the "<unknown>" sentinel, and a policy can make such events at or
// above a chosen level emit an extra mozlog.missing-type record.
package mozlog

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/mozlog-go/mozlog/internal/hostinfo"
)

// Logger renders events into MozLog records and writes them to its sink,
// one JSON object per line. Each record is written with a single Write
// call, so a Logger may be shared across goroutines as long as the sink
// does not interleave whole-buffer writes (files and os.Stdout do not).
//
// A Logger never reports failure: a record that cannot be serialized or
// written is dropped.
type Logger struct {
	name               string
	hostname           string
	pid                uint32
	writer             io.Writer
	minLevel           Level
	typeRequired       bool
	typeRequiredLevel  Level
	unknownTypeHandler UnknownTypeHandler
	now                func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithHostname overrides the detected OS hostname on emitted records.
func WithHostname(hostname string) Option {
	return func(l *Logger) {
		l.hostname = hostname
	}
}

// WithLevel sets the minimum level; events below it are discarded.
func WithLevel(min Level) Option {
	return func(l *Logger) {
		l.minLevel = min
	}
}

// WithTypeRequiredForLevel makes any event at the given level or a more
// urgent one that lacks a message type emit an extra mozlog.missing-type
// record before its own.
func WithTypeRequiredForLevel(level Level) Option {
	return func(l *Logger) {
		l.typeRequired = true
		l.typeRequiredLevel = level
	}
}

// WithUnknownTypeHandler installs a last-resort supplier of message types
// for events that carry none.
func WithUnknownTypeHandler(h UnknownTypeHandler) Option {
	return func(l *Logger) {
		l.unknownTypeHandler = h
	}
}

// WithTimestampFunc overrides the record timestamp source.
func WithTimestampFunc(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// New creates a Logger for the named service writing to w.
func New(name string, w io.Writer, opts ...Option) *Logger {
	l := &Logger{
		name:     name,
		hostname: hostinfo.Hostname(),
		pid:      uint32(os.Getpid()),
		writer:   w,
		minLevel: TraceLevel,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Trace creates a trace-level event under ctx's span chain.
func (l *Logger) Trace(ctx context.Context) *Event {
	return l.WithLevel(ctx, TraceLevel)
}

// Debug creates a debug-level event under ctx's span chain.
func (l *Logger) Debug(ctx context.Context) *Event {
	return l.WithLevel(ctx, DebugLevel)
}

// Info creates an info-level event under ctx's span chain.
func (l *Logger) Info(ctx context.Context) *Event {
	return l.WithLevel(ctx, InfoLevel)
}

// Warn creates a warn-level event under ctx's span chain.
func (l *Logger) Warn(ctx context.Context) *Event {
	return l.WithLevel(ctx, WarnLevel)
}

// Error creates an error-level event under ctx's span chain.
func (l *Logger) Error(ctx context.Context) *Event {
	return l.WithLevel(ctx, ErrorLevel)
}

// WithLevel creates an event at an arbitrary level under ctx's span chain.
func (l *Logger) WithLevel(ctx context.Context, level Level) *Event {
	return &Event{
		logger: l,
		level:  level,
		span:   SpanFromContext(ctx),
		fields: make(Fields, 8),
	}
}

// emit turns the event into one record, preceded by a policy-violation
// record when the type is missing and required for the event's level, and
// writes each with one call. Formatting always runs to completion once
// triggered; failures are swallowed so logging cannot fail its caller.
func (l *Logger) emit(e *Event) {
	if e.level < l.minLevel {
		return
	}

	merged, spans := mergeFields(e.fields, e.span.chain())
	msgType, missing := l.resolveType(merged, e)
	merged[spansKey] = spans

	timestamp := l.now().UnixNano()

	if missing && l.typeRequired && e.level >= l.typeRequiredLevel {
		l.write(l.missingTypeRecord(e, spans, timestamp))
	}

	l.write(Record{
		Timestamp:  timestamp,
		Type:       msgType,
		Logger:     l.name,
		Hostname:   l.hostname,
		EnvVersion: EnvVersion,
		Pid:        l.pid,
		Severity:   e.level.Severity(),
		Fields:     merged,
	})
}

// write serializes one record and hands it to the sink as a single write,
// newline included. Serialization and write failures drop the record; a
// record that failed once would fail identically on retry.
func (l *Logger) write(r Record) {
	buf, err := json.Marshal(r)
	if err != nil {
		return
	}
	buf = append(buf, '\n')
	_, _ = l.writer.Write(buf)
}
