// Package zapadapter exposes a zapcore.Core that forwards zap entries into
// a MozLog logger, so zap-instrumented code emits MozLog records.
package zapadapter

import (
	"context"

	"go.uber.org/zap/zapcore"

	"github.com/mozlog-go/mozlog"
)

// Core forwards zap entries to a MozLog logger. Fields attached with With
// are carried into every forwarded entry; the forwarded events carry no
// span chain.
type Core struct {
	log    *mozlog.Logger
	enab   zapcore.LevelEnabler
	fields []zapcore.Field
}

var _ zapcore.Core = (*Core)(nil)

// NewCore creates a Core forwarding entries enabled by enab to log.
//
//	zl := zap.New(zapadapter.NewCore(log, zapcore.InfoLevel))
func NewCore(log *mozlog.Logger, enab zapcore.LevelEnabler) *Core {
	return &Core{log: log, enab: enab}
}

// Enabled reports whether entries at the given level are forwarded.
func (c *Core) Enabled(level zapcore.Level) bool {
	return c.enab.Enabled(level)
}

// With returns a copy of the core carrying the extra fields.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(append([]zapcore.Field(nil), c.fields...), fields...)
	return &clone
}

// Check adds the core to the checked entry when its level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write re-emits one zap entry through the pipeline.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	ev := c.log.WithLevel(context.Background(), levelFor(ent.Level))
	for k, v := range enc.Fields {
		ev.Interface(k, v)
	}
	if ent.LoggerName != "" {
		ev.Str("logger_name", ent.LoggerName)
	}
	ev.Msg(ent.Message)
	return nil
}

// Sync is a no-op; the pipeline does not buffer.
func (c *Core) Sync() error {
	return nil
}

// levelFor maps zap levels onto pipeline levels. zap has no trace level;
// DPanic and above collapse into error.
func levelFor(level zapcore.Level) mozlog.Level {
	switch {
	case level <= zapcore.DebugLevel:
		return mozlog.DebugLevel
	case level == zapcore.InfoLevel:
		return mozlog.InfoLevel
	case level == zapcore.WarnLevel:
		return mozlog.WarnLevel
	default:
		return mozlog.ErrorLevel
	}
}
