// Package zerologadapter routes zerolog output through a MozLog logger, so
// zerolog-instrumented code and libraries emit MozLog records.
package zerologadapter

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/valyala/fastjson"

	"github.com/mozlog-go/mozlog"
)

// Writer is an io.Writer sink for zerolog that re-emits every line as a
// pipeline event. zerolog hands each event to Write as one complete JSON
// line, so no buffering across calls is needed.
//
// The re-emitted events carry no span chain; types come from the event's
// own "type" field or the logger's fallback handling, like any other event.
type Writer struct {
	log     *mozlog.Logger
	parsers fastjson.ParserPool
}

// New creates a Writer forwarding to log.
//
//	zl := zerolog.New(zerologadapter.New(log))
func New(log *mozlog.Logger) *Writer {
	return &Writer{log: log}
}

// Write parses one zerolog line and emits it through the pipeline.
// Malformed lines are dropped; the sink never reports failure.
func (w *Writer) Write(p []byte) (int, error) {
	parser := w.parsers.Get()
	defer w.parsers.Put(parser)

	v, err := parser.ParseBytes(p)
	if err != nil {
		return len(p), nil
	}

	ev := w.log.WithLevel(context.Background(), levelFor(string(v.GetStringBytes(zerolog.LevelFieldName))))

	var msg string
	v.GetObject().Visit(func(key []byte, val *fastjson.Value) {
		switch string(key) {
		case zerolog.LevelFieldName, zerolog.TimestampFieldName:
		case zerolog.MessageFieldName:
			msg = string(val.GetStringBytes())
		default:
			ev.Interface(string(key), decode(val))
		}
	})

	ev.Msg(msg)
	return len(p), nil
}

// levelFor maps zerolog level names onto pipeline levels. Fatal and panic
// collapse into error; unknown and absent levels emit at info.
func levelFor(level string) mozlog.Level {
	switch level {
	case zerolog.LevelTraceValue:
		return mozlog.TraceLevel
	case zerolog.LevelDebugValue:
		return mozlog.DebugLevel
	case zerolog.LevelInfoValue:
		return mozlog.InfoLevel
	case zerolog.LevelWarnValue:
		return mozlog.WarnLevel
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return mozlog.ErrorLevel
	default:
		return mozlog.InfoLevel
	}
}

func decode(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		if n, err := v.Int64(); err == nil {
			return n
		}
		f, _ := v.Float64()
		return f
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeArray:
		items, _ := v.Array()
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, decode(item))
		}
		return out
	case fastjson.TypeObject:
		obj, _ := v.Object()
		out := make(map[string]any, obj.Len())
		obj.Visit(func(key []byte, val *fastjson.Value) {
			out[string(key)] = decode(val)
		})
		return out
	default:
		return nil
	}
}
