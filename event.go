package mozlog

import (
	"fmt"
	"time"
)

// Event is a single log event under construction. Events are created by the
// Logger's level methods, populated with the chained field setters, and
// emitted with Msg, Msgf or Send. An event must not be used after emission.
type Event struct {
	logger *Logger
	level  Level
	span   *Span
	fields Fields
}

// Level returns the event's level.
func (e *Event) Level() Level {
	return e.level
}

// Field returns the value of one of the event's own fields. It does not see
// fields inherited from enclosing spans.
func (e *Event) Field(key string) (any, bool) {
	v, ok := e.fields[key]
	return v, ok
}

// Type sets the event's message type.
func (e *Event) Type(t string) *Event {
	e.fields[typeKey] = t
	return e
}

// Str adds a string field to the event.
func (e *Event) Str(key, value string) *Event {
	e.fields[key] = value
	return e
}

// Int adds an integer field to the event.
func (e *Event) Int(key string, value int) *Event {
	e.fields[key] = value
	return e
}

// Int64 adds an int64 field to the event.
func (e *Event) Int64(key string, value int64) *Event {
	e.fields[key] = value
	return e
}

// Uint64 adds a uint64 field to the event.
func (e *Event) Uint64(key string, value uint64) *Event {
	e.fields[key] = value
	return e
}

// Bool adds a boolean field to the event.
func (e *Event) Bool(key string, value bool) *Event {
	e.fields[key] = value
	return e
}

// Dur adds a duration field to the event, in milliseconds.
func (e *Event) Dur(key string, d time.Duration) *Event {
	e.fields[key] = d.Milliseconds()
	return e
}

// Err adds the error's description under the "error" key. A nil error adds
// nothing.
func (e *Event) Err(err error) *Event {
	if err != nil {
		e.fields["error"] = err.Error()
	}
	return e
}

// Interface adds an arbitrary field to the event. The value must be
// JSON-serializable or the whole record is dropped at emission.
func (e *Event) Interface(key string, value any) *Event {
	e.fields[key] = value
	return e
}

// Fields adds every entry of fields to the event.
func (e *Event) Fields(fields Fields) *Event {
	for k, v := range fields {
		e.fields[k] = v
	}
	return e
}

// Msg sets the event's message and emits it.
func (e *Event) Msg(msg string) {
	if msg != "" {
		e.fields[messageKey] = msg
	}
	e.logger.emit(e)
}

// Msgf sets a formatted message and emits the event.
func (e *Event) Msgf(format string, args ...any) {
	e.Msg(fmt.Sprintf(format, args...))
}

// Send emits the event without a message.
func (e *Event) Send() {
	e.logger.emit(e)
}
