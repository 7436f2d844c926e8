package mozlog

// Message type of the synthetic record emitted when an event that must carry
// a type does not, and the sentinel type assigned to such events.
const (
	MissingTypeType = "mozlog.missing-type"
	UnknownType     = "<unknown>"
)

// UnknownTypeHandler supplies a message type for an event that carries none.
// It receives the original event, not the merged field view, and returns
// ok=false to decline.
type UnknownTypeHandler func(e *Event) (t string, ok bool)

// resolveType picks the event's message type out of the merged fields:
// the "type" key when string-valued, then the legacy "msg_type" key, then
// the unknown-type handler, then the "<unknown>" sentinel. Both type keys
// are removed from the merged fields no matter which path resolved the
// value. The second return value reports whether the sentinel was reached.
func (l *Logger) resolveType(merged Fields, e *Event) (string, bool) {
	primary, hasPrimary := merged[typeKey]
	legacy, hasLegacy := merged[legacyTypeKey]
	delete(merged, typeKey)
	delete(merged, legacyTypeKey)

	if hasPrimary {
		if s, ok := primary.(string); ok {
			return s, false
		}
	}
	if hasLegacy {
		if s, ok := legacy.(string); ok {
			return s, false
		}
	}
	if l.unknownTypeHandler != nil {
		if s, ok := l.unknownTypeHandler(e); ok {
			return s, false
		}
	}
	return UnknownType, true
}

// missingTypeRecord builds the policy-violation record for an event that
// reached the sentinel while the type-required policy applies to its level.
func (l *Logger) missingTypeRecord(e *Event, spans string, timestamp int64) Record {
	original := any("<none>")
	if m, ok := e.fields[messageKey]; ok {
		original = m
	}
	return Record{
		Timestamp:  timestamp,
		Type:       MissingTypeType,
		Logger:     l.name,
		Hostname:   l.hostname,
		EnvVersion: EnvVersion,
		Pid:        l.pid,
		Severity:   ErrorLevel.Severity(),
		Fields: Fields{
			messageKey:         "events with level " + e.level.String() + " require a type to be set",
			"original_level":   e.level.String(),
			"original_message": original,
			spansKey:           spans,
		},
	}
}
