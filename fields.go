package mozlog

import "strings"

// Fields is free-form key/value metadata attached to events and spans.
type Fields map[string]any

// Reserved field keys.
const (
	messageKey    = "message"
	typeKey       = "type"
	legacyTypeKey = "msg_type"
	spansKey      = "spans"
)

// mergeFields combines an event's own fields with the enclosing span chain,
// given innermost first. The event's own fields are never overwritten, and
// among spans the nearest enclosing one wins. The second return value is the
// spans string: span names outermost→innermost, comma separated, empty when
// no span is active.
func mergeFields(own Fields, chain []*Span) (Fields, string) {
	merged := make(Fields, len(own)+4)
	for k, v := range own {
		merged[k] = v
	}

	names := make([]string, 0, len(chain))
	for _, s := range chain {
		for k, v := range s.fields {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
		names = append(names, s.name)
	}

	// Collected innermost first; spans reads outermost first.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return merged, strings.Join(names, ",")
}
