package mozlog

import "context"

// Span is a named unit of work carrying its own metadata. Spans nest:
// starting a span under a context that already carries one links the two,
// forming a last-in-first-out chain per unit of execution. A span is owned
// by the goroutine that started it and must not be shared across requests.
type Span struct {
	name   string
	fields Fields
	parent *Span
}

type spanContextKey struct{}

// StartSpan begins a span named name with the given initial fields and
// returns a context carrying it. Events emitted with the returned context
// (or any context derived from it) inherit the span's fields and list the
// span in their spans string. The span ends when the returned context goes
// out of scope.
func StartSpan(ctx context.Context, name string, fields Fields) (context.Context, *Span) {
	s := &Span{
		name:   name,
		fields: make(Fields, len(fields)),
		parent: SpanFromContext(ctx),
	}
	for k, v := range fields {
		s.fields[k] = v
	}
	return context.WithValue(ctx, spanContextKey{}, s), s
}

// SpanFromContext returns the innermost span carried by ctx, or nil.
func SpanFromContext(ctx context.Context) *Span {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(spanContextKey{}).(*Span)
	return s
}

// Name returns the span's name.
func (s *Span) Name() string {
	return s.name
}

// Record sets a field on the span. Events emitted inside the span after the
// call see the new value.
func (s *Span) Record(key string, value any) {
	s.fields[key] = value
}

// chain returns the spans from s outward, innermost first.
func (s *Span) chain() []*Span {
	if s == nil {
		return nil
	}
	var out []*Span
	for cur := s; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}
