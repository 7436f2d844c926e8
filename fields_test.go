package mozlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFieldsEventWins(t *testing.T) {
	ctx, _ := StartSpan(context.Background(), "outer", Fields{"color": "blue"})

	merged, spans := mergeFields(Fields{"color": "red"}, SpanFromContext(ctx).chain())

	assert.Equal(t, "red", merged["color"])
	assert.Equal(t, "outer", spans)
}

func TestMergeFieldsInnermostSpanWins(t *testing.T) {
	ctx := context.Background()
	ctx, _ = StartSpan(ctx, "outer", Fields{"a": 1, "b": 1, "c": 1})
	ctx, _ = StartSpan(ctx, "inner", Fields{"b": 2, "c": 2})

	merged, spans := mergeFields(Fields{"c": 3}, SpanFromContext(ctx).chain())

	assert.Equal(t, Fields{"a": 1, "b": 2, "c": 3}, merged)
	assert.Equal(t, "outer,inner", spans)
}

func TestMergeFieldsNoSpans(t *testing.T) {
	merged, spans := mergeFields(Fields{"x": true}, nil)

	assert.Equal(t, Fields{"x": true}, merged)
	assert.Empty(t, spans)
}

func TestSpanRecordVisibleToLaterMerges(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "request", Fields{"method": "GET"})

	merged, _ := mergeFields(Fields{}, SpanFromContext(ctx).chain())
	_, hasCode := merged["code"]
	require.False(t, hasCode)

	span.Record("code", 200)
	merged, _ = mergeFields(Fields{}, SpanFromContext(ctx).chain())
	assert.Equal(t, 200, merged["code"])
}

func TestSpanFromContextMissing(t *testing.T) {
	assert.Nil(t, SpanFromContext(context.Background()))
	assert.Nil(t, SpanFromContext(nil))
}
