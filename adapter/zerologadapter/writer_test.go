package zerologadapter

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mozlog-go/mozlog"
	"github.com/mozlog-go/mozlog/mozlogtest"
)

func newZerolog(t *testing.T) (zerolog.Logger, *mozlogtest.Watcher) {
	t.Helper()
	watcher := mozlogtest.New()
	log := mozlog.New("test-logger", watcher)
	return zerolog.New(New(log)), watcher
}

func TestWriterForwardsFieldsAndMessage(t *testing.T) {
	zl, watcher := newZerolog(t)

	zl.Info().
		Str("type", "widget.created").
		Str("widget", "w-1").
		Int("count", 3).
		Bool("cached", true).
		Msg("created a widget")

	records := watcher.Records()
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "widget.created", rec.Type)
	assert.Equal(t, uint32(5), rec.Severity)
	assert.Equal(t, "created a widget", rec.Fields["message"])
	assert.Equal(t, "w-1", rec.Fields["widget"])
	assert.Equal(t, float64(3), rec.Fields["count"])
	assert.Equal(t, true, rec.Fields["cached"])
	assert.NotContains(t, rec.Fields, "type")
	assert.NotContains(t, rec.Fields, "level", "zerolog bookkeeping fields are stripped")
}

func TestWriterLevelMapping(t *testing.T) {
	tests := []struct {
		name     string
		emit     func(zl zerolog.Logger)
		severity uint32
	}{
		{name: "trace", emit: func(zl zerolog.Logger) { zl.Trace().Msg("m") }, severity: 7},
		{name: "debug", emit: func(zl zerolog.Logger) { zl.Debug().Msg("m") }, severity: 6},
		{name: "info", emit: func(zl zerolog.Logger) { zl.Info().Msg("m") }, severity: 5},
		{name: "warn", emit: func(zl zerolog.Logger) { zl.Warn().Msg("m") }, severity: 4},
		{name: "error", emit: func(zl zerolog.Logger) { zl.Error().Msg("m") }, severity: 3},
		{name: "no_level", emit: func(zl zerolog.Logger) { zl.Log().Msg("m") }, severity: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, watcher := newZerolog(t)
			tt.emit(zl)

			records := watcher.Records()
			require.Len(t, records, 1)
			assert.Equal(t, tt.severity, records[0].Severity)
		})
	}
}

func TestWriterDropsTimestamp(t *testing.T) {
	zl, watcher := newZerolog(t)

	timed := zl.With().Timestamp().Logger()
	timed.Info().Msg("timed")

	records := watcher.Records()
	require.Len(t, records, 1)
	assert.NotContains(t, records[0].Fields, zerolog.TimestampFieldName)
	assert.Positive(t, records[0].Timestamp, "the pipeline stamps its own time")
}

func TestWriterForwardsNestedValues(t *testing.T) {
	zl, watcher := newZerolog(t)

	zl.Info().
		Strs("tags", []string{"a", "b"}).
		Dict("inner", zerolog.Dict().Str("k", "v")).
		Float64("ratio", 0.5).
		Msg("nested")

	records := watcher.Records()
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, []any{"a", "b"}, rec.Fields["tags"])
	assert.Equal(t, map[string]any{"k": "v"}, rec.Fields["inner"])
	assert.Equal(t, 0.5, rec.Fields["ratio"])
}

func TestWriterDropsMalformedInput(t *testing.T) {
	watcher := mozlogtest.New()
	w := New(mozlog.New("test-logger", watcher))

	n, err := w.Write([]byte("not json at all\n"))
	require.NoError(t, err)
	assert.Equal(t, 16, n, "the sink never reports failure upstream")
	assert.Empty(t, watcher.Records())
}
