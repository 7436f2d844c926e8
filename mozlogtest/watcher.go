// Package mozlogtest helps tests observe MozLog output. The Watcher is a
// sink double that incrementally parses newline-delimited records out of
// whatever bytes have been written so far; production sinks only ever see
// whole-record writes and need none of this.
package mozlogtest

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/mozlog-go/mozlog"
)

// Watcher is an io.Writer that collects MozLog records. It is safe for
// concurrent use and tolerates records arriving split across writes.
type Watcher struct {
	mu      sync.Mutex
	pending []byte
	records []mozlog.Record
}

// New creates an empty Watcher.
func New() *Watcher {
	return &Watcher{}
}

// Write consumes a chunk of sink output, parsing every complete line it
// completes. Lines that are not valid records are ignored.
func (w *Watcher) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			return len(p), nil
		}
		line := w.pending[:i]
		w.pending = w.pending[i+1:]
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var rec mozlog.Record
		if err := json.Unmarshal(line, &rec); err == nil {
			w.records = append(w.records, rec)
		}
	}
}

// Records returns a copy of the records parsed so far, in emission order.
func (w *Watcher) Records() []mozlog.Record {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]mozlog.Record, len(w.records))
	copy(out, w.records)
	return out
}

// Has reports whether any parsed record satisfies pred.
func (w *Watcher) Has(pred func(mozlog.Record) bool) bool {
	for _, rec := range w.Records() {
		if pred(rec) {
			return true
		}
	}
	return false
}

// Find returns the first parsed record with the given message type.
func (w *Watcher) Find(msgType string) (mozlog.Record, bool) {
	for _, rec := range w.Records() {
		if rec.Type == msgType {
			return rec, true
		}
	}
	return mozlog.Record{}, false
}
