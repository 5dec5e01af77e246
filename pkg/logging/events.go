package logging

import (
	"fmt"
	"time"

	"github.com/eunmann/twain-bench/pkg/humanfmt"
	"github.com/rs/zerolog"
)

// CompletionEvent helps build consistent completion log events.
type CompletionEvent struct {
	log     zerolog.Logger
	event   string
	unit    string
	elapsed time.Duration
	fields  map[string]interface{}
}

// NewCompletionEvent creates a new completion event builder.
func NewCompletionEvent(log zerolog.Logger, event, unit string, elapsed time.Duration) *CompletionEvent {
	return &CompletionEvent{
		log:     log,
		event:   event,
		unit:    unit,
		elapsed: elapsed,
		fields:  make(map[string]interface{}),
	}
}

// Str adds a string field.
func (ce *CompletionEvent) Str(key, val string) *CompletionEvent {
	ce.fields[key] = val
	return ce
}

// Int adds an int field.
func (ce *CompletionEvent) Int(key string, val int) *CompletionEvent {
	ce.fields[key] = val
	return ce
}

// Hex adds a uint64 rendered as a fixed-width hex string (digests, seeds).
func (ce *CompletionEvent) Hex(key string, val uint64) *CompletionEvent {
	ce.fields[key] = fmt.Sprintf("%016x", val)
	return ce
}

// Dur adds a duration in nanoseconds with an optional human-readable companion.
func (ce *CompletionEvent) Dur(key string, d time.Duration) *CompletionEvent {
	ce.fields[key+"_ns"] = d.Nanoseconds()
	if IsPrettyMode() {
		ce.fields[key+"_h"] = humanfmt.Duration(d)
	}
	return ce
}

// Bytes adds byte count with optional human-readable companion.
func (ce *CompletionEvent) Bytes(key string, bytes int64) *CompletionEvent {
	ce.fields[key] = bytes
	if IsPrettyMode() {
		ce.fields[key+"_h"] = humanfmt.Bytes(bytes)
	}
	return ce
}

// Count adds count with optional human-readable companion.
func (ce *CompletionEvent) Count(key string, n int64) *CompletionEvent {
	ce.fields[key] = n
	if IsPrettyMode() {
		ce.fields[key+"_h"] = humanfmt.Count(n)
	}
	return ce
}

// Throughput adds a bytes-per-second field computed over per.
// per is usually a single iteration time rather than the event's elapsed time.
func (ce *CompletionEvent) Throughput(bytes int64, per time.Duration) *CompletionEvent {
	if per > 0 {
		bps := float64(bytes) / per.Seconds()
		ce.fields["throughput_bps"] = bps
		if IsPrettyMode() {
			ce.fields["throughput_h"] = humanfmt.Rate(bps)
		}
	}
	return ce
}

// Log emits the completion event.
func (ce *CompletionEvent) Log(msg string) {
	ce.emit(ce.log.Info(), msg)
}

// LogDebug emits the completion event at debug level.
func (ce *CompletionEvent) LogDebug(msg string) {
	ce.emit(ce.log.Debug(), msg)
}

func (ce *CompletionEvent) emit(e *zerolog.Event, msg string) {
	e = e.Str("event", ce.event).
		Str("unit", ce.unit).
		Int64("duration_ms", ce.elapsed.Milliseconds())

	if IsPrettyMode() {
		e = e.Str("duration_h", humanfmt.Duration(ce.elapsed))
	}

	for k, v := range ce.fields {
		e = e.Interface(k, v)
	}

	e.Msg(msg)
}

// RunCompleted starts a run_completed event for a benchmark unit.
func RunCompleted(log zerolog.Logger, unit string, elapsed time.Duration) *CompletionEvent {
	return NewCompletionEvent(log, "run_completed", unit, elapsed)
}

// CorpusLoaded starts a corpus_loaded event. unit carries the corpus name.
func CorpusLoaded(log zerolog.Logger, name string, elapsed time.Duration) *CompletionEvent {
	return NewCompletionEvent(log, "corpus_loaded", name, elapsed)
}

// BucketSampled starts a bucket_sampled event.
func BucketSampled(log zerolog.Logger, bucket string, elapsed time.Duration) *CompletionEvent {
	return NewCompletionEvent(log, "bucket_sampled", bucket, elapsed)
}
