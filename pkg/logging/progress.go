package logging

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/eunmann/twain-bench/pkg/humanfmt"
	"github.com/rs/zerolog"
)

// ProgressTracker counts finished benchmark units and estimates the time
// left from a moving average of recent unit durations. It is safe for
// concurrent use.
type ProgressTracker struct {
	total     int64
	completed atomic.Int64
	startTime time.Time

	mu              sync.Mutex
	recentDurations []time.Duration
	maxRecent       int
}

// NewProgressTracker creates a tracker for total units.
func NewProgressTracker(total int64) *ProgressTracker {
	return &ProgressTracker{
		total:           total,
		startTime:       time.Now(),
		recentDurations: make([]time.Duration, 0, 5),
		maxRecent:       5,
	}
}

// RecordCompletion records that a unit finished after d.
func (pt *ProgressTracker) RecordCompletion(d time.Duration) {
	pt.completed.Add(1)

	pt.mu.Lock()
	if len(pt.recentDurations) >= pt.maxRecent {
		pt.recentDurations = pt.recentDurations[1:]
	}
	pt.recentDurations = append(pt.recentDurations, d)
	pt.mu.Unlock()
}

// Progress returns the completed and total unit counts.
func (pt *ProgressTracker) Progress() (completed, total int64) {
	return pt.completed.Load(), pt.total
}

// ETA estimates the time remaining. It is 0 before the first completion and
// after the last.
func (pt *ProgressTracker) ETA() time.Duration {
	completed := pt.completed.Load()
	remaining := pt.total - completed
	if completed == 0 || remaining <= 0 {
		return 0
	}

	pt.mu.Lock()
	var sum time.Duration
	for _, d := range pt.recentDurations {
		sum += d
	}
	avg := sum / time.Duration(len(pt.recentDurations))
	pt.mu.Unlock()

	return avg * time.Duration(remaining)
}

// Elapsed returns time since tracking started.
func (pt *ProgressTracker) Elapsed() time.Duration {
	return time.Since(pt.startTime)
}

// Progress adds done, total, progress_pct and, while units remain, eta_ms.
func (ce *CompletionEvent) Progress(pt *ProgressTracker) *CompletionEvent {
	done, total := pt.Progress()
	ce.fields["done"] = done
	ce.fields["total"] = total
	if total > 0 {
		ce.fields["progress_pct"] = float64(done) * 100.0 / float64(total)
	}
	if eta := pt.ETA(); eta > 0 {
		ce.fields["eta_ms"] = eta.Milliseconds()
		if IsPrettyMode() {
			ce.fields["eta_h"] = humanfmt.Duration(eta)
		}
	}
	return ce
}

// UnitProgress starts a unit_progress event, logged after each unit of a run.
func UnitProgress(log zerolog.Logger, unit string, elapsed time.Duration) *CompletionEvent {
	return NewCompletionEvent(log, "unit_progress", unit, elapsed)
}
