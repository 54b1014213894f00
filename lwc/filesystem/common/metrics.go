package common

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// RunMetrics tracks scheduler progress with atomic counters so workers can
// update it without taking the aggregator lock.
type RunMetrics struct {
	EntriesWalked  atomic.Int64
	JobsDispatched atomic.Int64
	JobsSucceeded  atomic.Int64
	JobsFailed     atomic.Int64
	BytesRead      atomic.Int64
	start          time.Time
}

// NewRunMetrics starts the run clock.
func NewRunMetrics() *RunMetrics {
	return &RunMetrics{start: time.Now()}
}

// MetricsSnapshot is a point-in-time copy of RunMetrics.
type MetricsSnapshot struct {
	EntriesWalked  int64
	JobsDispatched int64
	JobsSucceeded  int64
	JobsFailed     int64
	BytesRead      int64
	Duration       time.Duration
}

// Snapshot copies the counters.
func (m *RunMetrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EntriesWalked:  m.EntriesWalked.Load(),
		JobsDispatched: m.JobsDispatched.Load(),
		JobsSucceeded:  m.JobsSucceeded.Load(),
		JobsFailed:     m.JobsFailed.Load(),
		BytesRead:      m.BytesRead.Load(),
		Duration:       time.Since(m.start),
	}
}

// Log writes the run summary at info level.
func (s MetricsSnapshot) Log(logger zerolog.Logger, workers int) {
	ev := logger.Info().
		Int64("entries", s.EntriesWalked).
		Int64("jobs", s.JobsDispatched).
		Int64("succeeded", s.JobsSucceeded).
		Int64("failed", s.JobsFailed).
		Int64("bytes", s.BytesRead).
		Int("workers", workers).
		Dur("duration", s.Duration)

	if secs := s.Duration.Seconds(); secs > 0 {
		ev = ev.Float64("jobs_per_sec", float64(s.JobsDispatched)/secs)
	}
	ev.Msg("Run completed")
}
