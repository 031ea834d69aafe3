package neighborgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting cache metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordBuild is called after each full build. pairs is the number of
	// pairs in the stored list, err is nil if successful.
	RecordBuild(duration time.Duration, pairs int, err error)

	// RecordUpdate is called after each Update call. rebuilt reports
	// whether the call triggered a full build.
	RecordUpdate(rebuilt bool, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(time.Duration, int, error) {}
func (NoopMetricsCollector) RecordUpdate(bool, time.Duration)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
	BuildPairs      atomic.Int64
	UpdateCount     atomic.Int64
	UpdateRebuilds  atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(duration time.Duration, pairs int, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildPairs.Add(int64(pairs))
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(rebuilt bool, duration time.Duration) {
	b.UpdateCount.Add(1)
	if rebuilt {
		b.UpdateRebuilds.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildErrors:    b.BuildErrors.Load(),
		BuildPairs:     b.BuildPairs.Load(),
		UpdateCount:    b.UpdateCount.Load(),
		UpdateRebuilds: b.UpdateRebuilds.Load(),
	}
	if stats.BuildCount > 0 {
		stats.BuildAvgNanos = b.BuildTotalNanos.Load() / stats.BuildCount
	}
	return stats
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildErrors    int64
	BuildAvgNanos  int64
	BuildPairs     int64
	UpdateCount    int64
	UpdateRebuilds int64
}
