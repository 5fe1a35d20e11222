package plycloud

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after each load.
	// vertices is the size of the cloud after loading, err is nil if successful.
	RecordLoad(vertices int, duration time.Duration, err error)

	// RecordSave is called after each save attempt.
	RecordSave(vertices int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSave(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadVertices   atomic.Int64
	LoadTotalNanos atomic.Int64
	SaveCount      atomic.Int64
	SaveErrors     atomic.Int64
	SaveVertices   atomic.Int64
	SaveTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(vertices int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadVertices.Add(int64(vertices))
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(vertices int, duration time.Duration, err error) {
	b.SaveCount.Add(1)
	b.SaveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.SaveVertices.Add(int64(vertices))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:    b.LoadCount.Load(),
		LoadErrors:   b.LoadErrors.Load(),
		LoadVertices: b.LoadVertices.Load(),
		LoadAvgNanos: avgNanos(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		SaveCount:    b.SaveCount.Load(),
		SaveErrors:   b.SaveErrors.Load(),
		SaveVertices: b.SaveVertices.Load(),
		SaveAvgNanos: avgNanos(b.SaveTotalNanos.Load(), b.SaveCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount    int64
	LoadErrors   int64
	LoadVertices int64
	LoadAvgNanos int64
	SaveCount    int64
	SaveErrors   int64
	SaveVertices int64
	SaveAvgNanos int64
}
