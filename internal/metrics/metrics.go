package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	retries         int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about a run and mirrors
// them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu         sync.Mutex
	stats      map[string]*providerStats
	normalized int
	runs       int
	runErrors  int
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRetry tracks that a provider call is about to be retried.
func (r *Recorder) RecordRetry(provider string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStats(provider).retries++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRetry(provider)
	}
}

// RecordNormalized adds count emitted records.
func (r *Recorder) RecordNormalized(count int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.normalized += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordNormalized(count)
	}
}

// RecordRun tracks one end-to-end command invocation.
func (r *Recorder) RecordRun(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs++
	if err != nil {
		r.runErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(duration, err)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// Snapshot is a copy of the current stats for one provider plus run totals.
type Snapshot struct {
	Calls           int
	Errors          int
	Retries         int
	LastCallLatency time.Duration
	Normalized      int
	Runs            int
	RunErrors       int
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Normalized: r.normalized,
		Runs:       r.runs,
		RunErrors:  r.runErrors,
	}
	if stats, ok := r.stats[provider]; ok && stats != nil {
		snap.Calls = stats.calls
		snap.Errors = stats.errors
		snap.Retries = stats.retries
		snap.LastCallLatency = stats.lastCallLatency
	}
	return snap
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
