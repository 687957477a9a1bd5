package metrics

import "time"

// ResultLabel enumerates profile result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// HandoffKind names what a builder handed over to its caller.
type HandoffKind string

const (
	HandoffHouse         HandoffKind = "house"
	HandoffDocumentation HandoffKind = "documentation"
	HandoffReset         HandoffKind = "reset"
)

// Recorder defines observability hooks for builders and the director.
type Recorder interface {
	IncStep(variant, step string)
	IncHandoff(variant string, kind HandoffKind)
	IncProfileResult(profile string, result ResultLabel)
	ObserveProfileDuration(profile string, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncStep(string, string) {}
func (NoopRecorder) IncHandoff(string, HandoffKind) {}
func (NoopRecorder) IncProfileResult(string, ResultLabel) {}
func (NoopRecorder) ObserveProfileDuration(string, time.Duration) {}
