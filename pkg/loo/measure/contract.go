package measure

import "time"

// Metric records the wall time of one job.
type Metric interface {
	// SetDuration sets the job wall time.
	SetDuration(elapsed time.Duration)
	// Duration returns the job wall time.
	Duration() time.Duration
}

// Measure collects the metrics of a whole run.
type Measure interface {
	// AddJob registers a metric for a job.
	AddJob(name string) Metric
	// GetJob returns the metric of a job, nil when unknown.
	GetJob(name string) Metric
	// AllJobs returns every job metric keyed by job name.
	AllJobs() map[string]Metric
	// SetPhaseDuration sets the wall time of a whole phase.
	SetPhaseDuration(phase string, elapsed time.Duration)
	// PhaseDuration returns the wall time of a phase.
	PhaseDuration(phase string) time.Duration
}
