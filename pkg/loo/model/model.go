package model

import "time"

// Item names one element of the fixed comparison set.
type Item string

// Partition pairs one target item with every other item as background.
type Partition struct {
	Target     Item
	Background []Item
}

// Phase identifies one stage of the two-phase run.
type Phase string

const (
	PhaseSearch Phase = "search"
	PhasePlot   Phase = "plot"
)

// IdentifierList is the ordered sequence of identifiers extracted from one
// search artifact, in file order.
type IdentifierList []string

// JobSpec is a fully resolved external job invocation. It is immutable once
// built: the executable, the exact argument vector and the artifact path the
// job is expected to produce.
type JobSpec struct {
	Phase    Phase
	Target   Item
	Exec     string
	Args     []string
	Artifact string
}

// Name returns the job identity used in logs and the plan graph.
func (s JobSpec) Name() string {
	return string(s.Phase) + ":" + string(s.Target)
}

// JobResult records the outcome of one dispatched job.
type JobResult struct {
	Spec     JobSpec
	ExitCode int
	Duration time.Duration
	Err      error
}

// OK reports whether the job launched and exited zero.
func (r JobResult) OK() bool {
	return r.Err == nil
}
