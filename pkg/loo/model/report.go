package model

// Report aggregates the outcome of a full two-phase run.
type Report struct {
	Search []JobResult
	Plot   []JobResult

	// ExtractErrs holds the extraction failures keyed by item. Items listed
	// here went into the plot phase with an empty identifier list.
	ExtractErrs map[Item]error
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{ExtractErrs: make(map[Item]error)}
}

// Failed reports whether any job in either phase failed or any extraction
// failed.
func (r *Report) Failed() bool {
	for _, res := range r.Search {
		if !res.OK() {
			return true
		}
	}
	for _, res := range r.Plot {
		if !res.OK() {
			return true
		}
	}

	return len(r.ExtractErrs) > 0
}

// FailedJobs returns the results of every failed job, search phase first.
func (r *Report) FailedJobs() []JobResult {
	var failed []JobResult
	for _, res := range r.Search {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	for _, res := range r.Plot {
		if !res.OK() {
			failed = append(failed, res)
		}
	}

	return failed
}
