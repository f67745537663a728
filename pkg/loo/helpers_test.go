package loo_test

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/pssmlab/loorun/pkg/loo"
	"github.com/pssmlab/loorun/pkg/loo/model"
)

// fakeRunner records every dispatched spec and can fail selected jobs or run
// a callback in place of the external process.
type fakeRunner struct {
	mu          sync.Mutex
	calls       []model.JobSpec
	inFlight    int
	maxInFlight int

	fail  map[string]bool
	onRun func(spec model.JobSpec) error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{fail: make(map[string]bool)}
}

func (r *fakeRunner) Run(_ context.Context, spec model.JobSpec) (int, error) {
	r.mu.Lock()
	r.calls = append(r.calls, spec)
	r.inFlight++
	if r.inFlight > r.maxInFlight {
		r.maxInFlight = r.inFlight
	}
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.inFlight--
		r.mu.Unlock()
	}()

	if r.onRun != nil {
		if err := r.onRun(spec); err != nil {
			return -1, err
		}
	}
	if r.fail[spec.Name()] {
		return 3, errors.Wrap(loo.ErrJobExit, spec.Name())
	}

	return 0, nil
}

func (r *fakeRunner) recorded() []model.JobSpec {
	r.mu.Lock()
	defer r.mu.Unlock()

	calls := make([]model.JobSpec, len(r.calls))
	copy(calls, r.calls)

	return calls
}

var _ loo.JobRunner = (*fakeRunner)(nil)
