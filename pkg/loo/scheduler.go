package loo

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pssmlab/loorun/pkg/loo/model"
)

// JobRunner executes a single external job and reports its exit code.
//
// A returned error wrapping ErrJobLaunch means the executable never started;
// one wrapping ErrJobExit means it terminated with a nonzero status. The
// scheduler records errors per job, it never acts on them.
type JobRunner interface {
	Run(ctx context.Context, spec model.JobSpec) (int, error)
}

// Scheduler dispatches the jobs of one phase concurrently and blocks until
// every one of them has terminated. Jobs within a phase are independent: no
// ordering is imposed between them and the failure of one never cancels or
// skips its siblings.
type Scheduler struct {
	runner JobRunner
	limit  int
	logger *log.Logger
}

// NewScheduler creates a scheduler. A limit of 0 means no concurrency cap.
func NewScheduler(runner JobRunner, limit int, logger *log.Logger) *Scheduler {
	return &Scheduler{
		runner: runner,
		limit:  limit,
		logger: logger,
	}
}

// RunPhase launches every spec and waits for all of them, returning one
// result per spec in input order. The return itself is the phase barrier:
// once RunPhase returns, every job of the phase has terminated.
func (s *Scheduler) RunPhase(ctx context.Context, specs []model.JobSpec) []model.JobResult {
	results := make([]model.JobResult, len(specs))

	// Not errgroup.WithContext: a failing job must not cancel its siblings,
	// so job errors are recorded in the results instead of being returned.
	grp := errgroup.Group{}
	if s.limit > 0 {
		grp.SetLimit(s.limit)
	}

	for i, spec := range specs {
		i, spec := i, spec
		grp.Go(func() error {
			start := time.Now()
			code, err := s.runner.Run(ctx, spec)
			results[i] = model.JobResult{
				Spec:     spec,
				ExitCode: code,
				Duration: time.Since(start),
				Err:      err,
			}
			if s.logger != nil {
				if err != nil {
					s.logger.Printf("job %s failed after %s: %v", spec.Name(), results[i].Duration, err)
				} else {
					s.logger.Printf("job %s finished in %s", spec.Name(), results[i].Duration)
				}
			}

			return nil
		})
	}

	//nolint:errcheck // goroutines only ever return nil, failures live in results
	grp.Wait()

	return results
}
