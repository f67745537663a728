// Package runner executes job specs as external processes.
package runner

import (
	"context"
	"io"
	"os/exec"
	"syscall"

	"github.com/pkg/errors"

	"github.com/pssmlab/loorun/pkg/loo"
	"github.com/pssmlab/loorun/pkg/loo/model"
)

// ExecRunner runs one job per call via os/exec. Job stdout and stderr are
// not suppressed: they stream to the configured writers for diagnostics.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// New creates an ExecRunner writing job output to the given writers.
func New(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{Stdout: stdout, Stderr: stderr}
}

// Run starts the job and waits for it to terminate. Launch failures wrap
// loo.ErrJobLaunch; nonzero exits wrap loo.ErrJobExit and carry the exit
// code. On context cancellation the whole process group is killed so no
// orphan keeps writing to the artifact directory.
func (r *ExecRunner) Run(ctx context.Context, spec model.JobSpec) (int, error) {
	cmd := exec.Command(spec.Exec, spec.Args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	// Own process group, so cancellation can kill the full tree.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return -1, errors.Wrapf(loo.ErrJobLaunch, "%s: %v", spec.Exec, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var waitErr error
	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		}
		<-done

		return -1, errors.Wrapf(ctx.Err(), "job %s cancelled", spec.Name())
	case waitErr = <-done:
	}

	if waitErr == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		code := exitErr.ExitCode()

		return code, errors.Wrapf(loo.ErrJobExit, "%s: exit status %d", spec.Name(), code)
	}

	return -1, errors.Wrapf(waitErr, "unable to wait for job %s", spec.Name())
}

var _ loo.JobRunner = (*ExecRunner)(nil)
