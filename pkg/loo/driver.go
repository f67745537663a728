package loo

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/pssmlab/loorun/pkg/loo/drawer"
	"github.com/pssmlab/loorun/pkg/loo/measure"
	"github.com/pssmlab/loorun/pkg/loo/model"
)

// State is the driver's position in the two-phase run.
type State string

const (
	StateInit            State = "init"
	StatePartitionsReady State = "partitions-ready"
	StateSearchRunning   State = "search-running"
	StateSearchDone      State = "search-done"
	StateExtractionDone  State = "extraction-done"
	StatePlotRunning     State = "plot-running"
	StateDone            State = "done"
)

const (
	startVertex   = "start"
	extractVertex = "extract"
	endVertex     = "end"
)

// Driver sequences the full run: partitions, search phase, barrier,
// extraction, plot phase, barrier, summary.
type Driver struct {
	items  []model.Item
	search SearchBuilder
	plot   PlotBuilder
	runner JobRunner

	limit  int
	logger *log.Logger
	drawer drawer.Drawer
	msr    measure.Measure

	state State
}

// NewDriver creates a driver over a fixed item set. The item set is validated
// when Run starts.
func NewDriver(items []model.Item, search SearchBuilder, plot PlotBuilder, runner JobRunner, opts ...DriverOption) *Driver {
	d := &Driver{
		items:  items,
		search: search,
		plot:   plot,
		runner: runner,
		state:  StateInit,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// State returns the driver's current state.
func (d *Driver) State() State {
	return d.state
}

// Run executes both phases and returns the aggregate report. The returned
// error is non-nil only for configuration errors (too few or duplicate
// items) or a drawer failure; individual job and extraction failures are
// recorded in the report instead.
//
// The plot phase never starts before every search job has terminated:
// identifier extraction happens strictly after the search barrier.
func (d *Driver) Run(ctx context.Context) (*model.Report, error) {
	report := model.NewReport()

	partitions, err := Partitions(d.items)
	if err != nil {
		return nil, errors.Wrap(err, "unable to partition item set")
	}
	d.state = StatePartitionsReady

	searchSpecs := make([]model.JobSpec, len(partitions))
	for i, part := range partitions {
		searchSpecs[i] = d.search.Build(part)
	}

	sched := NewScheduler(d.runner, d.limit, d.logger)

	d.state = StateSearchRunning
	d.logf("search phase: dispatching %d jobs", len(searchSpecs))
	searchStart := time.Now()
	report.Search = sched.RunPhase(ctx, searchSpecs)
	d.state = StateSearchDone
	d.recordPhase(model.PhaseSearch, report.Search, time.Since(searchStart))

	ids := make(map[model.Item]model.IdentifierList, len(partitions))
	for _, part := range partitions {
		list, err := ExtractIdentifiers(d.search.Artifact(part.Target))
		if err != nil {
			// Degrade: the item keeps an empty list and its plot job still
			// runs, so the leave-one-out cover stays intact.
			report.ExtractErrs[part.Target] = err
			list = model.IdentifierList{}
			d.logf("extraction failed for %s: %v", part.Target, err)
		}
		ids[part.Target] = list
	}
	d.state = StateExtractionDone

	plotSpecs := make([]model.JobSpec, len(partitions))
	for i, part := range partitions {
		plotSpecs[i] = d.plot.Build(part, ids[part.Target])
	}

	d.state = StatePlotRunning
	d.logf("plot phase: dispatching %d jobs", len(plotSpecs))
	plotStart := time.Now()
	report.Plot = sched.RunPhase(ctx, plotSpecs)
	d.state = StateDone
	d.recordPhase(model.PhasePlot, report.Plot, time.Since(plotStart))

	if err := d.draw(report); err != nil {
		return report, err
	}
	d.summarize(report)

	return report, nil
}

func (d *Driver) recordPhase(phase model.Phase, results []model.JobResult, elapsed time.Duration) {
	if d.msr == nil {
		return
	}
	for _, res := range results {
		d.msr.AddJob(res.Spec.Name()).SetDuration(res.Duration)
	}
	d.msr.SetPhaseDuration(string(phase), elapsed)
}

// draw registers the whole plan graph and renders it. Edges express the
// barrier: every search job feeds the extract vertex, every plot job hangs
// off it.
func (d *Driver) draw(report *model.Report) error {
	if d.drawer == nil {
		return nil
	}

	for _, name := range []string{startVertex, extractVertex, endVertex} {
		if err := d.drawer.AddJob(name); err != nil {
			return err
		}
	}
	for _, res := range report.Search {
		name := res.Spec.Name()
		if err := d.drawer.AddJob(name); err != nil {
			return err
		}
		if err := d.drawer.AddLink(startVertex, name); err != nil {
			return err
		}
		if err := d.drawer.AddLink(name, extractVertex); err != nil {
			return err
		}
		if err := d.drawer.MarkOutcome(name, res.OK()); err != nil {
			return err
		}
	}
	for _, res := range report.Plot {
		name := res.Spec.Name()
		if err := d.drawer.AddJob(name); err != nil {
			return err
		}
		if err := d.drawer.AddLink(extractVertex, name); err != nil {
			return err
		}
		if err := d.drawer.AddLink(name, endVertex); err != nil {
			return err
		}
		if err := d.drawer.MarkOutcome(name, res.OK()); err != nil {
			return err
		}
	}

	if d.msr != nil {
		if err := d.drawer.AddMeasure(d.msr); err != nil {
			return err
		}
	}

	return d.drawer.Draw()
}

func (d *Driver) summarize(report *model.Report) {
	failed := report.FailedJobs()
	d.logf("run finished: %d search jobs, %d plot jobs, %d failed, %d extraction errors",
		len(report.Search), len(report.Plot), len(failed), len(report.ExtractErrs))
	for _, res := range failed {
		d.logf("failed: %s: %v", res.Spec.Name(), res.Err)
	}
	if d.msr != nil {
		d.logf("phase durations: search %s, plot %s",
			d.msr.PhaseDuration(string(model.PhaseSearch)),
			d.msr.PhaseDuration(string(model.PhasePlot)))
	}
}

func (d *Driver) logf(format string, args ...interface{}) {
	if d.logger != nil {
		d.logger.Printf(format, args...)
	}
}
