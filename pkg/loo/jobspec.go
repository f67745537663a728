package loo

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pssmlab/loorun/pkg/loo/model"
)

// SearchBuilder materializes search-phase invocations. The same fixed
// parameters apply to every partition; only the target/background split and
// the artifact path vary per item.
type SearchBuilder struct {
	Exec       string
	Dataset    string
	Threshold  float64
	MaxResults int
	OutputDir  string
}

// Artifact returns the deterministic artifact path for target. The path is a
// pure function of the target name so later phases can locate it without
// extra bookkeeping.
func (b SearchBuilder) Artifact(target model.Item) string {
	return filepath.Join(b.OutputDir, string(target)+".txt")
}

// Build produces the search job for one partition.
func (b SearchBuilder) Build(part model.Partition) model.JobSpec {
	artifact := b.Artifact(part.Target)

	return model.JobSpec{
		Phase:  model.PhaseSearch,
		Target: part.Target,
		Exec:   b.Exec,
		Args: []string{
			"-d", b.Dataset,
			"-k", joinItems(part.Background),
			"-t", string(part.Target),
			"-p", strconv.FormatFloat(b.Threshold, 'g', -1, 64),
			"-n", strconv.Itoa(b.MaxResults),
			"-o", artifact,
		},
		Artifact: artifact,
	}
}

// PlotBuilder materializes plot-phase invocations. Each job carries the
// identifiers extracted from its own item's search artifact.
type PlotBuilder struct {
	Exec      string
	Dataset   string
	OutputDir string
}

// Artifact returns the deterministic artifact path for target.
func (b PlotBuilder) Artifact(target model.Item) string {
	return filepath.Join(b.OutputDir, string(target)+".pdf")
}

// Build produces the plot job for one partition. An empty identifier list is
// degenerate but valid: the job is still built and dispatched, and the
// external tool decides what to do with zero identifiers.
func (b PlotBuilder) Build(part model.Partition, ids model.IdentifierList) model.JobSpec {
	artifact := b.Artifact(part.Target)
	args := []string{
		"-d", b.Dataset,
		"-k", joinItems(part.Background),
		"-t", string(part.Target),
	}
	if len(ids) > 0 {
		args = append(args, "-s")
		args = append(args, ids...)
	}
	args = append(args, "-o", artifact)

	return model.JobSpec{
		Phase:    model.PhasePlot,
		Target:   part.Target,
		Exec:     b.Exec,
		Args:     args,
		Artifact: artifact,
	}
}

func joinItems(items []model.Item) string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = string(item)
	}

	return strings.Join(names, ",")
}
