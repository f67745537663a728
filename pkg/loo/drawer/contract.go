package drawer

import (
	"github.com/pssmlab/loorun/pkg/loo/measure"
)

// Drawer renders the run plan graph: one vertex per job plus the barrier
// vertices, linked in dispatch order.
type Drawer interface {
	// AddJob adds a job (or barrier) vertex to the plan graph.
	AddJob(name string) error
	// AddLink adds a dependency edge from parent to child.
	AddLink(parentName, childName string) error
	// MarkOutcome colors a vertex by job outcome.
	MarkOutcome(name string, ok bool) error
	// AddMeasure annotates vertices with job durations.
	AddMeasure(msr measure.Measure) error
	// Draw writes the plan graph to a file.
	Draw() error
}
