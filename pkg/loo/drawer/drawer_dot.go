package drawer

import (
	"os"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/pssmlab/loorun/pkg/loo/measure"
)

// DOTDrawer is a drawer that creates a Graphviz DOT file with the run plan.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	jobs        map[string]struct{}
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{
		dotFileName: dotFileName,
		graph:       graph.New(graph.StringHash, graph.Directed()),
		jobs:        make(map[string]struct{}),
	}
}

// AddJob adds a job vertex to the plan graph.
func (d *DOTDrawer) AddJob(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrap(err, "unable to add vertex")
	}

	d.jobs[name] = struct{}{}

	return nil
}

// AddLink adds a dependency edge between parent and child vertices.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// MarkOutcome fills a job vertex green on success and red on failure.
func (d *DOTDrawer) MarkOutcome(name string, jobOK bool) error {
	_, properties, err := d.graph.VertexWithProperties(name)
	if err != nil {
		return errors.Wrapf(err, "unable to get vertex properties for %s", name)
	}

	fill, err := colors.RGB(220, 40, 40) //nolint
	if jobOK {
		fill, err = colors.RGB(60, 180, 75) //nolint
	}
	if err != nil {
		return errors.Wrap(err, "unable to get colour")
	}

	properties.Attributes["style"] = "filled"
	properties.Attributes["fillcolor"] = fill.ToHEX().String()

	return nil
}

const maxRGB = 240

// AddMeasure annotates every measured job with its duration and ramps the
// vertex outline from blue (fastest) to red (slowest).
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	all := msr.AllJobs()
	if len(all) == 0 {
		return nil
	}

	minValue := all[firstKey(all)].Duration()
	maxValue := minValue
	for _, mt := range all {
		elapsed := mt.Duration()
		if elapsed < minValue {
			minValue = elapsed
		}
		if elapsed > maxValue {
			maxValue = elapsed
		}
	}

	for name, mt := range all {
		if _, ok := d.jobs[name]; !ok {
			continue
		}
		_, properties, err := d.graph.VertexWithProperties(name)
		if err != nil {
			return errors.Wrapf(err, "unable to get vertex properties for %s", name)
		}

		elapsed := mt.Duration()
		properties.Attributes["xlabel"] = elapsed.String()

		fraction := 0.0
		if maxValue > minValue {
			fraction = float64(elapsed-minValue) / float64(maxValue-minValue)
		}

		red := maxRGB * fraction
		blue := maxRGB - red

		ramp, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}
		properties.Attributes["color"] = ramp.ToHEX().String()
	}

	return nil
}

// Draw creates the DOT file with the run plan graph.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to render dot file %s", d.dotFileName)
	}

	return nil
}

func firstKey(all map[string]measure.Metric) string {
	for name := range all {
		return name
	}

	return ""
}

var _ Drawer = (*DOTDrawer)(nil)
