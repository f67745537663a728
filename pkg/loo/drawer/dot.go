package drawer

import (
	"fmt"
	"io"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
)

// The plan graph renders as one statement per vertex, carrying the
// accumulated vertex attributes, followed by one statement per edge. A
// duration annotation (the xlabel attribute) becomes an HTML label so the
// job name and its wall time stack inside the node.
const dotTemplate = `strict {{.GraphType}} {
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}"{{else}}[ {{if .Label}}label={{.Label}}, {{end}}{{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	Label            string
}

// dot writes the plan graph to wrt in Graphviz DOT format.
func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer) error {
	desc, err := generateDOT(g)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T]) (description, error) {
	desc := description{
		GraphType:    "graph",
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		stmt := statement{
			Source:           vertex,
			SourceAttributes: sourceProperties.Attributes,
		}
		if xlabel, ok := sourceProperties.Attributes["xlabel"]; ok {
			stmt.Label = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(sourceProperties.Attributes, "xlabel")
		}
		desc.Statements = append(desc.Statements, stmt)

		for adjacency := range adjacencies {
			desc.Statements = append(desc.Statements, statement{
				Source: vertex,
				Target: adjacency,
			})
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}
