package diagram

import (
	"strings"

	"github.com/teranos/llmdiagram/errors"
)

// clusterPrefix is required by Graphviz to draw a subgraph as a bounded box
const clusterPrefix = "cluster"

// Validate checks structural invariants: unique node IDs, edge endpoints
// that exist, no self loops, and cluster IDs Graphviz will draw as clusters.
func (d Description) Validate() error {
	if d.Name == "" {
		return errors.NewInvalidDiagramError("diagram name is empty")
	}

	seen := make(map[string]string) // node ID -> owning cluster ("" for top level)
	addNodes := func(owner string, nodes []Node) error {
		for _, n := range nodes {
			if n.ID == "" {
				return errors.NewInvalidDiagramError("node with label %q has no ID", n.Label)
			}
			if prev, dup := seen[n.ID]; dup {
				return errors.NewInvalidDiagramError("node %q declared twice (in %q and %q)", n.ID, prev, owner)
			}
			seen[n.ID] = owner
		}
		return nil
	}

	clusterIDs := make(map[string]bool)
	for _, c := range d.Clusters {
		if !strings.HasPrefix(c.ID, clusterPrefix) {
			return errors.NewInvalidDiagramError("cluster %q must start with %q", c.ID, clusterPrefix)
		}
		if clusterIDs[c.ID] {
			return errors.NewInvalidDiagramError("cluster %q declared twice", c.ID)
		}
		clusterIDs[c.ID] = true
		if err := addNodes(c.ID, c.Nodes); err != nil {
			return err
		}
	}
	if err := addNodes("", d.Nodes); err != nil {
		return err
	}

	pairs := make(map[[2]string]bool)
	for _, e := range d.AllEdges() {
		if pairs[[2]string{e.From, e.To}] {
			return errors.NewInvalidDiagramError("edge %s -> %s declared twice", e.From, e.To)
		}
		pairs[[2]string{e.From, e.To}] = true
		if _, ok := seen[e.From]; !ok {
			return errors.NewInvalidDiagramError("edge %s -> %s references unknown node %q", e.From, e.To, e.From)
		}
		if _, ok := seen[e.To]; !ok {
			return errors.NewInvalidDiagramError("edge %s -> %s references unknown node %q", e.From, e.To, e.To)
		}
		if e.From == e.To {
			return errors.NewInvalidDiagramError("edge %s -> %s is a self loop", e.From, e.To)
		}
	}

	// Cluster edges must stay inside their cluster; cross edges belong at top level.
	for _, c := range d.Clusters {
		for _, e := range c.Edges {
			if seen[e.From] != c.ID || seen[e.To] != c.ID {
				return errors.NewInvalidDiagramError("edge %s -> %s leaves cluster %q", e.From, e.To, c.ID)
			}
		}
	}

	return nil
}
