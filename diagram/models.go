// Package diagram holds the Diagram Description: a read-only value of
// clusters, nodes, edges and Graphviz attributes, plus its DOT encoding.
package diagram

// Attr is a single Graphviz attribute
type Attr struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Attrs is an ordered attribute list; order is preserved in the DOT output
type Attrs []Attr

// Get returns the value for key and whether it was present
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// EdgeStyle is the Graphviz line style of an edge
type EdgeStyle string

const (
	StyleSolid  EdgeStyle = "solid"
	StyleDashed EdgeStyle = "dashed"
)

// Node is a labelled box (or other shape) in the diagram
type Node struct {
	ID        string `json:"id" yaml:"id"`
	Label     string `json:"label" yaml:"label"`
	FillColor string `json:"fillcolor,omitempty" yaml:"fillcolor,omitempty"`
	Shape     string `json:"shape,omitempty" yaml:"shape,omitempty"` // empty = node default (box)
}

// Edge connects two node IDs
type Edge struct {
	From       string    `json:"from" yaml:"from"`
	To         string    `json:"to" yaml:"to"`
	Label      string    `json:"label,omitempty" yaml:"label,omitempty"`
	Color      string    `json:"color,omitempty" yaml:"color,omitempty"`
	Style      EdgeStyle `json:"style,omitempty" yaml:"style,omitempty"`
	Constraint *bool     `json:"constraint,omitempty" yaml:"constraint,omitempty"` // nil = layout default (true)
	Dir        string    `json:"dir,omitempty" yaml:"dir,omitempty"`               // "none" removes the arrowhead
}

// Cluster is a named, styled group of nodes rendered as a bounded region.
// Graphviz only draws the boundary when the ID starts with "cluster".
type Cluster struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Attrs Attrs  `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// Description is the complete static diagram before rendering.
// Treat it as a value: accessors return copies and nothing mutates it after
// construction.
type Description struct {
	Name         string    `json:"name" yaml:"name"`
	Comment      string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	Attrs        Attrs     `json:"attrs" yaml:"attrs"`
	NodeDefaults Attrs     `json:"node_defaults,omitempty" yaml:"node_defaults,omitempty"`
	EdgeDefaults Attrs     `json:"edge_defaults,omitempty" yaml:"edge_defaults,omitempty"`
	Clusters     []Cluster `json:"clusters" yaml:"clusters"`
	Nodes        []Node    `json:"nodes,omitempty" yaml:"nodes,omitempty"` // top-level, outside any cluster
	Edges        []Edge    `json:"edges,omitempty" yaml:"edges,omitempty"` // top-level, usually cross-cluster
}

// Stats counts the elements of a description
type Stats struct {
	Clusters int `json:"clusters" yaml:"clusters"`
	Nodes    int `json:"nodes" yaml:"nodes"`
	Edges    int `json:"edges" yaml:"edges"`
}

// AllNodes returns every node, cluster members first in cluster order
func (d Description) AllNodes() []Node {
	var nodes []Node
	for _, c := range d.Clusters {
		nodes = append(nodes, c.Nodes...)
	}
	return append(nodes, d.Nodes...)
}

// AllEdges returns every edge, cluster edges first in cluster order
func (d Description) AllEdges() []Edge {
	var edges []Edge
	for _, c := range d.Clusters {
		edges = append(edges, c.Edges...)
	}
	return append(edges, d.Edges...)
}

// Node looks up a node by ID anywhere in the description
func (d Description) Node(id string) (Node, bool) {
	for _, n := range d.AllNodes() {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Cluster looks up a cluster by ID
func (d Description) Cluster(id string) (Cluster, bool) {
	for _, c := range d.Clusters {
		if c.ID == id {
			return c, true
		}
	}
	return Cluster{}, false
}

// Stats returns element counts
func (d Description) Stats() Stats {
	return Stats{
		Clusters: len(d.Clusters),
		Nodes:    len(d.AllNodes()),
		Edges:    len(d.AllEdges()),
	}
}
