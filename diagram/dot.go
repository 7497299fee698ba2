package diagram

import (
	"bytes"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/teranos/llmdiagram/errors"
)

// attrList adapts a DOT attribute slice to encoding.Attributer
type attrList []encoding.Attribute

func (a attrList) Attributes() []encoding.Attribute { return a }

// dotNode is a gonum node carrying the diagram node ID and its attributes
type dotNode struct {
	id    int64
	name  string
	attrs attrList
}

func (n dotNode) ID() int64                        { return n.id }
func (n dotNode) DOTID() string                    { return n.name }
func (n dotNode) Attributes() []encoding.Attribute { return n.attrs }

// dotEdge is a gonum edge carrying the diagram edge attributes
type dotEdge struct {
	from, to dotNode
	attrs    attrList
}

func (e dotEdge) From() graph.Node                 { return e.from }
func (e dotEdge) To() graph.Node                   { return e.to }
func (e dotEdge) ReversedEdge() graph.Edge         { return dotEdge{from: e.to, to: e.from, attrs: e.attrs} }
func (e dotEdge) Attributes() []encoding.Attribute { return e.attrs }

// dotGraph is a named directed graph with graph/node/edge attribute blocks
// and cluster subgraphs.
type dotGraph struct {
	*simple.DirectedGraph
	name      string
	graphAttr attrList
	nodeAttr  attrList
	edgeAttr  attrList
	clusters  []dot.Graph
}

func (g *dotGraph) DOTID() string { return g.name }

func (g *dotGraph) DOTAttributers() (encoding.Attributer, encoding.Attributer, encoding.Attributer) {
	return g.graphAttr, g.nodeAttr, g.edgeAttr
}

func (g *dotGraph) Structure() []dot.Graph { return g.clusters }

// MarshalDOT encodes the description as Graphviz DOT source. The output is
// byte-for-byte deterministic for equal descriptions.
func MarshalDOT(d Description) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	// Stable numeric IDs shared by the root graph and the clusters.
	nodes := make(map[string]dotNode)
	for i, n := range d.AllNodes() {
		nodes[n.ID] = dotNode{id: int64(i), name: n.ID, attrs: nodeAttributes(n)}
	}

	root := &dotGraph{
		DirectedGraph: simple.NewDirectedGraph(),
		name:          d.Name,
		graphAttr:     toAttrList(d.Attrs),
		nodeAttr:      toAttrList(d.NodeDefaults),
		edgeAttr:      toAttrList(d.EdgeDefaults),
	}

	for _, c := range d.Clusters {
		sub := &dotGraph{
			DirectedGraph: simple.NewDirectedGraph(),
			name:          c.ID,
			graphAttr:     toAttrList(append(Attrs{{Key: "label", Value: c.Label}}, c.Attrs...)),
		}
		for _, n := range c.Nodes {
			sub.AddNode(nodes[n.ID])
		}
		for _, e := range c.Edges {
			sub.SetEdge(dotEdge{from: nodes[e.From], to: nodes[e.To], attrs: edgeAttributes(e)})
		}
		root.clusters = append(root.clusters, sub)
	}

	for _, n := range d.Nodes {
		root.AddNode(nodes[n.ID])
	}
	// Cross edges pull their endpoints into the root graph; Graphviz keeps
	// them in the cluster where they were first declared.
	for _, e := range d.Edges {
		root.SetEdge(dotEdge{from: nodes[e.From], to: nodes[e.To], attrs: edgeAttributes(e)})
	}

	src, err := dot.Marshal(root, d.Name, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode diagram %s as DOT", d.Name)
	}

	var b bytes.Buffer
	if d.Comment != "" {
		b.WriteString("// ")
		b.WriteString(d.Comment)
		b.WriteByte('\n')
	}
	b.Write(src)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func nodeAttributes(n Node) attrList {
	attrs := attrList{{Key: "label", Value: n.Label}}
	if n.FillColor != "" {
		attrs = append(attrs, encoding.Attribute{Key: "fillcolor", Value: n.FillColor})
	}
	if n.Shape != "" {
		attrs = append(attrs, encoding.Attribute{Key: "shape", Value: n.Shape})
	}
	return attrs
}

func edgeAttributes(e Edge) attrList {
	var attrs attrList
	if e.Label != "" {
		attrs = append(attrs, encoding.Attribute{Key: "label", Value: e.Label})
	}
	if e.Style != "" {
		attrs = append(attrs, encoding.Attribute{Key: "style", Value: string(e.Style)})
	}
	if e.Color != "" {
		attrs = append(attrs, encoding.Attribute{Key: "color", Value: e.Color})
	}
	if e.Constraint != nil {
		attrs = append(attrs, encoding.Attribute{Key: "constraint", Value: strconv.FormatBool(*e.Constraint)})
	}
	if e.Dir != "" {
		attrs = append(attrs, encoding.Attribute{Key: "dir", Value: e.Dir})
	}
	return attrs
}

func toAttrList(a Attrs) attrList {
	out := make(attrList, 0, len(a))
	for _, attr := range a {
		out = append(out, encoding.Attribute{Key: attr.Key, Value: attr.Value})
	}
	return out
}
