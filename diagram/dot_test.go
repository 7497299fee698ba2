package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/llmdiagram/errors"
)

func TestMarshalDOTDeterministic(t *testing.T) {
	first, err := MarshalDOT(Bottlenecks("Virgil"))
	require.NoError(t, err)
	second, err := MarshalDOT(Bottlenecks("Virgil"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMarshalDOTStructure(t *testing.T) {
	src, err := MarshalDOT(Bottlenecks("Virgil"))
	require.NoError(t, err)
	out := string(src)

	assert.True(t, strings.HasPrefix(out, "// LLM Inference vs Training Bottlenecks\n"))
	assert.Contains(t, out, "digraph bottlenecks {")
	assert.Equal(t, 2, strings.Count(out, "subgraph cluster_"))
	assert.Contains(t, out, "subgraph cluster_inference {")
	assert.Contains(t, out, "subgraph cluster_training {")
	assert.Contains(t, out, "rankdir=TB")
	assert.Contains(t, out, `style="rounded,filled"`)
	assert.Contains(t, out, `label="Inference Mode (Single User)"`)

	// Newlines in labels become Graphviz \n line breaks.
	assert.Contains(t, out, `label="Single User\nRequest"`)
	assert.Contains(t, out, `user -> gpu_inf [label="Low Latency\nRequired"];`)

	assert.Contains(t, out, "bottleneck_inf -> bottleneck_train")
	assert.Contains(t, out, "constraint=false")
	assert.Contains(t, out, "dir=none")
	assert.Contains(t, out, "shape=diamond")
}

func TestMarshalDOTClusterMembership(t *testing.T) {
	src, err := MarshalDOT(Bottlenecks("Virgil"))
	require.NoError(t, err)
	out := string(src)

	inf := strings.Index(out, "subgraph cluster_inference")
	train := strings.Index(out, "subgraph cluster_training")
	require.True(t, inf >= 0 && train > inf)

	// Cluster nodes are declared inside their own subgraph block.
	inferenceBlock := out[inf:train]
	assert.Contains(t, inferenceBlock, "memory_inf -> bottleneck_inf")
	assert.NotContains(t, inferenceBlock, "gpu_train")
	assert.Contains(t, out[train:], "gpu_train -> network_train")
}

func TestMarshalDOTRejectsInvalid(t *testing.T) {
	d := Bottlenecks("Virgil")
	d.Edges = append(d.Edges, Edge{From: NodeUser, To: "ghost"})

	_, err := MarshalDOT(d)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidDiagram(err))
}
