package diagram

// DefaultFontName is the font family the diagram is styled with
const DefaultFontName = "Virgil"

// Bottlenecks node IDs
const (
	NodeUser            = "user"
	NodeGPUInference    = "gpu_inf"
	NodeMemoryInference = "memory_inf"
	NodeBottleneckInf   = "bottleneck_inf"

	NodeDataset         = "data"
	NodeGPUTraining     = "gpu_train"
	NodeComputeTraining = "compute_train"
	NodeNetworkTraining = "network_train"
	NodeBottleneckTrain = "bottleneck_train"
)

// Cluster IDs
const (
	ClusterInference = "cluster_inference"
	ClusterTraining  = "cluster_training"
)

const bottleneckColor = "red"

// Bottlenecks builds the "LLM inference vs training" diagram. fontPath is
// used for the fontpath/fontname attributes (VIRGIL_FONT_PATH). Every call
// returns a fresh value; nothing is shared between calls.
func Bottlenecks(fontPath string) Description {
	if fontPath == "" {
		fontPath = DefaultFontName
	}
	noConstraint := false

	return Description{
		Name:    "bottlenecks",
		Comment: "LLM Inference vs Training Bottlenecks",
		Attrs: Attrs{
			{Key: "rankdir", Value: "TB"},
			{Key: "label", Value: "LLM Inference vs Training: Different Bottlenecks\n(Simplified Architecture)"},
			{Key: "fontname", Value: fontPath},
			{Key: "fontsize", Value: "20"},
		},
		NodeDefaults: Attrs{
			{Key: "shape", Value: "box"},
			{Key: "style", Value: "rounded,filled"},
			{Key: "fontname", Value: DefaultFontName},
			{Key: "fontpath", Value: fontPath},
		},
		EdgeDefaults: Attrs{
			{Key: "color", Value: "gray50"},
			{Key: "fontname", Value: fontPath},
		},
		Clusters: []Cluster{
			inferenceCluster(),
			trainingCluster(),
		},
		Edges: []Edge{
			{
				From:       NodeBottleneckInf,
				To:         NodeBottleneckTrain,
				Label:      "Different Optimization Goals:\nLatency vs Throughput",
				Style:      StyleSolid,
				Color:      "gray30",
				Constraint: &noConstraint,
				Dir:        "none",
			},
		},
	}
}

func clusterAttrs() Attrs {
	return Attrs{
		{Key: "style", Value: "rounded,filled"},
		{Key: "fillcolor", Value: "lightblue"},
		{Key: "fontsize", Value: "16"},
	}
}

func inferenceCluster() Cluster {
	return Cluster{
		ID:    ClusterInference,
		Label: "Inference Mode (Single User)",
		Attrs: clusterAttrs(),
		Nodes: []Node{
			{ID: NodeUser, Label: "Single User\nRequest", FillColor: "lightgreen"},
			{ID: NodeGPUInference, Label: "GPU\n(High Memory Bandwidth Required)", FillColor: "lightpink"},
			{ID: NodeMemoryInference, Label: "Memory\n(Bottleneck: 1TB/s Bandwidth)", FillColor: "lightyellow"},
			{ID: NodeBottleneckInf, Label: "Bottleneck:\nMemory Bandwidth", FillColor: bottleneckColor, Shape: "diamond"},
		},
		Edges: []Edge{
			{From: NodeUser, To: NodeGPUInference, Label: "Low Latency\nRequired"},
			{From: NodeGPUInference, To: NodeMemoryInference, Label: "Memory\nBound"},
			{From: NodeMemoryInference, To: NodeBottleneckInf, Style: StyleDashed, Color: bottleneckColor},
		},
	}
}

func trainingCluster() Cluster {
	return Cluster{
		ID:    ClusterTraining,
		Label: "Training Mode (Bulk Processing)",
		Attrs: clusterAttrs(),
		Nodes: []Node{
			{ID: NodeDataset, Label: "Large Dataset\n(Millions of Tokens)", FillColor: "lightgreen"},
			{ID: NodeGPUTraining, Label: "GPU\n(High Compute Required)", FillColor: "lightpink"},
			{ID: NodeComputeTraining, Label: "Compute\n(Bottleneck: 312 TFLOPS)", FillColor: "lightyellow"},
			{ID: NodeNetworkTraining, Label: "Network I/O\n(100 Gbps InfiniBand)", FillColor: "lightcyan"},
			{ID: NodeBottleneckTrain, Label: "Bottleneck:\nGPU FLOPS", FillColor: bottleneckColor, Shape: "diamond"},
		},
		Edges: []Edge{
			{From: NodeDataset, To: NodeGPUTraining, Label: "Bulk Processing"},
			{From: NodeGPUTraining, To: NodeComputeTraining, Label: "Compute\nBound"},
			{From: NodeGPUTraining, To: NodeNetworkTraining, Label: "Network\nOverlap"},
			{From: NodeComputeTraining, To: NodeBottleneckTrain, Style: StyleDashed, Color: bottleneckColor},
		},
	}
}
