// Package render turns a diagram description into an image file.
package render

import (
	"context"

	"github.com/teranos/llmdiagram/diagram"
)

// Renderer writes desc next to outputBase and returns the image path
type Renderer interface {
	Render(ctx context.Context, desc diagram.Description, outputBase string) (string, error)
}

// Defaults
const (
	DefaultEngine = "dot"
	DefaultFormat = "png"
	DefaultOutput = "assets/llm-bottlenecks"
)
