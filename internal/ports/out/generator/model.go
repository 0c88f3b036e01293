package generator

import "context"

// Model is the generative-model boundary: one prompt in, free text out.
// Implementations must honor ctx cancellation and deadlines.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
