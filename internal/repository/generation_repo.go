package repository

import "context"

// GenerationRepository is the capability interface for the opaque
// text-generation provider. Implementations wrap ErrUpstreamGeneration
// on failure so use cases can classify it with errors.Is.
type GenerationRepository interface {
	// Generate produces text for a prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}
