// Package provider wraps the external text-generation service behind a
// small Generator interface so the relay never depends on a concrete SDK.
package provider

import "context"

// Generator produces text for a prompt. Implementations are expected to
// be safe for concurrent use; the relay shares one Generator across
// requests.
type Generator interface {
	// Generate forwards prompt as the full content of a single user
	// turn and returns the provider's generated text.
	Generate(ctx context.Context, prompt string) (string, error)
	// Close releases underlying connections.
	Close() error
}
