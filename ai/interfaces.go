package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// scoring. Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a fixed-dimension vector embedding for a single
	// text string. Returns an error if embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates embeddings for multiple text strings in a batch.
	// The returned slice contains one vector per input, in input order.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
