package database

import (
	"context"

	"github.com/tranhn/docchat-be/types"
)

// VectorIndex is the narrow contract the ingestion pipeline needs from the
// external vector store. Entries accumulate under a single fixed class;
// Reset is the only way to clear them.
type VectorIndex interface {
	// InsertChunks stores chunk text alongside precomputed embeddings.
	InsertChunks(ctx context.Context, source string, chunks []types.Chunk, embeddings [][]float32) error
	// QuerySimilar returns the text of the stored chunks closest to the
	// query embedding, most similar first.
	QuerySimilar(ctx context.Context, embedding []float32, limit int) ([]string, error)
	// Reset drops and recreates the backing class.
	Reset(ctx context.Context) error
}
