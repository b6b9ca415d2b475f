package types

// Chunk is a token-bounded span of a document's extracted text. Chunks are
// immutable once created and keep the order they were produced in.
type Chunk struct {
	Content string // chunk text
	Index   int    // position within the source document
}

// ChunkerConfig controls how extracted text is split before indexing.
type ChunkerConfig struct {
	ChunkSize int // maximum tokens per chunk
	Overlap   int // tokens shared between consecutive chunks
}
