package service

import (
	"context"
	"os"
	"strings"

	"github.com/tranhn/docchat-be/types"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// staticExtractor returns a fixed text regardless of the file path.
type staticExtractor struct {
	text string
}

func (e staticExtractor) ExtractText(string) string {
	return e.text
}

// fakeEmbedder produces a trivial one-dimensional vector per text.
type fakeEmbedder struct {
	err   error
	calls int
}

func (e *fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{float32(len(texts[i]))}
	}
	return out, nil
}

// memoryIndex stores chunks in memory and returns the first entries on
// query, oldest first.
type memoryIndex struct {
	insertErr error
	queryErr  error
	chunks    []types.Chunk
}

func (m *memoryIndex) InsertChunks(_ context.Context, _ string, chunks []types.Chunk, embeddings [][]float32) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.chunks = append(m.chunks, chunks...)
	return nil
}

func (m *memoryIndex) QuerySimilar(_ context.Context, _ []float32, limit int) ([]string, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var out []string
	for i := 0; i < len(m.chunks) && i < limit; i++ {
		out = append(out, m.chunks[i].Content)
	}
	return out, nil
}

func (m *memoryIndex) Reset(context.Context) error {
	m.chunks = nil
	return nil
}

// echoAI answers with the query and the retrieved contexts joined, so
// tests can assert the answer was grounded in indexed content.
type echoAI struct {
	err error
}

func (a echoAI) Answer(_ context.Context, query string, contexts []string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	return "answer to " + query + ": " + strings.Join(contexts, " | "), nil
}
