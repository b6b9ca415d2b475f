package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tranhn/docchat-be/service"
	"github.com/tranhn/docchat-be/types"
)

// Test doubles for the session pipeline. The extractor ignores the saved
// file and returns canned text, so no real PDF is needed.

type staticExtractor struct {
	text string
}

func (e staticExtractor) ExtractText(string) string {
	return e.text
}

type fakeEmbedder struct{}

func (fakeEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1}
	}
	return out, nil
}

type memoryIndex struct {
	chunks []types.Chunk
}

func (m *memoryIndex) InsertChunks(_ context.Context, _ string, chunks []types.Chunk, _ [][]float32) error {
	m.chunks = append(m.chunks, chunks...)
	return nil
}

func (m *memoryIndex) QuerySimilar(_ context.Context, _ []float32, limit int) ([]string, error) {
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

type echoAI struct{}

func (echoAI) Answer(_ context.Context, query string, contexts []string) (string, error) {
	return "answer to " + query + ": " + strings.Join(contexts, " | "), nil
}

// newTestSessions returns a SessionManager whose sessions ingest the given
// document texts, one per upload, in order.
func newTestSessions(t *testing.T, documentTexts ...string) *service.SessionManager {
	t.Helper()
	n := 0
	return service.NewSessionManager(func() *service.ChatbotService {
		require.Less(t, n, len(documentTexts), "more sessions started than document texts provided")
		chunker := service.NewPDFService(types.ChunkerConfig{ChunkSize: 16, Overlap: 2})
		s := service.NewChatbotService(staticExtractor{text: documentTexts[n]}, chunker, fakeEmbedder{}, &memoryIndex{}, echoAI{}, 5)
		n++
		return s
	})
}

func newTestFileService(t *testing.T) *service.FileService {
	t.Helper()
	fs, err := service.NewFileService(t.TempDir())
	require.NoError(t, err)
	return fs
}

// multipartUpload builds a multipart request with a single file field.
func multipartUpload(t *testing.T, fieldName, filename, content string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
