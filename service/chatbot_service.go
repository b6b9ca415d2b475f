package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/tranhn/docchat-be/database"
	"github.com/tranhn/docchat-be/types"
)

// Session lifecycle. There is no transition back to uninitialized; a new
// upload builds a fresh ChatbotService that replaces the old one.
type SessionState string

const (
	StateUninitialized SessionState = "uninitialized"
	StateProcessing    SessionState = "processing"
	StateReady         SessionState = "ready"
	StateFailed        SessionState = "failed"
)

// Fixed user-visible strings. Internal failures degrade to these instead
// of propagating; the HTTP layer never sees an error from Ask.
const (
	MsgNotProcessed  = "Sorry, the document hasn't been processed correctly. Unable to answer queries."
	MsgSummaryFailed = "Failed to process document. No summary available."

	summaryQuery = "Please provide a brief summary of the document."
)

var ErrEmptyDocument = errors.New("no text could be extracted from document")

// TextExtractor converts a PDF on disk into plain text. Failures are
// reported as an empty string.
type TextExtractor interface {
	ExtractText(filePath string) string
}

// Chunker splits extracted text into ordered, token-bounded chunks.
type Chunker interface {
	ChunkText(text string) []types.Chunk
}

// ChatbotService owns one document's lifecycle: extraction, chunking,
// indexing, the initial summary, and subsequent queries against the built
// index.
type ChatbotService struct {
	id             string
	extractor      TextExtractor
	chunker        Chunker
	embedder       EmbeddingService
	index          database.VectorIndex
	ai             AIService
	retrievalLimit int

	mu      sync.RWMutex
	state   SessionState
	summary string
	source  string
}

func NewChatbotService(
	extractor TextExtractor,
	chunker Chunker,
	embedder EmbeddingService,
	index database.VectorIndex,
	ai AIService,
	retrievalLimit int,
) *ChatbotService {
	if retrievalLimit <= 0 {
		retrievalLimit = 5
	}
	return &ChatbotService{
		id:             uuid.New().String(),
		extractor:      extractor,
		chunker:        chunker,
		embedder:       embedder,
		index:          index,
		ai:             ai,
		retrievalLimit: retrievalLimit,
		state:          StateUninitialized,
	}
}

// ID identifies the session in logs.
func (s *ChatbotService) ID() string {
	return s.id
}

func (s *ChatbotService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *ChatbotService) Summary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// Initialize runs the full ingestion pipeline synchronously, blocking the
// caller until the session is READY or FAILED. Ingestion failures are
// logged and recorded; they never propagate.
func (s *ChatbotService) Initialize(ctx context.Context, filePath string) {
	s.mu.Lock()
	s.state = StateProcessing
	s.source = filePath
	s.mu.Unlock()

	if err := s.ingest(ctx, filePath); err != nil {
		log.Printf("Error processing document (session %s): %v", s.id, err)
		s.mu.Lock()
		s.state = StateFailed
		s.summary = MsgSummaryFailed
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.state = StateReady
	s.mu.Unlock()

	summary := s.Ask(ctx, summaryQuery)
	s.mu.Lock()
	s.summary = summary
	s.mu.Unlock()
}

func (s *ChatbotService) ingest(ctx context.Context, filePath string) error {
	text := s.extractor.ExtractText(filePath)
	if text == "" {
		return ErrEmptyDocument
	}

	chunks := s.chunker.ChunkText(text)
	if len(chunks) == 0 {
		return ErrEmptyDocument
	}
	log.Printf("Split document into %d chunks (session %s)", len(chunks), s.id)

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}
	embeddings, err := s.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunks: %w", err)
	}

	if err := s.index.InsertChunks(ctx, filePath, chunks, embeddings); err != nil {
		return fmt.Errorf("failed to index chunks: %w", err)
	}

	return nil
}

// Ask answers a query against the built index. It always returns a string:
// sessions that never reached READY get the fixed failure message, and
// retrieval or completion errors are embedded in the response text.
func (s *ChatbotService) Ask(ctx context.Context, query string) string {
	if s.State() != StateReady {
		return MsgNotProcessed
	}

	queryEmbeddings, err := s.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return fmt.Sprintf("Error processing query: %v", err)
	}

	contexts, err := s.index.QuerySimilar(ctx, queryEmbeddings[0], s.retrievalLimit)
	if err != nil {
		return fmt.Sprintf("Error processing query: %v", err)
	}

	answer, err := s.ai.Answer(ctx, query, contexts)
	if err != nil {
		return fmt.Sprintf("Error processing query: %v", err)
	}
	return answer
}
