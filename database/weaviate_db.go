package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tranhn/docchat-be/config"
	"github.com/tranhn/docchat-be/types"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"
)

const BATCH_SIZE = 200

var (
	CHATBOT_CLASS        = "Chatbot"
	CHATBOT_CLASS_OBJECT = &models.Class{
		Class: CHATBOT_CLASS,
		Properties: []*models.Property{
			{Name: "content", DataType: []string{"text"}},
			{Name: "source", DataType: []string{"text"}},
			{Name: "chunkIndex", DataType: []string{"int"}},
		},
		// Embeddings are computed client-side and pushed with each object.
		Vectorizer:      "none",
		VectorIndexType: "hnsw",
	}
)

type WeaviateStore struct {
	client *weaviate.Client
}

func NewWeaviateStore(cfg config.WeaviateConfig) (*WeaviateStore, error) {
	var scheme string
	if strings.Contains(cfg.ClusterURL, "https") {
		scheme = "https"
	} else {
		scheme = "http"
	}
	host := strings.TrimPrefix(cfg.ClusterURL, scheme+"://")

	weaviateConfig := weaviate.Config{
		Host:   host,
		Scheme: scheme,
	}
	if cfg.APIKey != "" {
		weaviateConfig.AuthConfig = auth.ApiKey{
			Value: cfg.APIKey,
		}
	}

	client, err := weaviate.NewClient(weaviateConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %v", err)
	}

	// The class is ensured lazily on first insert; missing credentials
	// surface when the store is used, not at startup.
	return &WeaviateStore{client: client}, nil
}

func (s *WeaviateStore) ensureClass(ctx context.Context) error {
	schema, err := s.client.Schema().Getter().Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to get schema: %v", err)
	}

	for _, class := range schema.Classes {
		if class.Class == CHATBOT_CLASS {
			return nil
		}
	}
	if err := s.client.Schema().ClassCreator().WithClass(CHATBOT_CLASS_OBJECT).Do(ctx); err != nil {
		return fmt.Errorf("failed to create %s class: %v", CHATBOT_CLASS, err)
	}
	return nil
}

// Reset drops the Chatbot class and recreates it empty. Uploading a new
// document does not call this; entries from earlier documents accumulate
// until an operator reinitializes the class.
func (s *WeaviateStore) Reset(ctx context.Context) error {
	err := s.client.Schema().ClassDeleter().WithClassName(CHATBOT_CLASS).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete %s class: %v", CHATBOT_CLASS, err)
	}

	err = s.client.Schema().ClassCreator().WithClass(CHATBOT_CLASS_OBJECT).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create %s class: %v", CHATBOT_CLASS, err)
	}
	return nil
}

func (s *WeaviateStore) InsertChunks(ctx context.Context, source string, chunks []types.Chunk, embeddings [][]float32) error {
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("chunk/embedding count mismatch: %d vs %d", len(chunks), len(embeddings))
	}
	if err := s.ensureClass(ctx); err != nil {
		return err
	}

	total := len(chunks)
	for i := 0; i < total; i += BATCH_SIZE {
		end := i + BATCH_SIZE
		if end > total {
			end = total
		}

		batcher := s.client.Batch().ObjectsBatcher()
		for j := i; j < end; j++ {
			batcher = batcher.WithObjects(&models.Object{
				Class: CHATBOT_CLASS,
				Properties: map[string]interface{}{
					"content":    chunks[j].Content,
					"source":     source,
					"chunkIndex": chunks[j].Index,
				},
				Vector: embeddings[j],
			})
		}

		if _, err := batcher.Do(ctx); err != nil {
			return fmt.Errorf("failed to insert batch %d-%d: %v", i, end, err)
		}
		log.Printf("Indexed chunks %d-%d of %d", i, end, total)
	}

	return nil
}

func (s *WeaviateStore) QuerySimilar(ctx context.Context, embedding []float32, limit int) ([]string, error) {
	fields := []graphql.Field{
		{Name: "content"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "distance"}}},
	}

	nearVector := s.client.GraphQL().NearVectorArgBuilder().
		WithVector(embedding)

	result, err := s.client.GraphQL().Get().
		WithClassName(CHATBOT_CLASS).
		WithFields(fields...).
		WithNearVector(nearVector).
		WithLimit(limit).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	if result.Errors != nil {
		return nil, fmt.Errorf("search failed: %v", result.Errors[0].Message)
	}

	var contents []string
	if data, ok := result.Data["Get"].(map[string]interface{})[CHATBOT_CLASS].([]interface{}); ok {
		for _, item := range data {
			if obj, ok := item.(map[string]interface{}); ok {
				if content, ok := obj["content"].(string); ok {
					contents = append(contents, content)
				}
			}
		}
	}

	return contents, nil
}
