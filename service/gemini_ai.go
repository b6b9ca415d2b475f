package service

import (
	"context"
	"errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiService is the alternative answer engine backed by Google's
// Generative AI API. Selected with ai_provider: gemini.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(apiKey, modelName string) (*GeminiService, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text("You are an assistant that answers questions about an uploaded document. Base your answers only on the provided document excerpts. If the excerpts do not contain the answer, say so.")},
	}
	return &GeminiService{
		client: client,
		model:  model,
	}, nil
}

func (s *GeminiService) Answer(ctx context.Context, query string, contexts []string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(buildAnswerPrompt(query, contexts)))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}
