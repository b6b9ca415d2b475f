package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var systemMessageDocumentAssistant = openai.ChatCompletionMessage{
	Role:    openai.ChatMessageRoleSystem,
	Content: "You are an assistant that answers questions about an uploaded document. Base your answers only on the provided document excerpts. If the excerpts do not contain the answer, say so.",
}

type OpenAIService struct {
	client *openai.Client
	model  string
}

func NewOpenAIService(baseURL, apiKey, model string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIService{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (s *OpenAIService) Answer(ctx context.Context, query string, contexts []string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				systemMessageDocumentAssistant,
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildAnswerPrompt(query, contexts),
				},
			},
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}

	return resp.Choices[0].Message.Content, nil
}

func buildAnswerPrompt(query string, contexts []string) string {
	var sb strings.Builder
	sb.WriteString("Document excerpts:\n\n")
	for i, c := range contexts {
		sb.WriteString(fmt.Sprintf("[%d] %s\n\n", i+1, c))
	}
	sb.WriteString("Question: ")
	sb.WriteString(query)
	return sb.String()
}
