package service

import (
	"context"
)

// AIService composes a natural-language answer to a query grounded in the
// retrieved context chunks.
type AIService interface {
	Answer(ctx context.Context, query string, contexts []string) (string, error)
}
