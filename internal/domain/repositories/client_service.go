package repositories

import (
	"context"

	"google.golang.org/genai"
)

// GenAIClientPool hands out a shared genai client, created lazily on first
// use so that a server booted without a credential never dials out.
type GenAIClientPool interface {
	GetClient(ctx context.Context) (*genai.Client, error)
	Close() error
}
