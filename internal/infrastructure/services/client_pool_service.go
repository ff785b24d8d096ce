package services

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"github.com/daxdesai/Closetly/internal/domain/repositories"
)

type genAIClientPool struct {
	apiKey string
	client *genai.Client
	mutex  sync.RWMutex
}

// NewGenAIClientPool creates a pool that builds the genai client on first
// request. A pool with an empty key always errors; callers are expected to
// check the credential before reaching for a client.
func NewGenAIClientPool(apiKey string) repositories.GenAIClientPool {
	return &genAIClientPool{
		apiKey: apiKey,
	}
}

func (p *genAIClientPool) GetClient(ctx context.Context) (*genai.Client, error) {
	p.mutex.RLock()
	if p.client != nil {
		defer p.mutex.RUnlock()
		return p.client, nil
	}
	p.mutex.RUnlock()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	// Double-checked locking.
	if p.client != nil {
		return p.client, nil
	}

	if p.apiKey == "" {
		return nil, fmt.Errorf("no API key configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: p.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	p.client = client
	return p.client, nil
}

func (p *genAIClientPool) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// The genai client holds no resources needing explicit cleanup.
	p.client = nil
	return nil
}
