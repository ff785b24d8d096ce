package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/daxdesai/Closetly/internal/domain/entities"
	"github.com/daxdesai/Closetly/internal/domain/repositories"
)

// The external generator degrades badly past a handful of reference images,
// so the first attempt caps inputs and the retry caps them harder.
const (
	maxRemoteGarments          = 5
	conservativeRemoteGarments = 2
)

// generationStrategy is one rung of the fallback ladder. ok=false means
// "nothing usable, try the next rung"; a non-nil error is fatal for the
// whole call and only the local compositor produces one.
type generationStrategy struct {
	name string
	run  func(ctx context.Context, request *entities.TryOnRequest) (*entities.TryOnResult, bool, error)
}

// TryOnService runs a try-on request through an ordered list of generation
// strategies: remote, remote-conservative, then the local compositor.
type TryOnService struct {
	strategies []generationStrategy
	logger     zerolog.Logger
}

// NewTryOnService wires the strategy chain. When remote is nil or carries no
// credential, the chain is just the compositor and no network attempt is
// ever made.
func NewTryOnService(remote repositories.GenerativeService, compositor repositories.Compositor, logger zerolog.Logger) *TryOnService {
	s := &TryOnService{
		logger: logger.With().Str("component", "tryon_service").Logger(),
	}

	if remote != nil && remote.Configured() {
		s.strategies = append(s.strategies,
			generationStrategy{
				name: "remote",
				run: func(ctx context.Context, request *entities.TryOnRequest) (*entities.TryOnResult, bool, error) {
					result, ok := remote.GenerateTryOn(ctx, request.Truncated(maxRemoteGarments), false)
					return result, ok, nil
				},
			},
			generationStrategy{
				name: "remote-conservative",
				run: func(ctx context.Context, request *entities.TryOnRequest) (*entities.TryOnResult, bool, error) {
					result, ok := remote.GenerateTryOn(ctx, request.Truncated(conservativeRemoteGarments), true)
					return result, ok, nil
				},
			},
		)
	}

	s.strategies = append(s.strategies, generationStrategy{
		name: "compositor",
		run: func(ctx context.Context, request *entities.TryOnRequest) (*entities.TryOnResult, bool, error) {
			result, err := compositor.Compose(ctx, request)
			if err != nil {
				return nil, false, err
			}
			return result, true, nil
		},
	})

	return s
}

// Process tries each strategy in order and returns the first usable result.
// Remote strategies never fail the call; they only yield to the next rung.
func (s *TryOnService) Process(ctx context.Context, request *entities.TryOnRequest) (*entities.TryOnResult, error) {
	if request == nil {
		return nil, fmt.Errorf("request is required")
	}

	for i, strategy := range s.strategies {
		result, ok, err := strategy.run(ctx, request)
		if err != nil {
			return nil, fmt.Errorf("%s strategy failed: %w", strategy.name, err)
		}
		if ok && result != nil && result.HasImage() {
			if i > 0 {
				s.logger.Info().Str("strategy", strategy.name).Msg("earlier strategies yielded, result from fallback")
			}
			return result, nil
		}
		s.logger.Info().Str("strategy", strategy.name).Msg("strategy produced no usable result, falling back")
	}

	return nil, fmt.Errorf("all generation strategies exhausted")
}
