package external

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/daxdesai/Closetly/internal/domain/entities"
	"github.com/daxdesai/Closetly/internal/domain/repositories"
	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
)

// GeminiGenerativeService asks a Gemini image model for a photorealistic
// try-on composite. Every failure mode collapses to ok=false at this
// boundary; nothing remote ever fails the caller's request.
type GeminiGenerativeService struct {
	pool   repositories.GenAIClientPool
	model  string
	apiKey string
	logger zerolog.Logger
}

func NewGeminiGenerativeService(pool repositories.GenAIClientPool, model, apiKey string, logger zerolog.Logger) repositories.GenerativeService {
	return &GeminiGenerativeService{
		pool:   pool,
		model:  model,
		apiKey: apiKey,
		logger: logger.With().Str("component", "gemini").Logger(),
	}
}

func (s *GeminiGenerativeService) Configured() bool {
	return s.apiKey != ""
}

func (s *GeminiGenerativeService) GenerateTryOn(ctx context.Context, request *entities.TryOnRequest, conservative bool) (*entities.TryOnResult, bool) {
	if !s.Configured() || request == nil {
		return nil, false
	}

	client, err := s.pool.GetClient(ctx)
	if err != nil {
		s.logger.Info().Err(err).Msg("genai client unavailable")
		return nil, false
	}

	garments := request.Garments()

	prompt := BuildTryOnPrompt(garments, request.Gender())
	if conservative {
		prompt = BuildConservativeTryOnPrompt(request.Gender())
	}

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}
	for _, g := range garments {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: g.Image.MimeType(),
				Data:     g.Image.Data(),
			},
		})
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{})
	if err != nil {
		s.logger.Info().
			Err(err).
			Bool("conservative", conservative).
			Int("garments", len(garments)).
			Msg("remote generation failed")
		return nil, false
	}

	image := s.extractImage(resp)
	if image == nil {
		s.logger.Info().Bool("conservative", conservative).Msg("remote generation returned no image")
		return nil, false
	}

	s.logger.Info().
		Str("model", s.model).
		Int("garments", len(garments)).
		Int("bytes", len(image.Data())).
		Msg("remote generation succeeded")

	return entities.NewTryOnResult(request.ID(), image, entities.SourceRemote), true
}

// extractImage pulls the first inline image out of the response. Text parts
// and malformed payloads are ignored.
func (s *GeminiGenerativeService) extractImage(resp *genai.GenerateContentResponse) *valueobjects.ImageData {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		image, err := valueobjects.NewImageData(part.InlineData.Data)
		if err != nil {
			s.logger.Warn().Err(err).Msg("discarding malformed remote image")
			continue
		}
		return image
	}
	return nil
}

func (s *GeminiGenerativeService) Close() error {
	return s.pool.Close()
}
