package usecases

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/daxdesai/Closetly/internal/domain/entities"
	"github.com/daxdesai/Closetly/internal/domain/services"
	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
)

type TryOnUseCase struct {
	tryOnService *services.TryOnService
	logger       zerolog.Logger
}

func NewTryOnUseCase(tryOnService *services.TryOnService, logger zerolog.Logger) *TryOnUseCase {
	return &TryOnUseCase{
		tryOnService: tryOnService,
		logger:       logger.With().Str("component", "tryon_usecase").Logger(),
	}
}

type GarmentUpload struct {
	Name     string
	Category string
	Data     []byte
}

type TryOnInput struct {
	Garments []GarmentUpload
	Gender   string
}

type TryOnOutput struct {
	RequestID entities.TryOnRequestID
	Image     []byte
	MimeType  string
	Source    entities.ResultSource
}

// Execute validates and decodes the uploads, then runs the generation
// strategy chain. Unparsable uploads are dropped with a warning; the call
// fails only when nothing survives.
func (uc *TryOnUseCase) Execute(ctx context.Context, input TryOnInput) (*TryOnOutput, error) {
	if len(input.Garments) == 0 {
		return nil, entities.ErrEmptyWardrobe
	}

	inputs := uc.decodeUploads(input.Garments)
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: all %d uploads were unreadable", entities.ErrNoUsableGarments, len(input.Garments))
	}

	request, err := entities.NewTryOnRequest(inputs, valueobjects.ParseGender(input.Gender))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	result, err := uc.tryOnService.Process(ctx, request)
	if err != nil {
		return nil, err
	}

	return &TryOnOutput{
		RequestID: result.RequestID(),
		Image:     result.Image().Data(),
		MimeType:  result.Image().MimeType(),
		Source:    result.Source(),
	}, nil
}

// decodeUploads validates every upload concurrently and joins the results
// in input order, dropping the failures. Input order is layering order, so
// the join must not reorder.
func (uc *TryOnUseCase) decodeUploads(uploads []GarmentUpload) []entities.GarmentInput {
	decoded := make([]*valueobjects.ImageData, len(uploads))

	var wg sync.WaitGroup
	for i, u := range uploads {
		wg.Add(1)
		go func(i int, u GarmentUpload) {
			defer wg.Done()
			img, err := valueobjects.NewImageData(u.Data)
			if err != nil {
				uc.logger.Warn().
					Err(err).
					Str("name", u.Name).
					Str("category", u.Category).
					Msg("dropping unreadable garment upload")
				return
			}
			decoded[i] = img
		}(i, u)
	}
	wg.Wait()

	inputs := make([]entities.GarmentInput, 0, len(uploads))
	for i, img := range decoded {
		if img == nil {
			continue
		}
		inputs = append(inputs, entities.GarmentInput{
			Image:    img,
			Category: valueobjects.Category(uploads[i].Category),
		})
	}
	return inputs
}
