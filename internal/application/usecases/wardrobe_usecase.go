package usecases

import (
	"context"
	"fmt"

	"github.com/daxdesai/Closetly/internal/domain/entities"
	"github.com/daxdesai/Closetly/internal/domain/repositories"
	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
)

// WardrobeUseCase exposes the garment collection operations: upload,
// removal, active toggling, and the active list a try-on run starts from.
type WardrobeUseCase struct {
	wardrobe repositories.WardrobeRepository
}

func NewWardrobeUseCase(wardrobe repositories.WardrobeRepository) *WardrobeUseCase {
	return &WardrobeUseCase{wardrobe: wardrobe}
}

type GarmentSummary struct {
	ID       entities.GarmentID `json:"id"`
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Active   bool               `json:"active"`
}

func (uc *WardrobeUseCase) Add(ctx context.Context, upload GarmentUpload) (*GarmentSummary, error) {
	image, err := valueobjects.NewImageData(upload.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid garment image: %w", err)
	}

	garment, err := entities.NewGarment(upload.Name, valueobjects.Category(upload.Category), image)
	if err != nil {
		return nil, err
	}
	if err := uc.wardrobe.Add(ctx, garment); err != nil {
		return nil, err
	}
	return summarize(garment), nil
}

func (uc *WardrobeUseCase) Remove(ctx context.Context, id entities.GarmentID) error {
	return uc.wardrobe.Remove(ctx, id)
}

func (uc *WardrobeUseCase) ToggleActive(ctx context.Context, id entities.GarmentID) (*GarmentSummary, error) {
	garment, err := uc.wardrobe.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}
	return summarize(garment), nil
}

func (uc *WardrobeUseCase) List(ctx context.Context) ([]GarmentSummary, error) {
	garments, err := uc.wardrobe.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GarmentSummary, 0, len(garments))
	for _, g := range garments {
		out = append(out, *summarize(g))
	}
	return out, nil
}

// ActiveUploads snapshots the active garments as try-on inputs, in
// insertion order. The snapshot copies nothing; composition is read-only
// over the images.
func (uc *WardrobeUseCase) ActiveUploads(ctx context.Context) ([]GarmentUpload, error) {
	garments, err := uc.wardrobe.Active(ctx)
	if err != nil {
		return nil, err
	}
	uploads := make([]GarmentUpload, 0, len(garments))
	for _, g := range garments {
		uploads = append(uploads, GarmentUpload{
			Name:     g.Name(),
			Category: g.Category().String(),
			Data:     g.Image().Data(),
		})
	}
	return uploads, nil
}

func summarize(g *entities.Garment) *GarmentSummary {
	return &GarmentSummary{
		ID:       g.ID(),
		Name:     g.Name(),
		Category: g.Category().String(),
		Active:   g.Active(),
	}
}
