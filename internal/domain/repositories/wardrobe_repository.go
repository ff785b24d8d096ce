package repositories

import (
	"context"

	"github.com/daxdesai/Closetly/internal/domain/entities"
)

// WardrobeRepository owns garment lifecycle: add on upload, toggle active,
// remove with resource release. Close releases every remaining garment.
type WardrobeRepository interface {
	Add(ctx context.Context, garment *entities.Garment) error
	Remove(ctx context.Context, id entities.GarmentID) error
	ToggleActive(ctx context.Context, id entities.GarmentID) (*entities.Garment, error)
	FindByID(ctx context.Context, id entities.GarmentID) (*entities.Garment, error)

	// All returns every garment in insertion order.
	All(ctx context.Context) ([]*entities.Garment, error)

	// Active returns the active garments in insertion order. That order is
	// the layering order for composition.
	Active(ctx context.Context) ([]*entities.Garment, error)

	Close() error
}
