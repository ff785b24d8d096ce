package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/daxdesai/Closetly/internal/domain/entities"
	domainrepos "github.com/daxdesai/Closetly/internal/domain/repositories"
)

// MemoryWardrobeRepository keeps garments in memory, preserving insertion
// order because that order is the composition layering order.
type MemoryWardrobeRepository struct {
	garments map[entities.GarmentID]*entities.Garment
	order    []entities.GarmentID
	mu       sync.RWMutex
}

func NewMemoryWardrobeRepository() domainrepos.WardrobeRepository {
	return &MemoryWardrobeRepository{
		garments: make(map[entities.GarmentID]*entities.Garment),
	}
}

func (r *MemoryWardrobeRepository) Add(ctx context.Context, garment *entities.Garment) error {
	if garment == nil {
		return fmt.Errorf("garment is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.garments[garment.ID()]; exists {
		return fmt.Errorf("garment already exists: %s", garment.ID())
	}
	r.garments[garment.ID()] = garment
	r.order = append(r.order, garment.ID())
	return nil
}

// Remove deletes the garment and releases its image resource.
func (r *MemoryWardrobeRepository) Remove(ctx context.Context, id entities.GarmentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	garment, exists := r.garments[id]
	if !exists {
		return fmt.Errorf("garment not found: %s", id)
	}

	garment.Release()
	delete(r.garments, id)
	for i, gid := range r.order {
		if gid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryWardrobeRepository) ToggleActive(ctx context.Context, id entities.GarmentID) (*entities.Garment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	garment, exists := r.garments[id]
	if !exists {
		return nil, fmt.Errorf("garment not found: %s", id)
	}
	garment.SetActive(!garment.Active())
	return garment, nil
}

func (r *MemoryWardrobeRepository) FindByID(ctx context.Context, id entities.GarmentID) (*entities.Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	garment, exists := r.garments[id]
	if !exists {
		return nil, fmt.Errorf("garment not found: %s", id)
	}
	return garment, nil
}

func (r *MemoryWardrobeRepository) All(ctx context.Context) ([]*entities.Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Garment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.garments[id])
	}
	return out, nil
}

func (r *MemoryWardrobeRepository) Active(ctx context.Context) ([]*entities.Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entities.Garment
	for _, id := range r.order {
		if g := r.garments[id]; g.Active() {
			out = append(out, g)
		}
	}
	return out, nil
}

// Close releases every remaining garment. The repository is unusable
// afterwards.
func (r *MemoryWardrobeRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range r.garments {
		g.Release()
	}
	r.garments = make(map[entities.GarmentID]*entities.Garment)
	r.order = nil
	return nil
}
