package entities

import (
	"fmt"
	"time"

	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
)

type TryOnRequestID string

// GarmentInput pairs one encoded garment image with its category for a
// single try-on run. The request does not retain any link to the wardrobe
// entity it came from; composition is read-only over its inputs.
type GarmentInput struct {
	Image    *valueobjects.ImageData
	Category valueobjects.Category
}

// TryOnRequest is an ordered list of garment inputs plus the rendering
// gender. Ordering is significant: it is the layering order on the canvas.
type TryOnRequest struct {
	id        TryOnRequestID
	garments  []GarmentInput
	gender    valueobjects.Gender
	createdAt time.Time
}

func NewTryOnRequest(garments []GarmentInput, gender valueobjects.Gender) (*TryOnRequest, error) {
	if len(garments) == 0 {
		return nil, fmt.Errorf("%w: at least one garment is required", ErrEmptyWardrobe)
	}
	for i, g := range garments {
		if g.Image == nil {
			return nil, fmt.Errorf("garment %d has no image", i)
		}
	}

	id := TryOnRequestID(fmt.Sprintf("req_%d", time.Now().UnixNano()))

	return &TryOnRequest{
		id:        id,
		garments:  garments,
		gender:    gender,
		createdAt: time.Now(),
	}, nil
}

func (r *TryOnRequest) ID() TryOnRequestID {
	return r.id
}

// Garments returns the inputs in layering order.
func (r *TryOnRequest) Garments() []GarmentInput {
	return r.garments
}

func (r *TryOnRequest) Gender() valueobjects.Gender {
	return r.gender
}

func (r *TryOnRequest) CreatedAt() time.Time {
	return r.createdAt
}

// Truncated returns a copy of the request limited to the first n garments,
// used by the remote adapter's input cap. The local pipeline never truncates.
func (r *TryOnRequest) Truncated(n int) *TryOnRequest {
	if n <= 0 || n >= len(r.garments) {
		return r
	}
	return &TryOnRequest{
		id:        r.id,
		garments:  r.garments[:n],
		gender:    r.gender,
		createdAt: r.createdAt,
	}
}
