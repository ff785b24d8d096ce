package entities

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
)

type GarmentID string

// Garment is a user-supplied clothing or accessory image tagged with a
// category. It owns its image reference until Release is called; the
// wardrobe releases it on removal or teardown.
type Garment struct {
	id        GarmentID
	name      string
	category  valueobjects.Category
	image     *valueobjects.ImageData
	active    bool
	released  bool
	createdAt time.Time
}

func NewGarment(name string, category valueobjects.Category, image *valueobjects.ImageData) (*Garment, error) {
	if name == "" {
		return nil, fmt.Errorf("garment name is required")
	}
	if image == nil {
		return nil, fmt.Errorf("garment image is required")
	}

	return &Garment{
		id:        GarmentID("grm_" + ksuid.New().String()),
		name:      name,
		category:  category,
		image:     image,
		active:    true,
		createdAt: time.Now(),
	}, nil
}

func (g *Garment) ID() GarmentID {
	return g.id
}

func (g *Garment) Name() string {
	return g.name
}

func (g *Garment) Category() valueobjects.Category {
	return g.category
}

// Image returns nil after Release.
func (g *Garment) Image() *valueobjects.ImageData {
	return g.image
}

func (g *Garment) Active() bool {
	return g.active
}

func (g *Garment) SetActive(active bool) {
	g.active = active
}

func (g *Garment) CreatedAt() time.Time {
	return g.createdAt
}

// Release drops the image reference. Idempotent. Holding a removed garment's
// image past this point is a leak.
func (g *Garment) Release() {
	g.image = nil
	g.released = true
}

func (g *Garment) Released() bool {
	return g.released
}
