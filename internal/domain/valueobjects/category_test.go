package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryKnown(t *testing.T) {
	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryTop, true},
		{CategoryPants, true},
		{CategoryShorts, true},
		{CategoryDress, true},
		{CategoryFootwear, true},
		{CategoryAccessory, true},
		{Category(""), false},
		{Category("hat"), false},
		{Category("Top"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.Known())
		})
	}
}

func TestKnownCategories(t *testing.T) {
	categories := KnownCategories()
	assert.Len(t, categories, 6)

	for _, c := range categories {
		assert.True(t, c.Known(), "category %q must report itself known", c)
	}

	// Display order is fixed: garments before footwear and accessories.
	assert.Equal(t, CategoryTop, categories[0])
	assert.Equal(t, CategoryAccessory, categories[len(categories)-1])
}
