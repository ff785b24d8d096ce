package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlacementFor(t *testing.T) {
	tests := []struct {
		category Category
		want     PlacementBox
	}{
		{CategoryDress, PlacementBox{Left: 0.225, Top: 0.08, Width: 0.55, Height: 0.82}},
		{CategoryTop, PlacementBox{Left: 0.25, Top: 0.18, Width: 0.5, Height: 0.4}},
		{CategoryPants, PlacementBox{Left: 0.25, Top: 0.35, Width: 0.5, Height: 0.45}},
		{CategoryShorts, PlacementBox{Left: 0.25, Top: 0.35, Width: 0.5, Height: 0.25}},
		{CategoryFootwear, PlacementBox{Left: 0.35, Top: 0.78, Width: 0.3, Height: 0.18}},
		{CategoryAccessory, PlacementBox{Left: 0.4, Top: 0.1, Width: 0.2, Height: 0.2}},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			got := PlacementFor(tt.category)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid(), "placement table entry must satisfy its own invariants")

			// Pure function: repeated lookups are stable.
			assert.Equal(t, got, PlacementFor(tt.category))
		})
	}
}

func TestPlacementForUnknownCategory(t *testing.T) {
	got := PlacementFor(Category("hat"))
	assert.Equal(t, PlacementBox{Left: 0.25, Top: 0.2, Width: 0.5, Height: 0.5}, got)
	assert.True(t, got.Valid())
}

func TestPlacementBoxValid(t *testing.T) {
	tests := []struct {
		name string
		box  PlacementBox
		want bool
	}{
		{"table default", PlacementBox{Left: 0.25, Top: 0.2, Width: 0.5, Height: 0.5}, true},
		{"zero width", PlacementBox{Left: 0.1, Top: 0.1, Width: 0, Height: 0.5}, false},
		{"zero height", PlacementBox{Left: 0.1, Top: 0.1, Width: 0.5, Height: 0}, false},
		{"negative left", PlacementBox{Left: -0.1, Top: 0.1, Width: 0.5, Height: 0.5}, false},
		{"left beyond canvas", PlacementBox{Left: 1.2, Top: 0.1, Width: 0.5, Height: 0.5}, false},
		{"area below threshold", PlacementBox{Left: 0.1, Top: 0.1, Width: 0.1, Height: 0.1}, false},
		{"area exactly at threshold", PlacementBox{Left: 0.1, Top: 0.1, Width: 0.2, Height: 0.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.box.Valid())
		})
	}
}

func TestSanitizePlacement(t *testing.T) {
	valid := PlacementBox{Left: 0.3, Top: 0.3, Width: 0.4, Height: 0.4, Rotation: 12}
	assert.Equal(t, valid, SanitizePlacement(valid, CategoryTop))

	// An invalid estimated box falls back to the category's table entry,
	// never an error.
	degenerate := PlacementBox{Left: 0.5, Top: 0.5, Width: 0.01, Height: 0.01}
	assert.Equal(t, PlacementFor(CategoryTop), SanitizePlacement(degenerate, CategoryTop))
	assert.Equal(t, PlacementFor(Category("??")), SanitizePlacement(degenerate, Category("??")))
}
