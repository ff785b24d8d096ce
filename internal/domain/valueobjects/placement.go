package valueobjects

// PlacementBox describes where a garment renders on the model canvas, as
// fractions of the canvas dimensions, plus an optional rotation in degrees
// about the box center.
type PlacementBox struct {
	Left     float64
	Top      float64
	Width    float64
	Height   float64
	Rotation float64
}

// MinPlacementArea rejects degenerate boxes coming from untrusted sources
// such as an AI-estimated placement.
const MinPlacementArea = 0.02

var placementTable = map[Category]PlacementBox{
	CategoryDress:     {Left: 0.225, Top: 0.08, Width: 0.55, Height: 0.82},
	CategoryTop:       {Left: 0.25, Top: 0.18, Width: 0.5, Height: 0.4},
	CategoryPants:     {Left: 0.25, Top: 0.35, Width: 0.5, Height: 0.45},
	CategoryShorts:    {Left: 0.25, Top: 0.35, Width: 0.5, Height: 0.25},
	CategoryFootwear:  {Left: 0.35, Top: 0.78, Width: 0.3, Height: 0.18},
	CategoryAccessory: {Left: 0.4, Top: 0.1, Width: 0.2, Height: 0.2},
}

var defaultPlacement = PlacementBox{Left: 0.25, Top: 0.2, Width: 0.5, Height: 0.5}

// PlacementFor maps a category to its placement box. Unrecognized categories
// get the default box; there is no failure mode.
func PlacementFor(category Category) PlacementBox {
	if box, ok := placementTable[category]; ok {
		return box
	}
	return defaultPlacement
}

// Valid reports whether the box satisfies the placement invariants: all
// fractions in [0,1], positive width and height, area at least
// MinPlacementArea.
func (b PlacementBox) Valid() bool {
	for _, f := range []float64{b.Left, b.Top, b.Width, b.Height} {
		if f < 0 || f > 1 {
			return false
		}
	}
	if b.Width <= 0 || b.Height <= 0 {
		return false
	}
	return b.Width*b.Height >= MinPlacementArea
}

// SanitizePlacement vets an externally-estimated box. An invalid box is
// replaced by the table entry for the category, never surfaced as an error.
func SanitizePlacement(estimated PlacementBox, category Category) PlacementBox {
	if estimated.Valid() {
		return estimated
	}
	return PlacementFor(category)
}
