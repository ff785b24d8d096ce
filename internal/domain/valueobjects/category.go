package valueobjects

// Category groups garments for placement and UI grouping.
type Category string

const (
	CategoryTop       Category = "top"
	CategoryPants     Category = "pants"
	CategoryShorts    Category = "shorts"
	CategoryDress     Category = "dress"
	CategoryFootwear  Category = "footwear"
	CategoryAccessory Category = "accessory"
)

// Known reports whether c is one of the fixed category set. Unknown
// categories are still usable; they fall through to the default placement.
func (c Category) Known() bool {
	switch c {
	case CategoryTop, CategoryPants, CategoryShorts, CategoryDress, CategoryFootwear, CategoryAccessory:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// KnownCategories returns the fixed category set in display order.
func KnownCategories() []Category {
	return []Category{
		CategoryTop,
		CategoryPants,
		CategoryShorts,
		CategoryDress,
		CategoryFootwear,
		CategoryAccessory,
	}
}
