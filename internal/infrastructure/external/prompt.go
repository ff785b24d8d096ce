package external

import (
	"fmt"
	"strings"

	"github.com/daxdesai/Closetly/internal/domain/entities"
	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
)

// BuildTryOnPrompt converts the garment list into a natural-language
// instruction for the image model. The attached reference images follow the
// prompt in the same order as the category list it names.
func BuildTryOnPrompt(garments []entities.GarmentInput, gender valueobjects.Gender) string {
	var lines []string

	lines = append(lines, fmt.Sprintf(
		"Create a photorealistic full-body studio photograph of a single %s fashion model standing on a neutral background.",
		genderNoun(gender)))

	categories := make([]string, 0, len(garments))
	for _, g := range garments {
		categories = append(categories, g.Category.String())
	}
	lines = append(lines, fmt.Sprintf(
		"The model wears every garment from the attached reference photos, layered together in this order: %s.",
		strings.Join(categories, ", ")))

	lines = append(lines, "Preserve each garment's color, texture, pattern, and logos exactly as photographed. Do not invent additional clothing.")

	return strings.Join(lines, " ")
}

// BuildConservativeTryOnPrompt is the simplified variant used for the retry
// with fewer reference images; elaborate layering instructions raise the
// failure rate, so it asks for less.
func BuildConservativeTryOnPrompt(gender valueobjects.Gender) string {
	return fmt.Sprintf(
		"A photorealistic photo of a %s model wearing the clothing shown in the attached images.",
		genderNoun(gender))
}

func genderNoun(gender valueobjects.Gender) string {
	switch gender {
	case valueobjects.GenderMale:
		return "male"
	case valueobjects.GenderFemale:
		return "female"
	}
	return "androgynous"
}
