package external

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/daxdesai/Closetly/internal/domain/entities"
	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
)

func promptInputs(t *testing.T, categories ...valueobjects.Category) []entities.GarmentInput {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	img, err := valueobjects.NewImageData(buf.Bytes())
	if err != nil {
		t.Fatalf("failed to create image data: %v", err)
	}

	inputs := make([]entities.GarmentInput, len(categories))
	for i, c := range categories {
		inputs[i] = entities.GarmentInput{Image: img, Category: c}
	}
	return inputs
}

func TestBuildTryOnPrompt(t *testing.T) {
	prompt := BuildTryOnPrompt(
		promptInputs(t, valueobjects.CategoryTop, valueobjects.CategoryPants, valueobjects.CategoryFootwear),
		valueobjects.GenderFemale,
	)

	if !strings.Contains(prompt, "female") {
		t.Errorf("prompt missing gender: %q", prompt)
	}
	// Categories appear in layering order.
	if !strings.Contains(prompt, "top, pants, footwear") {
		t.Errorf("prompt missing ordered categories: %q", prompt)
	}
	if !strings.Contains(prompt, "photorealistic") {
		t.Errorf("prompt missing photorealism instruction: %q", prompt)
	}
}

func TestBuildTryOnPromptNeutralGender(t *testing.T) {
	prompt := BuildTryOnPrompt(promptInputs(t, valueobjects.CategoryDress), valueobjects.GenderNeutral)
	if !strings.Contains(prompt, "androgynous") {
		t.Errorf("neutral gender should render as androgynous: %q", prompt)
	}
}

func TestBuildConservativeTryOnPrompt(t *testing.T) {
	full := BuildTryOnPrompt(promptInputs(t, valueobjects.CategoryTop), valueobjects.GenderMale)
	conservative := BuildConservativeTryOnPrompt(valueobjects.GenderMale)

	if len(conservative) >= len(full) {
		t.Errorf("conservative prompt should be simpler than the full prompt")
	}
	if !strings.Contains(conservative, "male") {
		t.Errorf("conservative prompt missing gender: %q", conservative)
	}
}
