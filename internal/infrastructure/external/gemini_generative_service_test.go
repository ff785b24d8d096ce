package external

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/daxdesai/Closetly/internal/domain/entities"
	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
	"github.com/daxdesai/Closetly/internal/infrastructure/services"
)

func TestGenerateTryOnUnconfigured(t *testing.T) {
	svc := NewGeminiGenerativeService(services.NewGenAIClientPool(""), "some-model", "", zerolog.Nop())

	if svc.Configured() {
		t.Fatalf("service with empty key must report unconfigured")
	}

	inputs := promptInputs(t, valueobjects.CategoryTop)
	req, err := entities.NewTryOnRequest(inputs, valueobjects.GenderMale)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	result, ok := svc.GenerateTryOn(context.Background(), req, false)
	if ok || result != nil {
		t.Errorf("unconfigured service must yield no result, got ok=%v result=%v", ok, result)
	}
}

func TestExtractImage(t *testing.T) {
	svc := &GeminiGenerativeService{logger: zerolog.Nop()}

	t.Run("nil response", func(t *testing.T) {
		if svc.extractImage(nil) != nil {
			t.Errorf("nil response must yield nil")
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		if svc.extractImage(&genai.GenerateContentResponse{}) != nil {
			t.Errorf("empty response must yield nil")
		}
	})

	t.Run("text only", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: genai.NewContentFromParts([]*genai.Part{
					genai.NewPartFromText("cannot fulfil this request"),
				}, genai.RoleModel),
			}},
		}
		if svc.extractImage(resp) != nil {
			t.Errorf("text-only response must yield nil")
		}
	})

	t.Run("malformed image bytes discarded", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: genai.NewContentFromParts([]*genai.Part{
					{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("not a png")}},
				}, genai.RoleModel),
			}},
		}
		if svc.extractImage(resp) != nil {
			t.Errorf("malformed image must be discarded")
		}
	})

	t.Run("valid image extracted", func(t *testing.T) {
		img := promptInputs(t, valueobjects.CategoryTop)[0].Image
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: genai.NewContentFromParts([]*genai.Part{
					genai.NewPartFromText("here you go"),
					{InlineData: &genai.Blob{MIMEType: "image/png", Data: img.Data()}},
				}, genai.RoleModel),
			}},
		}
		got := svc.extractImage(resp)
		if got == nil {
			t.Fatalf("expected an image")
		}
		if got.Format() != valueobjects.PNG {
			t.Errorf("Format() = %v, want PNG", got.Format())
		}
	})
}
