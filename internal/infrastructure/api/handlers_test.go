package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	appservices "github.com/daxdesai/Closetly/internal/application/services"
	"github.com/daxdesai/Closetly/internal/application/usecases"
	domainservices "github.com/daxdesai/Closetly/internal/domain/services"
	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
	"github.com/daxdesai/Closetly/internal/infrastructure/rendering"
	"github.com/daxdesai/Closetly/internal/infrastructure/repositories"
	"github.com/daxdesai/Closetly/model"
)

// newTestRouter wires the full local stack with no remote credential, so
// every try-on runs through the compositor.
func newTestRouter() *mux.Router {
	logger := zerolog.Nop()
	compositor := rendering.NewCompositor(logger)
	tryOnService := domainservices.NewTryOnService(nil, compositor, logger)
	tryOnUseCase := usecases.NewTryOnUseCase(tryOnService, logger)
	wardrobeUseCase := usecases.NewWardrobeUseCase(repositories.NewMemoryWardrobeRepository())

	handler := NewTryOnHandler(tryOnUseCase, wardrobeUseCase, appservices.NewParameterService(), logger)
	r := mux.NewRouter()
	handler.Register(r)
	return r
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 160, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func multipartTryOn(t *testing.T, files map[string][]byte, gender string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, data := range files {
		fw, err := w.CreateFormFile("garment", name)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
		if err := w.WriteField("category", "top"); err != nil {
			t.Fatalf("failed to write category: %v", err)
		}
	}
	if gender != "" {
		if err := w.WriteField("gender", gender); err != nil {
			t.Fatalf("failed to write gender: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestHandleTryOnLocalFallback(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartTryOn(t, map[string][]byte{"shirt.png": pngBytes(t)}, "female")
	req := httptest.NewRequest("POST", "/tryon", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp model.TryOnResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Source != "compositor" {
		t.Errorf("Source = %q, want compositor (no credential configured)", resp.Source)
	}

	raw, err := base64.StdEncoding.DecodeString(resp.BytesBase64Encoded)
	if err != nil {
		t.Fatalf("response image is not base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("response image is not PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != rendering.ModelWidth || b.Dy() != rendering.ModelHeight {
		t.Errorf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), rendering.ModelWidth, rendering.ModelHeight)
	}
}

func TestHandleTryOnRejectsNonImage(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartTryOn(t, map[string][]byte{"notes.txt": []byte("just text, no pixels")}, "male")
	req := httptest.NewRequest("POST", "/tryon", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleTryOnEmptyWardrobe(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartTryOn(t, nil, "female")
	req := httptest.NewRequest("POST", "/tryon", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestGarmentLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter()

	// Upload.
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("garment", "dress.png")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write(pngBytes(t)); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	_ = w.WriteField("category", "dress")
	_ = w.WriteField("name", "red dress")
	_ = w.Close()

	req := httptest.NewRequest("POST", "/garments", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var summary usecases.GarmentSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("invalid upload response: %v", err)
	}
	if !summary.Active {
		t.Errorf("uploaded garment should start active")
	}

	// Toggle.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/garments/"+string(summary.ID)+"/toggle", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", rec.Code)
	}

	// Remove.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/garments/"+string(summary.ID), nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	// Gone.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/garments/"+string(summary.ID), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestHandleIndexListsCategories(t *testing.T) {
	router := newTestRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	page := rec.Body.String()
	for _, c := range valueobjects.KnownCategories() {
		if !strings.Contains(page, `<option value="`+c.String()+`"`) {
			t.Errorf("index page is missing the %q option", c)
		}
	}
	if strings.Contains(page, "%!") {
		t.Errorf("index page contains a formatting artifact")
	}
}

func TestHandleAddGarmentUnknownCategory(t *testing.T) {
	router := newTestRouter()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("garment", "cap.png")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write(pngBytes(t)); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	_ = w.WriteField("category", "hat")
	_ = w.Close()

	req := httptest.NewRequest("POST", "/garments", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Categories outside the fixed set are kept; placement falls back to
	// the default box at composition time.
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var summary usecases.GarmentSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("invalid upload response: %v", err)
	}
	if summary.Category != "hat" {
		t.Errorf("category = %q, want %q preserved", summary.Category, "hat")
	}
}
