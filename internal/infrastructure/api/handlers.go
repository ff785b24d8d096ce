package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/daxdesai/Closetly/internal/application/services"
	"github.com/daxdesai/Closetly/internal/application/usecases"
	"github.com/daxdesai/Closetly/internal/domain/entities"
	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
	"github.com/daxdesai/Closetly/model"
)

// Upload limits enforced at the edge, before anything reaches the core.
const (
	maxUploadBytes    = 10 << 20
	maxMultipartBytes = 64 << 20
)

type TryOnHandler struct {
	tryOnUseCase     *usecases.TryOnUseCase
	wardrobeUseCase  *usecases.WardrobeUseCase
	parameterService *services.ParameterService
	logger           zerolog.Logger
}

func NewTryOnHandler(
	tryOnUseCase *usecases.TryOnUseCase,
	wardrobeUseCase *usecases.WardrobeUseCase,
	parameterService *services.ParameterService,
	logger zerolog.Logger,
) *TryOnHandler {
	return &TryOnHandler{
		tryOnUseCase:     tryOnUseCase,
		wardrobeUseCase:  wardrobeUseCase,
		parameterService: parameterService,
		logger:           logger.With().Str("component", "api").Logger(),
	}
}

// Register wires all routes onto the router.
func (h *TryOnHandler) Register(r *mux.Router) {
	r.HandleFunc("/", h.HandleIndex).Methods("GET")
	r.HandleFunc("/healthz", h.HandleHealth).Methods("GET")
	r.HandleFunc("/tryon", h.HandleTryOn).Methods("POST")
	r.HandleFunc("/garments", h.HandleListGarments).Methods("GET")
	r.HandleFunc("/garments", h.HandleAddGarment).Methods("POST")
	r.HandleFunc("/garments/{id}", h.HandleRemoveGarment).Methods("DELETE")
	r.HandleFunc("/garments/{id}/toggle", h.HandleToggleGarment).Methods("POST")
}

func (h *TryOnHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *TryOnHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, indexHTML)
}

// HandleTryOn composes a try-on image. Garment files may be sent inline
// under the "garment" field with parallel "category" values; when no files
// are sent, the active wardrobe is used instead.
func (h *TryOnHandler) HandleTryOn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartBytes); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
		return
	}

	params := h.parameterService.ParseFromRequest(r)

	uploads, err := h.collectUploads(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(uploads) == 0 {
		uploads, err = h.wardrobeUseCase.ActiveUploads(r.Context())
		if err != nil {
			h.writeError(w, http.StatusInternalServerError, err)
			return
		}
	}

	output, err := h.tryOnUseCase.Execute(r.Context(), usecases.TryOnInput{
		Garments: uploads,
		Gender:   params.Gender,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entities.ErrEmptyWardrobe) || errors.Is(err, entities.ErrNoUsableGarments) {
			status = http.StatusUnprocessableEntity
		}
		h.writeError(w, status, err)
		return
	}

	h.writeJSON(w, http.StatusOK, model.TryOnResponse{
		RequestID:          string(output.RequestID),
		Source:             string(output.Source),
		MimeType:           output.MimeType,
		BytesBase64Encoded: base64.StdEncoding.EncodeToString(output.Image),
	})
}

func (h *TryOnHandler) HandleAddGarment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartBytes); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("garment")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("garment file is required: %w", err))
		return
	}
	defer file.Close()

	data, err := h.readUpload(file, header)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}
	category := r.FormValue("category")
	h.noteUnknownCategory(category)

	summary, err := h.wardrobeUseCase.Add(r.Context(), usecases.GarmentUpload{
		Name:     name,
		Category: category,
		Data:     data,
	})
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, summary)
}

func (h *TryOnHandler) HandleRemoveGarment(w http.ResponseWriter, r *http.Request) {
	id := entities.GarmentID(mux.Vars(r)["id"])
	if err := h.wardrobeUseCase.Remove(r.Context(), id); err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TryOnHandler) HandleToggleGarment(w http.ResponseWriter, r *http.Request) {
	id := entities.GarmentID(mux.Vars(r)["id"])
	summary, err := h.wardrobeUseCase.ToggleActive(r.Context(), id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *TryOnHandler) HandleListGarments(w http.ResponseWriter, r *http.Request) {
	garments, err := h.wardrobeUseCase.List(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, garments)
}

// collectUploads reads inline garment files with their parallel category
// values, rejecting non-image or oversize files before the core sees them.
func (h *TryOnHandler) collectUploads(r *http.Request) ([]usecases.GarmentUpload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	files := r.MultipartForm.File["garment"]
	categories := r.MultipartForm.Value["category"]

	uploads := make([]usecases.GarmentUpload, 0, len(files))
	for i, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload %q: %w", header.Filename, err)
		}
		data, err := h.readUpload(file, header)
		file.Close()
		if err != nil {
			return nil, err
		}

		category := ""
		if i < len(categories) {
			category = categories[i]
		}
		h.noteUnknownCategory(category)
		uploads = append(uploads, usecases.GarmentUpload{
			Name:     header.Filename,
			Category: category,
			Data:     data,
		})
	}
	return uploads, nil
}

// noteUnknownCategory logs categories outside the fixed set. They are still
// accepted; placement falls back to the default box.
func (h *TryOnHandler) noteUnknownCategory(category string) {
	if category == "" {
		return
	}
	if c := valueobjects.Category(category); !c.Known() {
		h.logger.Warn().Str("category", category).Msg("unknown garment category, default placement applies")
	}
}

func (h *TryOnHandler) readUpload(file multipart.File, header *multipart.FileHeader) ([]byte, error) {
	if header.Size > maxUploadBytes {
		return nil, fmt.Errorf("file %q exceeds the 10MB limit", header.Filename)
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %q: %w", header.Filename, err)
	}
	if len(data) > maxUploadBytes {
		return nil, fmt.Errorf("file %q exceeds the 10MB limit", header.Filename)
	}

	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return nil, fmt.Errorf("file %q is not an image", header.Filename)
	}
	return data, nil
}

func (h *TryOnHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *TryOnHandler) writeError(w http.ResponseWriter, status int, err error) {
	if status >= 500 {
		h.logger.Error().Err(err).Msg("request failed")
	} else {
		h.logger.Warn().Err(err).Msg("request rejected")
	}
	h.writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}
