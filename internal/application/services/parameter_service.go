package services

import (
	"net/http"
)

// ParameterService parses try-on form parameters with defaults, so handlers
// never see raw form values.
type ParameterService struct{}

func NewParameterService() *ParameterService {
	return &ParameterService{}
}

type TryOnParameters struct {
	Gender string
}

func (s *ParameterService) ParseFromRequest(r *http.Request) *TryOnParameters {
	return &TryOnParameters{
		Gender: s.getString(r, "gender", "neutral"),
	}
}

func (s *ParameterService) getString(r *http.Request, key, defaultValue string) string {
	value := r.FormValue(key)
	if value == "" {
		return defaultValue
	}
	return value
}
