package repositories

import (
	"context"

	"github.com/daxdesai/Closetly/internal/domain/entities"
)

// GenerativeService is the remote image-generation collaborator. It is a
// black box: implementations map every transport, quota, or malformed-output
// condition to ok=false rather than an error, so callers treat "remote
// failed" and "remote not configured" uniformly.
type GenerativeService interface {
	// GenerateTryOn returns ok=false when no usable image was produced.
	// The conservative flag selects a simplified prompt for the smaller
	// retry attempt; callers cap the request's garment count themselves.
	GenerateTryOn(ctx context.Context, request *entities.TryOnRequest, conservative bool) (result *entities.TryOnResult, ok bool)

	// Configured reports whether a credential is present. When false the
	// caller must skip the remote path entirely, without network calls.
	Configured() bool

	Close() error
}

// Compositor is the local fallback pipeline: procedural model plus layered
// garments. Unlike GenerativeService it can fail, with
// entities.ErrNoUsableGarments when every garment image is undecodable.
type Compositor interface {
	Compose(ctx context.Context, request *entities.TryOnRequest) (*entities.TryOnResult, error)
}
