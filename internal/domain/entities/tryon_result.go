package entities

import (
	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
)

// ResultSource records which pipeline produced the composed image.
type ResultSource string

const (
	SourceRemote     ResultSource = "remote"
	SourceCompositor ResultSource = "compositor"
)

// TryOnResult is the single composed output image for a request.
type TryOnResult struct {
	requestID TryOnRequestID
	image     *valueobjects.ImageData
	source    ResultSource
}

func NewTryOnResult(requestID TryOnRequestID, image *valueobjects.ImageData, source ResultSource) *TryOnResult {
	return &TryOnResult{
		requestID: requestID,
		image:     image,
		source:    source,
	}
}

func (r *TryOnResult) RequestID() TryOnRequestID {
	return r.requestID
}

func (r *TryOnResult) Image() *valueobjects.ImageData {
	return r.image
}

func (r *TryOnResult) Source() ResultSource {
	return r.source
}

func (r *TryOnResult) HasImage() bool {
	return r.image != nil
}
