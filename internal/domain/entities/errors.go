package entities

import "errors"

var (
	// ErrEmptyWardrobe is returned before any rendering when a try-on is
	// requested with zero garments.
	ErrEmptyWardrobe = errors.New("no garments supplied")

	// ErrNoUsableGarments is returned when every supplied garment failed to
	// decode. Partial decode failures are tolerated and do not produce it.
	ErrNoUsableGarments = errors.New("no usable garment images")
)
