package valueobjects

import "image/color"

// Gender is a rendering parameter only; it is never persisted.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
)

// ParseGender maps arbitrary input to a gender, defaulting to neutral.
func ParseGender(s string) Gender {
	switch Gender(s) {
	case GenderMale:
		return GenderMale
	case GenderFemale:
		return GenderFemale
	}
	return GenderNeutral
}

// GenderProfile holds the small set of silhouette deltas that gender
// actually perturbs: shoulder and torso width, head aspect, hair. Limb and
// leg geometry never varies.
type GenderProfile struct {
	ShoulderHalfWidth float64
	WaistHalfWidth    float64
	HipHalfWidth      float64
	HeadRadiusX       float64
	HeadRadiusY       float64
	HairLength        float64
	HairColor         color.NRGBA
}

var genderProfiles = map[Gender]GenderProfile{
	GenderMale: {
		ShoulderHalfWidth: 42,
		WaistHalfWidth:    30,
		HipHalfWidth:      32,
		HeadRadiusX:       26,
		HeadRadiusY:       30,
		HairLength:        14,
		HairColor:         color.NRGBA{R: 0x3a, G: 0x2a, B: 0x1e, A: 0xff},
	},
	GenderFemale: {
		ShoulderHalfWidth: 38,
		WaistHalfWidth:    26,
		HipHalfWidth:      36,
		HeadRadiusX:       25,
		HeadRadiusY:       31,
		HairLength:        72,
		HairColor:         color.NRGBA{R: 0x54, G: 0x38, B: 0x20, A: 0xff},
	},
	GenderNeutral: {
		ShoulderHalfWidth: 40,
		WaistHalfWidth:    28,
		HipHalfWidth:      34,
		HeadRadiusX:       25,
		HeadRadiusY:       30,
		HairLength:        34,
		HairColor:         color.NRGBA{R: 0x46, G: 0x31, B: 0x1f, A: 0xff},
	},
}

// ProfileFor returns the silhouette profile for a gender. Unknown values get
// the neutral profile.
func ProfileFor(gender Gender) GenderProfile {
	if p, ok := genderProfiles[gender]; ok {
		return p
	}
	return genderProfiles[GenderNeutral]
}
