package rendering

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// Background classification thresholds. This is a brightness/saturation
// heuristic, not segmentation: near-white studio backgrounds are removed,
// solid-color garments survive, near-white garments erode at the edges.
// The erosion is a documented limitation of the approach.
const (
	lumaHigh      = 230
	spreadTight   = 25
	lumaMid       = 210
	spreadTighter = 20
	satLow        = 0.15
	whiteFloor    = 245
	satEpsilon    = 1e-6
)

// keptAlphaScale softens kept pixels very slightly so hard garment edges
// blend into the model underneath.
const keptAlphaScale = 0.99

// StripBackground scales src to w x h and clears every pixel classified as
// background. Kept pixels have their alpha scaled by keptAlphaScale, so the
// operation is idempotent on fully transparent pixels.
func StripBackground(src image.Image, w, h int) *image.NRGBA {
	scaled := resize.Resize(uint(w), uint(h), src, resize.Lanczos3)
	out := toNRGBA(scaled)

	for i := 0; i < len(out.Pix); i += 4 {
		r := out.Pix[i]
		g := out.Pix[i+1]
		b := out.Pix[i+2]
		a := out.Pix[i+3]

		if isBackground(r, g, b) {
			out.Pix[i+3] = 0
			continue
		}
		out.Pix[i+3] = uint8(float64(a) * keptAlphaScale)
	}
	return out
}

func isBackground(r, g, b uint8) bool {
	rf, gf, bf := float64(r), float64(g), float64(b)

	luma := 0.299*rf + 0.587*gf + 0.114*bf
	hi := max3(rf, gf, bf)
	lo := min3(rf, gf, bf)
	spread := hi - lo
	sat := spread / (hi + satEpsilon)

	switch {
	case luma > lumaHigh && spread < spreadTight:
		return true
	case luma > lumaMid && spread < spreadTighter && sat < satLow:
		return true
	case rf > whiteFloor && gf > whiteFloor && bf > whiteFloor:
		return true
	}
	return false
}

func max3(a, b, c float64) float64 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func min3(a, b, c float64) float64 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// toNRGBA always copies: resize returns the source untouched when the size
// already matches, and the alpha pass must not mutate the caller's image.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
