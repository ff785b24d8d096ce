package rendering

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/rs/zerolog"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/daxdesai/Closetly/internal/domain/entities"
	"github.com/daxdesai/Closetly/internal/domain/repositories"
	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
)

// Soft drop shadow applied under every garment layer.
const (
	shadowAlpha   = 38 // rgba(0,0,0,0.15)
	shadowBlur    = 5
	shadowOffsetX = 2
	shadowOffsetY = 3
)

// garmentAlpha is the global alpha each garment layer is drawn with.
const garmentAlpha = 250 // 0.98

// Compositor is the local fallback pipeline: a procedural model base with
// background-stripped garments layered on top in input order.
type Compositor struct {
	logger zerolog.Logger
}

func NewCompositor(logger zerolog.Logger) *Compositor {
	return &Compositor{
		logger: logger.With().Str("component", "compositor").Logger(),
	}
}

var _ repositories.Compositor = (*Compositor)(nil)

// Compose renders the model for the request's gender, then draws each
// decodable garment at its category's placement box. Garments that fail to
// decode are skipped with a warning; if none decode the call fails with
// entities.ErrNoUsableGarments.
func (c *Compositor) Compose(ctx context.Context, request *entities.TryOnRequest) (*entities.TryOnResult, error) {
	garments := request.Garments()
	if len(garments) == 0 {
		return nil, entities.ErrEmptyWardrobe
	}

	canvas := RenderModel(request.Gender())

	decoded := c.decodeAll(ctx, garments)

	usable := 0
	for i, img := range decoded {
		if img == nil {
			continue
		}
		usable++
		c.place(canvas, img, garments[i].Category)
	}
	if usable == 0 {
		return nil, fmt.Errorf("%w: all %d garments failed to decode", entities.ErrNoUsableGarments, len(garments))
	}

	c.logger.Info().
		Int("garments", len(garments)).
		Int("composed", usable).
		Str("gender", string(request.Gender())).
		Msg("composed try-on locally")

	composed, err := valueobjects.NewImageDataFromImage(canvas)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten composition: %w", err)
	}
	return entities.NewTryOnResult(request.ID(), composed, entities.SourceCompositor), nil
}

// decodeAll decodes every garment concurrently and joins results in input
// order. A nil slot marks a decode failure.
func (c *Compositor) decodeAll(ctx context.Context, garments []entities.GarmentInput) []image.Image {
	decoded := make([]image.Image, len(garments))

	var wg sync.WaitGroup
	for i, g := range garments {
		wg.Add(1)
		go func(i int, g entities.GarmentInput) {
			defer wg.Done()
			img, err := g.Image.Decode()
			if err != nil {
				c.logger.Warn().
					Err(err).
					Int("index", i).
					Str("category", g.Category.String()).
					Msg("skipping undecodable garment")
				return
			}
			decoded[i] = img
		}(i, g)
	}
	wg.Wait()

	return decoded
}

// place draws one garment through the background stripper at its placement
// box, with drop shadow, rotation, and the global layer alpha.
func (c *Compositor) place(canvas *image.NRGBA, garment image.Image, category valueobjects.Category) {
	box := valueobjects.PlacementFor(category)
	b := canvas.Bounds()

	w := int(box.Width*float64(b.Dx()) + 0.5)
	h := int(box.Height*float64(b.Dy()) + 0.5)
	if w <= 0 || h <= 0 {
		return
	}
	x := int(box.Left*float64(b.Dx()) + 0.5)
	y := int(box.Top*float64(b.Dy()) + 0.5)

	stripped := StripBackground(garment, w, h)

	// Render the (possibly rotated) garment into a canvas-sized scratch
	// layer first, so shadow and alpha treatment is identical either way.
	layer := image.NewNRGBA(b)
	if box.Rotation != 0 {
		transformInto(layer, stripped, box.Rotation, x, y, w, h)
	} else {
		draw.Draw(layer, image.Rect(x, y, x+w, y+h), stripped, image.Point{}, draw.Over)
	}

	drawShadow(canvas, layer)
	draw.DrawMask(canvas, b, layer, image.Point{},
		image.NewUniform(color.Alpha{A: garmentAlpha}), image.Point{}, draw.Over)
}

// transformInto draws src rotated by deg degrees about the center of the
// target rectangle.
func transformInto(dst *image.NRGBA, src *image.NRGBA, deg float64, x, y, w, h int) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	cx := float64(x) + float64(w)/2
	cy := float64(y) + float64(h)/2
	sw := float64(src.Bounds().Dx()) / 2
	sh := float64(src.Bounds().Dy()) / 2

	s2d := f64.Aff3{
		cos, -sin, cx - cos*sw + sin*sh,
		sin, cos, cy - sin*sw - cos*sh,
	}
	xdraw.BiLinear.Transform(dst, s2d, src, src.Bounds(), xdraw.Over, nil)
}

// drawShadow casts the layer's silhouette as a blurred shadow, offset down
// and to the right. The shadow buffers are per-call, so no shadow state
// survives into the next draw.
func drawShadow(dst *image.NRGBA, layer *image.NRGBA) {
	b := layer.Bounds()
	mask := image.NewAlpha(b)
	for i := 0; i < len(mask.Pix); i++ {
		a := int(layer.Pix[i*4+3])
		mask.Pix[i] = uint8(a * shadowAlpha / 255)
	}

	blurred := boxBlurAlpha(mask, shadowBlur)

	draw.DrawMask(dst, b.Add(image.Pt(shadowOffsetX, shadowOffsetY)),
		image.Black, image.Point{}, blurred, b.Min, draw.Over)
}

// boxBlurAlpha runs a separable box blur over an alpha mask.
func boxBlurAlpha(src *image.Alpha, radius int) *image.Alpha {
	if radius <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	tmp := image.NewAlpha(b)
	out := image.NewAlpha(b)
	window := 2*radius + 1

	for y := 0; y < h; y++ {
		row := y * src.Stride
		for x := 0; x < w; x++ {
			sum := 0
			for k := -radius; k <= radius; k++ {
				xx := clampInt(x+k, 0, w-1)
				sum += int(src.Pix[row+xx])
			}
			tmp.Pix[row+x] = uint8(sum / window)
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for k := -radius; k <= radius; k++ {
				yy := clampInt(y+k, 0, h-1)
				sum += int(tmp.Pix[yy*tmp.Stride+x])
			}
			out.Pix[y*out.Stride+x] = uint8(sum / window)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
