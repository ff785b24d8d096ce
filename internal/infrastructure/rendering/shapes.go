package rendering

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Shape primitives used by the procedural model renderer. Everything is
// rasterized through an anti-aliased coverage mask and composited with
// draw.DrawMask, so overlapping shapes blend cleanly.

const ellipseSegments = 48

func fillPolygon(dst *image.NRGBA, pts [][2]float64, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}

	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()

	mask := image.NewAlpha(b)
	z.Draw(mask, b, image.Opaque, image.Point{})
	draw.DrawMask(dst, b, image.NewUniform(c), image.Point{}, mask, b.Min, draw.Over)
}

// fillEllipse draws an ellipse centered at (cx, cy), optionally rotated by
// angle degrees. The outline is a 48-gon, which is indistinguishable from a
// true ellipse at the canvas sizes used here.
func fillEllipse(dst *image.NRGBA, cx, cy, rx, ry, angle float64, c color.NRGBA) {
	rad := angle * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	pts := make([][2]float64, 0, ellipseSegments)
	for i := 0; i < ellipseSegments; i++ {
		t := 2 * math.Pi * float64(i) / ellipseSegments
		x := rx * math.Cos(t)
		y := ry * math.Sin(t)
		pts = append(pts, [2]float64{
			cx + x*cos - y*sin,
			cy + x*sin + y*cos,
		})
	}
	fillPolygon(dst, pts, c)
}

// fillRadialGradient paints the whole canvas with a two-stop radial gradient
// centered at (cx, cy) with the given radius.
func fillRadialGradient(dst *image.NRGBA, cx, cy, radius float64, inner, outer color.NRGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := (y - b.Min.Y) * dst.Stride
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			t := math.Sqrt(dx*dx+dy*dy) / radius
			if t > 1 {
				t = 1
			}
			i := row + (x-b.Min.X)*4
			dst.Pix[i] = lerp8(inner.R, outer.R, t)
			dst.Pix[i+1] = lerp8(inner.G, outer.G, t)
			dst.Pix[i+2] = lerp8(inner.B, outer.B, t)
			dst.Pix[i+3] = 0xff
		}
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
