package rendering

import (
	"image"
	"image/color"

	"github.com/daxdesai/Closetly/internal/domain/valueobjects"
)

// Native size of the procedural model canvas.
const (
	ModelWidth  = 400
	ModelHeight = 600
)

const (
	centerX   = 200.0
	neckTopY  = 120.0
	chestTopY = 150.0
	chestY    = 170.0
	waistY    = 300.0
	hipY      = 360.0
	headY     = 95.0
)

var (
	skinColor    = color.NRGBA{R: 0xe6, G: 0xb8, B: 0x92, A: 0xff}
	skinShade    = color.NRGBA{R: 0xd4, G: 0xa2, B: 0x7c, A: 0xff}
	bgInner      = color.NRGBA{R: 0xf2, G: 0xed, B: 0xe7, A: 0xff}
	bgOuter      = color.NRGBA{R: 0xd6, G: 0xd0, B: 0xc6, A: 0xff}
	floorShade   = color.NRGBA{A: 0x1f}
	featureColor = color.NRGBA{R: 0x33, G: 0x28, B: 0x22, A: 0xff}
	mouthColor   = color.NRGBA{R: 0xc2, G: 0x78, B: 0x6a, A: 0xff}
)

// shapeStep is one named drawing step of the silhouette. The model is a
// static illustration: every coordinate is a fixed offset from the canvas
// center, and only the profile-driven parameters vary.
type shapeStep struct {
	name string
	draw func(dst *image.NRGBA, p valueobjects.GenderProfile)
}

// modelSteps is the full silhouette, in paint order. Gender perturbs only
// shoulder/torso width, head aspect, and hair; limb and leg geometry is
// shared by all profiles.
var modelSteps = []shapeStep{
	{name: "background", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillRadialGradient(dst, centerX, 240, 420, bgInner, bgOuter)
	}},
	{name: "floor shadow", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX, 565, 90, 16, 0, floorShade)
	}},
	{name: "hair back", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillPolygon(dst, [][2]float64{
			{centerX - p.HeadRadiusX - 4, headY - 6},
			{centerX + p.HeadRadiusX + 4, headY - 6},
			{centerX + p.HeadRadiusX + 2, headY + p.HairLength},
			{centerX - p.HeadRadiusX - 2, headY + p.HairLength},
		}, p.HairColor)
	}},
	{name: "neck", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillPolygon(dst, [][2]float64{
			{centerX - 8, neckTopY},
			{centerX + 8, neckTopY},
			{centerX + 10, chestTopY},
			{centerX - 10, chestTopY},
		}, skinShade)
	}},
	{name: "shoulders", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillPolygon(dst, shoulderPolygon(p), skinColor)
	}},
	{name: "torso", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillPolygon(dst, [][2]float64{
			{centerX - p.ShoulderHalfWidth, chestY},
			{centerX + p.ShoulderHalfWidth, chestY},
			{centerX + p.WaistHalfWidth, waistY},
			{centerX + p.HipHalfWidth, hipY},
			{centerX - p.HipHalfWidth, hipY},
			{centerX - p.WaistHalfWidth, waistY},
		}, skinColor)
	}},
	{name: "left arm", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX-p.ShoulderHalfWidth-10, 250, 12, 80, 8, skinColor)
	}},
	{name: "right arm", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX+p.ShoulderHalfWidth+10, 250, 12, 80, -8, skinColor)
	}},
	{name: "left hand", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX-p.ShoulderHalfWidth-18, 332, 9, 9, 0, skinShade)
	}},
	{name: "right hand", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX+p.ShoulderHalfWidth+18, 332, 9, 9, 0, skinShade)
	}},
	{name: "left leg", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX-18, 445, 16, 88, 0, skinColor)
	}},
	{name: "right leg", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX+18, 445, 16, 88, 0, skinColor)
	}},
	{name: "left foot", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX-22, 537, 22, 10, 0, skinShade)
	}},
	{name: "right foot", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX+22, 537, 22, 10, 0, skinShade)
	}},
	{name: "head", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX, headY, p.HeadRadiusX, p.HeadRadiusY, 0, skinColor)
	}},
	{name: "hair top", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX, headY-10, p.HeadRadiusX+3, p.HeadRadiusY*0.62, 0, p.HairColor)
	}},
	{name: "eyes", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX-10, headY-2, 2.5, 3, 0, featureColor)
		fillEllipse(dst, centerX+10, headY-2, 2.5, 3, 0, featureColor)
	}},
	{name: "mouth", draw: func(dst *image.NRGBA, p valueobjects.GenderProfile) {
		fillEllipse(dst, centerX, headY+14, 5, 2, 0, mouthColor)
	}},
}

func shoulderPolygon(p valueobjects.GenderProfile) [][2]float64 {
	return [][2]float64{
		{centerX - p.ShoulderHalfWidth*0.55, chestTopY},
		{centerX + p.ShoulderHalfWidth*0.55, chestTopY},
		{centerX + p.ShoulderHalfWidth, chestY},
		{centerX - p.ShoulderHalfWidth, chestY},
	}
}

// RenderModel draws the stylized silhouette for the given gender onto a
// fresh 400x600 canvas. Pure and deterministic: same gender, same pixels.
func RenderModel(gender valueobjects.Gender) *image.NRGBA {
	profile := valueobjects.ProfileFor(gender)
	dst := image.NewNRGBA(image.Rect(0, 0, ModelWidth, ModelHeight))
	for _, step := range modelSteps {
		step.draw(dst, profile)
	}
	return dst
}
