package gradient

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// Default dimensions of the generated image.
const (
	DefaultWidth  = 256
	DefaultHeight = 256
)

// Scale maps a channel fraction in [0,1] onto [0,255] after truncation.
// A fraction of exactly 1 must land on 255, never 256.
const Scale = 255.999

// ErrTooSmall is returned when a dimension leaves no room for a ramp.
var ErrTooSmall = errors.New("gradient dimensions must be at least 2x2")

// Image is a red/green gradient computed on demand. Red ramps from left to
// right, green from top to bottom, blue is always zero. Pixels are never
// stored; every call to At recomputes its value.
type Image struct {
	width  int
	height int
	// span holds width-1, height-1 for the float32 Fraction view.
	span   ms2.Vec
}

// New returns the gradient for a width x height image.
func New(width, height int) (*Image, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, width, height)
	}
	return &Image{
		width:  width,
		height: height,
		span:   ms2.Vec{X: float32(width - 1), Y: float32(height - 1)},
	}, nil
}

// Width returns the number of columns.
func (g *Image) Width() int { return g.width }

// Height returns the number of rows.
func (g *Image) Height() int { return g.height }

// ColorModel implements [image.Image].
func (g *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements [image.Image].
func (g *Image) Bounds() image.Rectangle { return image.Rect(0, 0, g.width, g.height) }

// Opaque reports whether the image is fully opaque, which it always is.
func (g *Image) Opaque() bool { return true }

// At implements [image.Image]. Points outside the bounds are transparent black.
func (g *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(g.Bounds()) {
		return color.RGBA{}
	}
	return g.RGBAAt(x, y)
}

// Fraction returns the channel fractions (red, green, blue) of the pixel in
// column i and row j. The float32 values are for display; RGBAAt does not
// derive its channels from them.
func (g *Image) Fraction(i, j int) ms3.Vec {
	uv := ms2.DivElem(ms2.Vec{X: float32(i), Y: float32(j)}, g.span)
	return ms3.Vec{X: uv.X, Y: uv.Y, Z: 0}
}

// RGBAAt returns the quantized color of the pixel in column i and row j.
// Coordinates are not bounds checked.
func (g *Image) RGBAAt(i, j int) color.RGBA {
	return color.RGBA{
		R: Quantize(float64(i) / float64(g.width-1)),
		G: Quantize(float64(j) / float64(g.height-1)),
		B: 0,
		A: 255,
	}
}

// Quantize converts a channel fraction to an 8-bit value using
// floor(f*255.999). Fractions outside [0,1] are clamped first.
// The product must be formed in float64: float32 rounding moves some
// fractions across an integer boundary (1086 columns, column 996).
func Quantize(f float64) uint8 {
	return uint8(math.Floor(min(max(f, 0), 1) * Scale))
}
