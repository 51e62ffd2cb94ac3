// Package colors - RGBA color value type with dual 255/normalized
// representations and the arithmetic the filter engine is built on.
package colors

import "github.com/chewxy/math32"

// Color is an RGBA value.
//
// A Color is always in exactly one of two representations: 255-mode (R, G, B
// in [0,255]) or normalized mode (R, G, B in [0,1]). The Normalized flag tags
// which one. A is in [0,1] in both modes. Conversions return a new Color and
// never flip the mode of the receiver in place.
//
// Colors are plain values: created per pixel, freely copied, never shared.
type Color struct {
	// R, G, B are the channel values in the representation tagged by Normalized.
	R, G, B float32
	// A is the opacity, always in [0,1].
	A float32
	// Transparent marks the color as fully invisible regardless of channels.
	Transparent bool
	// Normalized is true when R, G, B are in [0,1] rather than [0,255].
	Normalized bool
}

// New returns an opaque 255-mode color.
func New(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NewAlpha returns a 255-mode color with the given opacity.
func NewAlpha(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// White is the default fill color for geometric transforms.
func White() Color { return New(255, 255, 255) }

// Black returns an opaque black.
func Black() Color { return New(0, 0, 0) }

// ToNormalized returns the color converted to normalized mode.
// Converting an already-normalized color is a plain copy.
func (c Color) ToNormalized() Color {
	if c.Normalized {
		return c
	}
	c.R /= 255
	c.G /= 255
	c.B /= 255
	c.Normalized = true
	return c
}

// To255 returns the color converted to 255-mode, rounding each channel to the
// nearest integer. Converting an already-255-mode color is a plain copy.
func (c Color) To255() Color {
	if !c.Normalized {
		return c
	}
	c.R = math32.Round(c.R * 255)
	c.G = math32.Round(c.G * 255)
	c.B = math32.Round(c.B * 255)
	c.Normalized = false
	return c
}

// Clamp returns the color with each channel clamped to its mode's valid
// range: [0,255] in 255-mode, [0,1] in normalized mode. A always clamps to
// [0,1]. Clamp is idempotent.
func (c Color) Clamp() Color {
	limit := float32(255)
	if c.Normalized {
		limit = 1
	}
	c.R = clampRange(c.R, 0, limit)
	c.G = clampRange(c.G, 0, limit)
	c.B = clampRange(c.B, 0, limit)
	c.A = clampRange(c.A, 0, 1)
	return c
}

// Grayscale returns the color with all of R, G, B replaced by the luminance
// 0.299·R + 0.587·G + 0.114·B. The luminance is rounded to an integer unless
// the color is in normalized mode.
func (c Color) Grayscale() Color {
	l := 0.299*c.R + 0.587*c.G + 0.114*c.B
	if !c.Normalized {
		l = math32.Round(l)
	}
	c.R = l
	c.G = l
	c.B = l
	return c
}

// Luminance returns the grayscale luminance of the color, rounded unless the
// color is normalized.
func (c Color) Luminance() float32 {
	l := 0.299*c.R + 0.587*c.G + 0.114*c.B
	if !c.Normalized {
		l = math32.Round(l)
	}
	return l
}

// Invert returns the color with each channel replaced by 255 minus its value.
// Only meaningful in 255-mode; callers must convert first.
func (c Color) Invert() Color {
	c.R = 255 - c.R
	c.G = 255 - c.G
	c.B = 255 - c.B
	return c
}

// Equal reports whether the two colors match within tolerance on every
// channel and alpha, and exactly on the Transparent flag.
func (c Color) Equal(o Color, tolerance float32) bool {
	return math32.Abs(c.R-o.R) <= tolerance &&
		math32.Abs(c.G-o.G) <= tolerance &&
		math32.Abs(c.B-o.B) <= tolerance &&
		math32.Abs(c.A-o.A) <= tolerance &&
		c.Transparent == o.Transparent
}

// EqualRGB reports whether the R, G, B channels match within tolerance.
// Alpha and the Transparent flag are ignored; erosion matching uses this.
func (c Color) EqualRGB(o Color, tolerance float32) bool {
	return math32.Abs(c.R-o.R) <= tolerance &&
		math32.Abs(c.G-o.G) <= tolerance &&
		math32.Abs(c.B-o.B) <= tolerance
}

// Add returns the color with n added to every channel including alpha.
// The result is unclamped; callers clamp explicitly when needed.
func (c Color) Add(n float32) Color {
	c.R += n
	c.G += n
	c.B += n
	c.A += n
	return c
}

// Sub returns the color with n subtracted from every channel including alpha,
// unclamped.
func (c Color) Sub(n float32) Color {
	return c.Add(-n)
}

// Mul returns the color with every channel including alpha multiplied by n,
// unclamped.
func (c Color) Mul(n float32) Color {
	c.R *= n
	c.G *= n
	c.B *= n
	c.A *= n
	return c
}

// Div returns the color with every channel including alpha divided by n,
// unclamped.
func (c Color) Div(n float32) Color {
	c.R /= n
	c.G /= n
	c.B /= n
	c.A /= n
	return c
}

// AddColor returns the element-wise sum of the two colors, unclamped.
func (c Color) AddColor(o Color) Color {
	c.R += o.R
	c.G += o.G
	c.B += o.B
	c.A += o.A
	return c
}

// SubColor returns the element-wise difference of the two colors, unclamped.
func (c Color) SubColor(o Color) Color {
	c.R -= o.R
	c.G -= o.G
	c.B -= o.B
	c.A -= o.A
	return c
}

func clampRange(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
