// Package transform implements the geometric operations: the bilinear
// interpolation primitive, translation, rotation and scaling built on it,
// and a multi-kernel resampler for quality-controlled resizing.
package transform

import (
	"github.com/chewxy/math32"

	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/surfaces"
)

// degreesPerRadian converts rotation angles; kept at this precision so
// rotated output images stay bit-for-bit stable.
const degreesPerRadian = 57.29577951

// BilinearInterpolate samples the surface at a real-valued coordinate.
//
// The second return is false when the rounded coordinate falls outside the
// surface. When all four integer-grid neighbors (floor/ceil of x and y) have
// a color, the result is the standard bilinear weighted sum computed in
// normalized space, clamped, and returned in 255-mode. When any of the four
// neighbors is absent the function falls back to a direct nearest-integer
// lookup at (round(x), round(y)) instead of interpolating; changing this
// fallback changes output images.
func BilinearInterpolate(s surfaces.Surface, x, y float32) (colors.Color, bool) {
	rx := int(math32.Round(x))
	ry := int(math32.Round(y))
	if rx < 0 || ry < 0 || rx >= s.Width() || ry >= s.Height() {
		return colors.Color{}, false
	}

	x0 := int(math32.Floor(x))
	x1 := int(math32.Ceil(x))
	y0 := int(math32.Floor(y))
	y1 := int(math32.Ceil(y))

	c00, ok00 := s.ColorAt(x0, y0)
	c10, ok10 := s.ColorAt(x1, y0)
	c01, ok01 := s.ColorAt(x0, y1)
	c11, ok11 := s.ColorAt(x1, y1)
	if !ok00 || !ok10 || !ok01 || !ok11 {
		return s.ColorAt(rx, ry)
	}

	fx := x - float32(x0)
	fy := y - float32(y0)

	n00 := c00.ToNormalized()
	n10 := c10.ToNormalized()
	n01 := c01.ToNormalized()
	n11 := c11.ToNormalized()

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	out := colors.Color{
		R:          n00.R*w00 + n10.R*w10 + n01.R*w01 + n11.R*w11,
		G:          n00.G*w00 + n10.G*w10 + n01.G*w01 + n11.G*w11,
		B:          n00.B*w00 + n10.B*w10 + n01.B*w01 + n11.B*w11,
		A:          n00.A*w00 + n10.A*w10 + n01.A*w01 + n11.A*w11,
		Normalized: true,
	}
	return out.Clamp().To255(), true
}
