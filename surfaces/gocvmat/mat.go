// Package gocvmat adapts an OpenCV gocv.Mat to the surface contract, so
// frames coming out of a capture or decode pipeline can be filtered in place
// without copying into a Go-native backing first.
//
// It lives in its own leaf package because gocv is cgo-backed: importing it
// requires an OpenCV toolchain, and the headless engine must build without
// one.
package gocvmat

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/surfaces"
)

// Surface wraps a gocv.Mat of type CV8UC4 with RGBA channel order.
//
// Like the image-backed surface, every in-range pixel always has a color.
// The surface borrows the Mat; the caller keeps ownership and must Close it.
type Surface struct {
	mat *gocv.Mat
}

var _ surfaces.Surface = (*Surface)(nil)

// New wraps mat. It returns an error when the Mat is empty or is not
// 4-channel 8-bit.
func New(mat *gocv.Mat) (*Surface, error) {
	if mat == nil || mat.Empty() {
		return nil, errors.New("mat surface: empty Mat")
	}
	if mat.Type() != gocv.MatTypeCV8UC4 {
		return nil, errors.Errorf("mat surface: unsupported Mat type %v, want CV8UC4", mat.Type())
	}
	return &Surface{mat: mat}, nil
}

func (s *Surface) Width() int  { return s.mat.Cols() }
func (s *Surface) Height() int { return s.mat.Rows() }

func (s *Surface) ColorAt(x, y int) (colors.Color, bool) {
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return colors.Color{}, false
	}
	base := x * 4
	return colors.NewAlpha(
		float32(s.mat.GetUCharAt(y, base)),
		float32(s.mat.GetUCharAt(y, base+1)),
		float32(s.mat.GetUCharAt(y, base+2)),
		float32(s.mat.GetUCharAt(y, base+3))/255,
	), true
}

func (s *Surface) SetColor(x, y int, c colors.Color) {
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return
	}
	v := c.To255().Clamp()
	a := v.A
	if v.Transparent {
		a = 0
	}
	base := x * 4
	s.mat.SetUCharAt(y, base, uint8(v.R))
	s.mat.SetUCharAt(y, base+1, uint8(v.G))
	s.mat.SetUCharAt(y, base+2, uint8(v.B))
	s.mat.SetUCharAt(y, base+3, uint8(math32.Round(a*255)))
}

func (s *Surface) Fill(c colors.Color) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.SetColor(x, y, c)
		}
	}
}

// Mat returns the borrowed Mat.
func (s *Surface) Mat() *gocv.Mat { return s.mat }
