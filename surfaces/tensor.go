package surfaces

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/gridpix/go-filter/colors"
)

// ToTensor flattens a surface into a CHW float32 tensor with shape
// (4, height, width) and channel order R, G, B, A, every value normalized to
// [0,1]. This is the layout ML preprocessing pipelines consume, so filtered
// surfaces can feed a model input without another conversion pass.
//
// Absent pixels contribute zeros on all four channels.
func ToTensor(s Surface) *tensor.Dense {
	w := s.Width()
	h := s.Height()
	data := make([]float32, 4*w*h)

	plane := w * h
	red := data[0:plane]
	green := data[plane : 2*plane]
	blue := data[2*plane : 3*plane]
	alpha := data[3*plane : 4*plane]

	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, ok := s.ColorAt(x, y)
			if ok {
				n := c.ToNormalized().Clamp()
				a := n.A
				if n.Transparent {
					a = 0
				}
				red[i] = n.R
				green[i] = n.G
				blue[i] = n.B
				alpha[i] = a
			}
			i++
		}
	}

	return tensor.New(
		tensor.WithShape(4, h, w),
		tensor.WithBacking(data),
	)
}

// FromTensor writes a (4, height, width) float32 tensor produced by ToTensor
// back into dst. The tensor's spatial dimensions must match the destination
// surface; on mismatch the destination is left untouched.
//
// Arguments:
// - t: The CHW tensor, channel order R, G, B, A, values in [0,1].
// - dst: The surface to populate.
//
// Returns:
// - error: An error if the tensor shape or data type does not fit dst.
func FromTensor(t *tensor.Dense, dst Surface) error {
	shape := t.Shape()
	if len(shape) != 3 || shape[0] != 4 {
		return errors.Errorf("tensor shape %v: expected (4, height, width)", shape)
	}
	if shape[1] != dst.Height() || shape[2] != dst.Width() {
		return errors.Errorf("tensor is %dx%d, surface is %dx%d",
			shape[2], shape[1], dst.Width(), dst.Height())
	}
	data, ok := t.Data().([]float32)
	if !ok {
		return errors.Errorf("tensor backing is %T, expected []float32", t.Data())
	}

	w := dst.Width()
	h := dst.Height()
	plane := w * h

	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := colors.Color{
				R:          data[i],
				G:          data[plane+i],
				B:          data[2*plane+i],
				A:          data[3*plane+i],
				Normalized: true,
			}
			dst.SetColor(x, y, c.To255())
			i++
		}
	}
	return nil
}
