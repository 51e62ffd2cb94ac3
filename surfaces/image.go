package surfaces

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/gridpix/go-filter/colors"
)

// ImageSurface adapts a standard library *image.RGBA to the Surface contract.
//
// Unlike Memory, every pixel of an ImageSurface always has a color (a zeroed
// RGBA image reads as transparent black), so ColorAt only reports absence for
// out-of-range coordinates. Writing a Transparent color stores alpha 0.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface wraps img. The surface shares storage with the image;
// writes through either are visible to both.
func NewImageSurface(img *image.RGBA) *ImageSurface {
	return &ImageSurface{img: img}
}

// NewImageSurfaceSize allocates a fresh RGBA image of the given size and
// wraps it.
func NewImageSurfaceSize(width, height int) *ImageSurface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// FromImage copies an arbitrary image.Image into a new ImageSurface.
func FromImage(src image.Image) *ImageSurface {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			dst.Set(x, y, src.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return &ImageSurface{img: dst}
}

func (s *ImageSurface) Width() int  { return s.img.Rect.Dx() }
func (s *ImageSurface) Height() int { return s.img.Rect.Dy() }

func (s *ImageSurface) ColorAt(x, y int) (colors.Color, bool) {
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return colors.Color{}, false
	}
	i := s.img.PixOffset(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y)
	p := s.img.Pix[i : i+4 : i+4]
	return colors.NewAlpha(
		float32(p[0]), float32(p[1]), float32(p[2]),
		float32(p[3])/255,
	), true
}

func (s *ImageSurface) SetColor(x, y int, c colors.Color) {
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return
	}
	v := c.To255().Clamp()
	a := v.A
	if v.Transparent {
		a = 0
	}
	i := s.img.PixOffset(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y)
	p := s.img.Pix[i : i+4 : i+4]
	p[0] = uint8(v.R)
	p[1] = uint8(v.G)
	p[2] = uint8(v.B)
	p[3] = uint8(math32.Round(a * 255))
}

func (s *ImageSurface) Fill(c colors.Color) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.SetColor(x, y, c)
		}
	}
}

// RGBA returns the backing image. The caller and the surface share it.
func (s *ImageSurface) RGBA() *image.RGBA { return s.img }

// ToImage renders any Surface into a new *image.RGBA. Absent pixels come out
// as transparent black.
func ToImage(s Surface) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c, ok := s.ColorAt(x, y)
			if !ok {
				continue
			}
			v := c.To255().Clamp()
			a := v.A
			if v.Transparent {
				a = 0
			}
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(v.R),
				G: uint8(v.G),
				B: uint8(v.B),
				A: uint8(math32.Round(a * 255)),
			})
		}
	}
	return img
}
