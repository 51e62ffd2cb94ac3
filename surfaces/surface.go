// Package surfaces defines the pixel-surface contract the filter engine
// operates on, plus the concrete backings: an in-memory reference
// implementation, an adapter over the standard library's *image.RGBA, and
// tensor interop for ML preprocessing pipelines. The cgo-backed OpenCV
// adapter lives in the gocvmat subpackage.
package surfaces

import "github.com/gridpix/go-filter/colors"

// Surface is the read/write pixel grid a filter reads from or writes to.
//
// This is the only capability the engine requires from whatever backs pixel
// storage. All implementations share the boundary semantics the algorithms
// rely on as a cheap guard: reads outside [0,w)×[0,h) report an absent color
// rather than an error, and writes outside bounds are no-ops.
//
// A surface is exclusively owned by whichever component created it; the
// engine never retains a reference across calls. Surfaces are not safe for
// concurrent use.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int
	// Height returns the surface height in pixels.
	Height() int
	// ColorAt returns the color at (x, y). The second return is false when
	// the coordinate is out of range or the pixel has no color.
	ColorAt(x, y int) (colors.Color, bool)
	// SetColor writes c at (x, y). Out-of-range coordinates are a no-op.
	SetColor(x, y int, c colors.Color)
	// Fill writes c to every coordinate.
	Fill(c colors.Color)
}

// Memory is the reference in-memory Surface used for headless operation.
//
// Pixels start absent: a fresh Memory surface reports no color anywhere until
// written, matching the skip semantics of operations like Scale that leave
// unsampled destination pixels untouched.
type Memory struct {
	width  int
	height int
	pixels []memoryPixel
}

type memoryPixel struct {
	color colors.Color
	set   bool
}

// NewMemory creates a width×height surface with every pixel absent.
// Negative dimensions are treated as zero.
func NewMemory(width, height int) *Memory {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Memory{
		width:  width,
		height: height,
		pixels: make([]memoryPixel, width*height),
	}
}

// NewMemoryFilled creates a width×height surface with every pixel set to c.
func NewMemoryFilled(width, height int, c colors.Color) *Memory {
	s := NewMemory(width, height)
	s.Fill(c)
	return s
}

func (s *Memory) Width() int  { return s.width }
func (s *Memory) Height() int { return s.height }

func (s *Memory) ColorAt(x, y int) (colors.Color, bool) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return colors.Color{}, false
	}
	p := s.pixels[y*s.width+x]
	return p.color, p.set
}

func (s *Memory) SetColor(x, y int, c colors.Color) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = memoryPixel{color: c, set: true}
}

func (s *Memory) Fill(c colors.Color) {
	for i := range s.pixels {
		s.pixels[i] = memoryPixel{color: c, set: true}
	}
}

// Clear marks every pixel absent again.
func (s *Memory) Clear() {
	for i := range s.pixels {
		s.pixels[i] = memoryPixel{}
	}
}

// Clone returns an independent copy of the surface, absent pixels included.
func (s *Memory) Clone() *Memory {
	out := NewMemory(s.width, s.height)
	copy(out.pixels, s.pixels)
	return out
}
