package masks

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/surfaces"
)

// EdgeMode defines how box-blur sampling behaves outside the surface bounds.
// - EdgeClamp repeats edge pixels (fast, can darken edges slightly).
// - EdgeMirror reflects coordinates (better edge energy preservation).
// - EdgeWrap tiles the surface toroidally, matching the convolution engine.
type EdgeMode int

const (
	EdgeClamp EdgeMode = iota
	EdgeMirror
	EdgeWrap
)

// BoxBlurOptions configures a BoxBlur call.
type BoxBlurOptions struct {
	Radius int      // Blur radius (window size = 2*Radius + 1). Must be >= 0.
	Edge   EdgeMode // Edge sampling mode.
	Pool   *Pool    // Optional scratch-surface pool for buffer reuse.
}

// Pool lets callers reuse scratch surfaces across repeated blurs to reduce
// allocation churn at video frame rates.
type Pool struct {
	mem sync.Pool
}

// GetMemory returns a pooled width×height Memory surface, or a fresh one.
func (p *Pool) GetMemory(width, height int) *surfaces.Memory {
	if p == nil {
		return surfaces.NewMemory(width, height)
	}
	if v := p.mem.Get(); v != nil {
		s := v.(*surfaces.Memory)
		if s.Width() == width && s.Height() == height {
			return s
		}
	}
	return surfaces.NewMemory(width, height)
}

// PutMemory returns a surface to the pool. Contents are not cleared; the
// next writer fully overwrites.
func (p *Pool) PutMemory(s *surfaces.Memory) {
	if p == nil || s == nil {
		return
	}
	p.mem.Put(s)
}

// BoxBlur applies a separable box blur to src and returns a new surface.
//
// Each pass slides a window along a row or column, subtracting the sample
// that leaves and adding the one that enters, so the cost per pixel is O(1)
// regardless of radius. Absent source pixels are treated as transparent
// black so the sliding sums stay consistent.
//
// Quality is lower than a mask-based Gaussian; three box passes with chosen
// radii approximate one well. Radius <= 0 returns a plain copy.
func BoxBlur(src surfaces.Surface, opt BoxBlurOptions) *surfaces.Memory {
	width := src.Width()
	height := src.Height()

	if opt.Radius <= 0 {
		dst := opt.Pool.GetMemory(width, height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if c, ok := src.ColorAt(x, y); ok {
					dst.SetColor(x, y, c)
				}
			}
		}
		return dst
	}

	tmp := opt.Pool.GetMemory(width, height)
	dst := opt.Pool.GetMemory(width, height)

	boxBlurHorizontal(src, tmp, opt.Radius, opt.Edge)
	boxBlurVertical(tmp, dst, opt.Radius, opt.Edge)

	opt.Pool.PutMemory(tmp)
	return dst
}

func sampleOrZero(s surfaces.Surface, x, y int) (r, g, b, a float32) {
	c, ok := s.ColorAt(x, y)
	if !ok {
		return 0, 0, 0, 0
	}
	v := c.To255()
	return v.R, v.G, v.B, v.A
}

func boxBlurHorizontal(src surfaces.Surface, dst *surfaces.Memory, radius int, edge EdgeMode) {
	width := src.Width()
	height := src.Height()
	if width == 0 || height == 0 {
		return
	}
	window := float32(2*radius + 1)

	for y := 0; y < height; y++ {
		var sumR, sumG, sumB, sumA float32

		load := func(x int) (float32, float32, float32, float32) {
			return sampleOrZero(src, mapCoord(x, width, edge), y)
		}

		for dx := -radius; dx <= radius; dx++ {
			r, g, b, a := load(dx)
			sumR += r
			sumG += g
			sumB += b
			sumA += a
		}

		for x := 0; x < width; x++ {
			dst.SetColor(x, y, colors.NewAlpha(
				math32.Round(sumR/window),
				math32.Round(sumG/window),
				math32.Round(sumB/window),
				sumA/window,
			))

			// Slide: the left sample exits, the right one enters.
			lr, lg, lb, la := load(x - radius)
			rr, rg, rb, ra := load(x + radius + 1)
			sumR += rr - lr
			sumG += rg - lg
			sumB += rb - lb
			sumA += ra - la
		}
	}
}

func boxBlurVertical(src surfaces.Surface, dst *surfaces.Memory, radius int, edge EdgeMode) {
	width := src.Width()
	height := src.Height()
	if width == 0 || height == 0 {
		return
	}
	window := float32(2*radius + 1)

	for x := 0; x < width; x++ {
		var sumR, sumG, sumB, sumA float32

		load := func(y int) (float32, float32, float32, float32) {
			return sampleOrZero(src, x, mapCoord(y, height, edge))
		}

		for dy := -radius; dy <= radius; dy++ {
			r, g, b, a := load(dy)
			sumR += r
			sumG += g
			sumB += b
			sumA += a
		}

		for y := 0; y < height; y++ {
			dst.SetColor(x, y, colors.NewAlpha(
				math32.Round(sumR/window),
				math32.Round(sumG/window),
				math32.Round(sumB/window),
				sumA/window,
			))

			lr, lg, lb, la := load(y - radius)
			rr, rg, rb, ra := load(y + radius + 1)
			sumR += rr - lr
			sumG += rg - lg
			sumB += rb - lb
			sumA += ra - la
		}
	}
}

// mapCoord maps an index i into [0, n) according to the edge mode.
func mapCoord(i, n int, mode EdgeMode) int {
	switch mode {
	case EdgeMirror:
		if n == 1 {
			return 0
		}
		for i < 0 || i >= n {
			if i < 0 {
				i = -i - 1
			} else {
				i = 2*n - i - 1
			}
		}
		return i
	case EdgeWrap:
		return wrap(i, n)
	default: // EdgeClamp
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}
