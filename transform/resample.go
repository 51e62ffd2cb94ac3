package transform

import (
	"github.com/chewxy/math32"

	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/diagnostics"
	"github.com/gridpix/go-filter/surfaces"
)

// ResampleFilter selects the resampling kernel used by Resample.
type ResampleFilter int

const (
	// NearestNeighborFilter uses nearest-neighbor sampling (fastest, blocky).
	NearestNeighborFilter ResampleFilter = iota
	// BilinearFilter uses a triangle kernel (fast, good quality).
	BilinearFilter
	// BicubicFilter uses a Catmull-Rom cubic (slower, better quality).
	BicubicFilter
	// LanczosFilter uses Lanczos with a=3 (slowest, best quality).
	LanczosFilter
	// MitchellNetravaliFilter balances sharpness and ringing suppression.
	MitchellNetravaliFilter
)

// resampleKernel is a separable resampling kernel: a support radius and the
// weight at a given distance from the sample center.
type resampleKernel struct {
	support float32
	at      func(x float32) float32
}

var resampleKernels = map[ResampleFilter]resampleKernel{
	BilinearFilter: {
		support: 1,
		at: func(x float32) float32 {
			x = math32.Abs(x)
			if x < 1 {
				return 1 - x
			}
			return 0
		},
	},
	BicubicFilter: {
		support: 2,
		at: func(x float32) float32 {
			// Catmull-Rom (Mitchell-Netravali with B=0, C=0.5).
			x = math32.Abs(x)
			if x < 1 {
				return (1.5*x-2.5)*x*x + 1
			}
			if x < 2 {
				return ((-0.5*x+2.5)*x-4)*x + 2
			}
			return 0
		},
	},
	LanczosFilter: {
		support: 3,
		at: func(x float32) float32 {
			if x == 0 {
				return 1
			}
			x = math32.Abs(x)
			if x >= 3 {
				return 0
			}
			// sinc(x) * sinc(x/3)
			pix := math32.Pi * x
			return (math32.Sin(pix) / pix) * (math32.Sin(pix/3) / (pix / 3))
		},
	},
	MitchellNetravaliFilter: {
		support: 2,
		at: func(x float32) float32 {
			// B = C = 1/3.
			x = math32.Abs(x)
			if x < 1 {
				return ((1.16666666666667*x-2)*x)*x + 0.888888888888889
			}
			if x < 2 {
				return ((-0.388888888888889*x+2)*x-3.333333333333333)*x + 1.777777777777778
			}
			return 0
		},
	},
}

// contribution is a single source pixel's weight toward an output pixel.
type contribution struct {
	pixel  int
	weight float32
}

// Resample resizes src to width×height using the given kernel and returns a
// new surface. Filtering is separable: a horizontal pass into an
// intermediate surface, then a vertical pass.
//
// Absent source pixels contribute nothing; their weight is dropped and the
// remaining weights renormalized, so sparse surfaces resample without dark
// fringes. Invalid target dimensions yield a 1×1 surface.
func Resample(src surfaces.Surface, width, height int, filter ResampleFilter, diag diagnostics.Reporter) *surfaces.Memory {
	d := diagnostics.OrNop(diag)

	if width <= 0 || height <= 0 {
		return surfaces.NewMemory(1, 1)
	}
	if filter == NearestNeighborFilter {
		return resampleNearest(src, width, height, d)
	}

	intermediate := surfaces.NewMemory(width, src.Height())
	resamplePass(src, intermediate, filter, true)
	d.Progress("Resample", 50)

	dst := surfaces.NewMemory(width, height)
	resamplePass(intermediate, dst, filter, false)
	d.Progress("Resample", 100)

	return dst
}

func resampleNearest(src surfaces.Surface, width, height int, d diagnostics.Reporter) *surfaces.Memory {
	dst := surfaces.NewMemory(width, height)
	xRatio := float32(src.Width()) / float32(width)
	yRatio := float32(src.Height()) / float32(height)

	for y := 0; y < height; y++ {
		srcY := int(float32(y)*yRatio + 0.5)
		if srcY >= src.Height() {
			srcY = src.Height() - 1
		}
		for x := 0; x < width; x++ {
			srcX := int(float32(x)*xRatio + 0.5)
			if srcX >= src.Width() {
				srcX = src.Width() - 1
			}
			if c, ok := src.ColorAt(srcX, srcY); ok {
				dst.SetColor(x, y, c)
			}
		}
		d.Progress("Resample", percent(y, height))
	}
	return dst
}

// resamplePass resizes one axis. For horizontal == true the destination
// width differs from the source; otherwise the height does.
func resamplePass(src surfaces.Surface, dst *surfaces.Memory, filter ResampleFilter, horizontal bool) {
	k := resampleKernels[filter]

	srcExtent := src.Height()
	dstExtent := dst.Height()
	if horizontal {
		srcExtent = src.Width()
		dstExtent = dst.Width()
	}
	if srcExtent == 0 || dstExtent == 0 {
		return
	}

	scale := float32(srcExtent) / float32(dstExtent)
	filterScale := scale
	if filterScale < 1 {
		// Upsampling keeps the kernel at its native support.
		filterScale = 1
	}
	support := k.support * filterScale

	// Precompute normalized contribution lists per output coordinate so the
	// pixel loop does no kernel evaluation.
	contributions := make([][]contribution, dstExtent)
	for i := 0; i < dstExtent; i++ {
		center := (float32(i) + 0.5) * scale
		lo := int(math32.Floor(center - support))
		hi := int(math32.Ceil(center + support))
		if lo < 0 {
			lo = 0
		}
		if hi >= srcExtent {
			hi = srcExtent - 1
		}

		var weights []contribution
		var sum float32
		for s := lo; s <= hi; s++ {
			w := k.at((float32(s) - center + 0.5) / filterScale)
			if w != 0 {
				weights = append(weights, contribution{pixel: s, weight: w})
				sum += w
			}
		}
		if sum != 0 {
			for j := range weights {
				weights[j].weight /= sum
			}
		}
		contributions[i] = weights
	}

	otherExtent := src.Height()
	if !horizontal {
		otherExtent = src.Width()
	}

	for other := 0; other < otherExtent; other++ {
		for i := 0; i < dstExtent; i++ {
			var r, g, b, a, total float32
			for _, c := range contributions[i] {
				var sample colors.Color
				var ok bool
				if horizontal {
					sample, ok = src.ColorAt(c.pixel, other)
				} else {
					sample, ok = src.ColorAt(other, c.pixel)
				}
				if !ok {
					continue
				}
				v := sample.To255()
				r += v.R * c.weight
				g += v.G * c.weight
				b += v.B * c.weight
				a += v.A * c.weight
				total += c.weight
			}
			if total == 0 {
				continue
			}
			out := colors.NewAlpha(
				math32.Round(r/total),
				math32.Round(g/total),
				math32.Round(b/total),
				a/total,
			).Clamp()
			if horizontal {
				dst.SetColor(i, other, out)
			} else {
				dst.SetColor(other, i, out)
			}
		}
	}
}
