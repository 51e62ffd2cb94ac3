package masks

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/diagnostics"
	"github.com/gridpix/go-filter/surfaces"
)

// Apply convolves src with the mask and writes the result to dst.
//
// For every destination pixel the mask window is accumulated over the source
// with toroidal wrapping: the kernel never samples outside the surface, edges
// wrap around to the opposite side. Each channel sum is then transformed by
// round(Factor·sum + Bias) and clamped to [0,255]. The output alpha is taken
// from the last-sampled neighbor's alpha, not convolved.
//
// A neighbor with an absent color contributes nothing and emits a warning.
// The scan is sequential raster order; progress is reported once per row.
func Apply(src, dst surfaces.Surface, m Mask, diag diagnostics.Reporter) {
	d := diagnostics.OrNop(diag)

	rows := m.Rows()
	cols := m.Cols()
	if rows == 0 || cols == 0 {
		return
	}

	width := src.Width()
	height := src.Height()
	if width == 0 || height == 0 {
		return
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sumR, sumG, sumB float32
			lastAlpha := float32(1)

			for my := 0; my < rows; my++ {
				for mx := 0; mx < cols; mx++ {
					sx := wrap(x-cols/2+mx, width)
					sy := wrap(y-rows/2+my, height)
					c, ok := src.ColorAt(sx, sy)
					if !ok {
						d.Warn("MaskFilter", fmt.Sprintf("no color at (%d,%d), skipping", sx, sy))
						continue
					}
					v := c.To255()
					weight := m.Weights[my][mx]
					sumR += weight * v.R
					sumG += weight * v.G
					sumB += weight * v.B
					lastAlpha = v.A
				}
			}

			out := colors.NewAlpha(
				math32.Round(m.Factor*sumR+m.Bias),
				math32.Round(m.Factor*sumG+m.Bias),
				math32.Round(m.Factor*sumB+m.Bias),
				lastAlpha,
			).Clamp()
			dst.SetColor(x, y, out)
		}
		d.Progress("MaskFilter", percent(y, height))
	}
}

// DetectEdges runs the all-direction edge mask over src with a one-sided
// gate: the destination pixel is only overwritten when the grayscaled mask
// result is brighter than the grayscale of the unfiltered source pixel.
// Everywhere else the destination keeps whatever value it already had, so
// callers typically copy the source in first.
//
// The gate is deliberate: it keeps flat regions of the original image intact
// instead of flooding them with the near-black mask response.
func DetectEdges(src, dst surfaces.Surface, diag diagnostics.Reporter) {
	d := diagnostics.OrNop(diag)

	m := EdgesAll
	rows := m.Rows()
	cols := m.Cols()
	width := src.Width()
	height := src.Height()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			orig, ok := src.ColorAt(x, y)
			if !ok {
				d.Warn("DetectEdges", fmt.Sprintf("no color at (%d,%d), skipping", x, y))
				continue
			}

			var sumR, sumG, sumB float32
			lastAlpha := float32(1)
			for my := 0; my < rows; my++ {
				for mx := 0; mx < cols; mx++ {
					sx := wrap(x-cols/2+mx, width)
					sy := wrap(y-rows/2+my, height)
					c, sampled := src.ColorAt(sx, sy)
					if !sampled {
						d.Warn("DetectEdges", fmt.Sprintf("no color at (%d,%d), skipping", sx, sy))
						continue
					}
					v := c.To255()
					weight := m.Weights[my][mx]
					sumR += weight * v.R
					sumG += weight * v.G
					sumB += weight * v.B
					lastAlpha = v.A
				}
			}

			filtered := colors.NewAlpha(
				math32.Round(m.Factor*sumR+m.Bias),
				math32.Round(m.Factor*sumG+m.Bias),
				math32.Round(m.Factor*sumB+m.Bias),
				lastAlpha,
			).Clamp().Grayscale()

			if filtered.Luminance() > orig.To255().Luminance() {
				dst.SetColor(x, y, filtered)
			}
		}
		d.Progress("DetectEdges", percent(y, height))
	}
}

// wrap maps a coordinate into [0, n) toroidally. Unlike the plain
// (c+n) mod n form this stays correct when the mask half-extent exceeds the
// surface dimension.
func wrap(c, n int) int {
	c %= n
	if c < 0 {
		c += n
	}
	return c
}

func percent(row, height int) int {
	if height == 0 {
		return 100
	}
	return (row + 1) * 100 / height
}
