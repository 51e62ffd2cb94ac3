// Package histogram computes per-channel frequency counts over a surface and
// the cumulative sums that drive histogram equalization.
package histogram

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gridpix/go-filter/diagnostics"
	"github.com/gridpix/go-filter/surfaces"
)

// Buckets is the number of slots per channel: one per raw channel value
// 0..255 plus one extra slot.
const Buckets = 257

// Result holds four parallel sequences of bucket counts for red, green,
// blue and alpha. Built by a single scan; consumed immutably thereafter.
type Result struct {
	Red   []int
	Green []int
	Blue  []int
	Alpha []int
}

// NewResult returns a zeroed Result with all four channels allocated.
func NewResult() *Result {
	return &Result{
		Red:   make([]int, Buckets),
		Green: make([]int, Buckets),
		Blue:  make([]int, Buckets),
		Alpha: make([]int, Buckets),
	}
}

// Compute scans the surface once and counts every pixel's channel values.
// R, G, B index their buckets directly from the 255-mode values; alpha is
// mapped back to an integer bucket via round(a*255). Absent pixels are
// skipped: not counted and not an error.
func Compute(src surfaces.Surface, diag diagnostics.Reporter) *Result {
	d := diagnostics.OrNop(diag)
	out := NewResult()

	height := src.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < src.Width(); x++ {
			c, ok := src.ColorAt(x, y)
			if !ok {
				continue
			}
			v := c.To255().Clamp()
			out.Red[int(v.R)]++
			out.Green[int(v.G)]++
			out.Blue[int(v.B)]++
			out.Alpha[int(math32.Round(v.A*255))]++
		}
		d.Progress("Histogram", percent(y, height))
	}

	return out
}

// Cumulative produces a new Result where each bucket holds the running sum of
// the input's buckets in ascending index order, independently per channel.
func Cumulative(h *Result) *Result {
	out := NewResult()
	accumulate(h.Red, out.Red)
	accumulate(h.Green, out.Green)
	accumulate(h.Blue, out.Blue)
	accumulate(h.Alpha, out.Alpha)
	return out
}

func accumulate(in, out []int) {
	sum := 0
	for i, v := range in {
		sum += v
		out[i] = sum
	}
}

// Equalize spreads the source's tonal range across the full 0..255 scale and
// writes the result to dst.
//
// It computes the cumulative histogram of src and maps every channel value
// through it with the coefficient 255/(width·height):
//
//	dst.ch = round(k · cum[ch][src.ch])
//
// Alpha is copied unchanged. Pixels with an absent source color are skipped
// with a warning, leaving the destination pixel untouched.
func Equalize(src, dst surfaces.Surface, diag diagnostics.Reporter) {
	d := diagnostics.OrNop(diag)

	h := Compute(src, nil)
	cum := Cumulative(h)

	width := src.Width()
	height := src.Height()
	if width == 0 || height == 0 {
		return
	}
	k := float32(255) / float32(width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c, ok := src.ColorAt(x, y)
			if !ok {
				d.Warn("Equalize", fmt.Sprintf("no color at (%d,%d), skipping", x, y))
				continue
			}
			v := c.To255().Clamp()
			v.R = math32.Round(k * float32(cum.Red[int(v.R)]))
			v.G = math32.Round(k * float32(cum.Green[int(v.G)]))
			v.B = math32.Round(k * float32(cum.Blue[int(v.B)]))
			dst.SetColor(x, y, v)
		}
		d.Progress("Equalize", percent(y, height))
	}
}

func percent(row, height int) int {
	if height == 0 {
		return 100
	}
	return (row + 1) * 100 / height
}
