package filters

import (
	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/diagnostics"
	"github.com/gridpix/go-filter/surfaces"
)

// ErosionOptions parameterizes the morphological erosion pass.
type ErosionOptions struct {
	// ErosionColor selects which pixels are candidates for replacement.
	ErosionColor colors.Color
	// Threshold is the neighbor count a candidate must exceed to be replaced.
	Threshold int
	// Tolerance is the per-channel match tolerance for both color tests.
	Tolerance float32
	// NeighborColor is what the 8 surrounding pixels are matched against.
	NeighborColor colors.Color
	// ReplacementColor overwrites candidates whose neighbor count exceeds
	// the threshold.
	ReplacementColor colors.Color
	// Diag receives progress reporting. Nil means none.
	Diag diagnostics.Reporter
}

var erosionNeighborhood = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Erosion copies src to dst, then replaces every interior pixel that matches
// ErosionColor within Tolerance and whose matching neighbor count exceeds
// Threshold with ReplacementColor.
//
// Matching considers r, g, b only. The outermost 1-pixel border is excluded
// from processing; near edges a candidate simply has fewer than 8 neighbors
// to count.
func Erosion(src, dst surfaces.Surface, opts ErosionOptions) {
	d := diagnostics.OrNop(opts.Diag)

	Copy(src, dst, nil)

	width := src.Width()
	height := src.Height()
	erosion := opts.ErosionColor.To255()
	neighbor := opts.NeighborColor.To255()

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			c, ok := src.ColorAt(x, y)
			if !ok || !c.To255().EqualRGB(erosion, opts.Tolerance) {
				continue
			}

			count := 0
			for _, off := range erosionNeighborhood {
				n, present := src.ColorAt(x+off[0], y+off[1])
				if present && n.To255().EqualRGB(neighbor, opts.Tolerance) {
					count++
				}
			}

			if count > opts.Threshold {
				dst.SetColor(x, y, opts.ReplacementColor)
			}
		}
		d.Progress("Erosion", percent(y, height))
	}
}
