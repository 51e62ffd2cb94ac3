package transform

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/diagnostics"
	"github.com/gridpix/go-filter/surfaces"
)

// Options carries the optional knobs shared by the geometric operations.
// The zero value means: white fill, no diagnostics.
type Options struct {
	// Fill is the background color Translate and Rotate pre-fill the
	// destination with. Nil means white.
	Fill *colors.Color
	// Diag receives progress and skip warnings. Nil means none.
	Diag diagnostics.Reporter
}

func (o Options) fill() colors.Color {
	if o.Fill == nil {
		return colors.White()
	}
	return *o.Fill
}

// Translate fills dst with the fill color, then writes every source pixel to
// (x+dx, y+dy). Writes that land outside the destination are no-ops, which is
// the only clipping the operation needs.
func Translate(src, dst surfaces.Surface, dx, dy int, opts Options) {
	d := diagnostics.OrNop(opts.Diag)
	dst.Fill(opts.fill())

	height := src.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < src.Width(); x++ {
			if c, ok := src.ColorAt(x, y); ok {
				dst.SetColor(x+dx, y+dy, c)
			}
		}
		d.Progress("Translate", percent(y, height))
	}
}

// Rotate fills dst with the fill color, then inverse-maps every destination
// pixel through a rotation of angleDegrees around the pivot (px, py) and
// bilinearly samples the source there. Destination pixels whose source
// sample is absent are skipped with a warning, leaving the fill color.
func Rotate(src, dst surfaces.Surface, px, py, angleDegrees float32, opts Options) {
	d := diagnostics.OrNop(opts.Diag)
	dst.Fill(opts.fill())

	angle := angleDegrees / degreesPerRadian
	sin := math32.Sin(angle)
	cos := math32.Cos(angle)

	height := dst.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < dst.Width(); x++ {
			rx := float32(x) - px
			ry := float32(y) - py
			sourceX := px + rx*cos + ry*sin
			sourceY := py - rx*sin + ry*cos

			c, ok := BilinearInterpolate(src, sourceX, sourceY)
			if !ok {
				d.Warn("Rotate", fmt.Sprintf("no source for (%d,%d), skipping", x, y))
				continue
			}
			dst.SetColor(x, y, c)
		}
		d.Progress("Rotate", percent(y, height))
	}
}

// Scale samples the source bilinearly at (x/sx, y/sy) for every destination
// pixel in [0, width·sx) × [0, height·sy).
//
// Unlike Translate and Rotate the destination is not pre-filled: pixels
// outside the sampled region keep whatever they held before, and absent
// samples are simply skipped. The asymmetry is part of the contract.
func Scale(src, dst surfaces.Surface, sx, sy float32, opts Options) {
	d := diagnostics.OrNop(opts.Diag)
	if sx <= 0 || sy <= 0 {
		return
	}

	targetWidth := int(math32.Ceil(float32(src.Width()) * sx))
	targetHeight := int(math32.Ceil(float32(src.Height()) * sy))

	for y := 0; y < targetHeight; y++ {
		for x := 0; x < targetWidth; x++ {
			c, ok := BilinearInterpolate(src, float32(x)/sx, float32(y)/sy)
			if !ok {
				continue
			}
			dst.SetColor(x, y, c)
		}
		d.Progress("Scale", percent(y, targetHeight))
	}
}

func percent(row, height int) int {
	if height == 0 {
		return 100
	}
	return (row + 1) * 100 / height
}
