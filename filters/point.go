// Package filters implements the per-pixel, kernel-free operations: copy,
// grayscale, invert, threshold, channel assignment, blend and morphological
// erosion.
package filters

import (
	"fmt"
	"strings"

	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/diagnostics"
	"github.com/gridpix/go-filter/surfaces"
)

// Copy writes every source pixel to the same coordinate of dst. Absent
// source pixels are left absent in the destination.
func Copy(src, dst surfaces.Surface, diag diagnostics.Reporter) {
	d := diagnostics.OrNop(diag)
	height := src.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < src.Width(); x++ {
			if c, ok := src.ColorAt(x, y); ok {
				dst.SetColor(x, y, c)
			}
		}
		d.Progress("Copy", percent(y, height))
	}
}

// Grayscale replaces every pixel with its luminance. Absent pixels are
// skipped with a warning.
func Grayscale(src, dst surfaces.Surface, diag diagnostics.Reporter) {
	d := diagnostics.OrNop(diag)
	height := src.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < src.Width(); x++ {
			c, ok := src.ColorAt(x, y)
			if !ok {
				d.Warn("Grayscale", fmt.Sprintf("no color at (%d,%d), skipping", x, y))
				continue
			}
			dst.SetColor(x, y, c.Grayscale())
		}
		d.Progress("Grayscale", percent(y, height))
	}
}

// Invert replaces every pixel with its 255-complement. Sources in normalized
// mode are converted first. Absent pixels are skipped with a warning.
func Invert(src, dst surfaces.Surface, diag diagnostics.Reporter) {
	d := diagnostics.OrNop(diag)
	height := src.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < src.Width(); x++ {
			c, ok := src.ColorAt(x, y)
			if !ok {
				d.Warn("Invert", fmt.Sprintf("no color at (%d,%d), skipping", x, y))
				continue
			}
			dst.SetColor(x, y, c.To255().Invert())
		}
		d.Progress("Invert", percent(y, height))
	}
}

// Blend combines src with blendSrc pixel by pixel under the given mode, src
// acting as the destination operand of the color algebra. Coordinates where
// either side is absent are skipped with a warning.
func Blend(src, blendSrc, dst surfaces.Surface, mode colors.BlendMode, diag diagnostics.Reporter) {
	d := diagnostics.OrNop(diag)
	height := src.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < src.Width(); x++ {
			base, okBase := src.ColorAt(x, y)
			over, okOver := blendSrc.ColorAt(x, y)
			if !okBase || !okOver {
				d.Warn("Blend", fmt.Sprintf("no color pair at (%d,%d), skipping", x, y))
				continue
			}
			dst.SetColor(x, y, base.Blend(over, mode))
		}
		d.Progress("Blend", percent(y, height))
	}
}

// Threshold maps each channel to highColor's or lowColor's channel depending
// on whether the source channel exceeds thresholdColor's. Alpha is only
// thresholded when thresholdAlpha is set; otherwise the output keeps the
// constructed color's default of fully opaque.
func Threshold(src, dst surfaces.Surface, thresholdColor, highColor, lowColor colors.Color, thresholdAlpha bool, diag diagnostics.Reporter) {
	d := diagnostics.OrNop(diag)

	th := thresholdColor.To255()
	hi := highColor.To255()
	lo := lowColor.To255()

	height := src.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < src.Width(); x++ {
			c, ok := src.ColorAt(x, y)
			if !ok {
				d.Warn("Threshold", fmt.Sprintf("no color at (%d,%d), skipping", x, y))
				continue
			}
			v := c.To255()
			out := colors.New(
				pick(v.R, th.R, hi.R, lo.R),
				pick(v.G, th.G, hi.G, lo.G),
				pick(v.B, th.B, hi.B, lo.B),
			)
			if thresholdAlpha {
				out.A = pick(v.A, th.A, hi.A, lo.A)
			}
			dst.SetColor(x, y, out)
		}
		d.Progress("Threshold", percent(y, height))
	}
}

func pick(value, threshold, high, low float32) float32 {
	if value > threshold {
		return high
	}
	return low
}

// Channels names a subset of the r, g, b, a channels.
type Channels uint8

const (
	ChannelR Channels = 1 << iota
	ChannelG
	ChannelB
	ChannelA
)

// ParseChannels builds a channel set from a string like "rgb" or "a".
// Unknown letters are ignored.
func ParseChannels(s string) Channels {
	var set Channels
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'r':
			set |= ChannelR
		case 'g':
			set |= ChannelG
		case 'b':
			set |= ChannelB
		case 'a':
			set |= ChannelA
		}
	}
	return set
}

// AssignChannel copies src to dst with every channel in the set forced to
// value. The alpha channel is divided by 255 before assignment, keeping it in
// its normalized range. Absent pixels are skipped with a warning.
func AssignChannel(src, dst surfaces.Surface, set Channels, value float32, diag diagnostics.Reporter) {
	d := diagnostics.OrNop(diag)
	height := src.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < src.Width(); x++ {
			c, ok := src.ColorAt(x, y)
			if !ok {
				d.Warn("AssignChannelValue", fmt.Sprintf("no color at (%d,%d), skipping", x, y))
				continue
			}
			v := c.To255()
			if set&ChannelR != 0 {
				v.R = value
			}
			if set&ChannelG != 0 {
				v.G = value
			}
			if set&ChannelB != 0 {
				v.B = value
			}
			if set&ChannelA != 0 {
				v.A = value / 255
			}
			dst.SetColor(x, y, v)
		}
		d.Progress("AssignChannelValue", percent(y, height))
	}
}

func percent(row, height int) int {
	if height == 0 {
		return 100
	}
	return (row + 1) * 100 / height
}
