// Package codec implements the text wire formats used to move surfaces and
// histograms across an isolation boundary.
//
// An image travels as "<width>;<height>;<r>,<g>,<b>,<a>;...;" in row-major
// order, one group per pixel, alpha as a decimal fraction, absent pixels as
// "null". A
// histogram travels as four comma-separated 257-entry integer lists joined by
// ";" in red/green/blue/alpha order.
package codec

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/histogram"
	"github.com/gridpix/go-filter/surfaces"
)

// EncodeSurface serializes the surface's 255-mode representation.
func EncodeSurface(s surfaces.Surface) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.Width()))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(s.Height()))
	b.WriteByte(';')

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c, ok := s.ColorAt(x, y)
			if !ok {
				b.WriteString("null;")
				continue
			}
			v := c.To255()
			b.WriteString(formatChannel(v.R))
			b.WriteByte(',')
			b.WriteString(formatChannel(v.G))
			b.WriteByte(',')
			b.WriteString(formatChannel(v.B))
			b.WriteByte(',')
			b.WriteString(formatChannel(v.A))
			b.WriteByte(';')
		}
	}
	return b.String()
}

// formatChannel renders a channel value with no precision loss: integral
// values come out as plain integers, fractional ones keep their digits so
// encode/decode round-trips exactly.
func formatChannel(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// DecodeSurface parses a serialized image into dst.
//
// The whole payload is rejected, leaving dst untouched at every coordinate,
// when the declared dimensions don't match dst's, when the pixel-group count
// differs from width×height, or when any group is malformed. Groups whose
// first field is "null" leave the destination pixel at its prior value.
func DecodeSurface(payload string, dst surfaces.Surface) error {
	parts := strings.Split(payload, ";")
	// The trailing ";" yields one empty final token.
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	if len(parts) < 2 {
		return errors.New("decode surface: missing dimensions")
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return errors.Wrap(err, "decode surface: width")
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return errors.Wrap(err, "decode surface: height")
	}
	if width != dst.Width() || height != dst.Height() {
		return errors.Errorf("decode surface: payload is %dx%d, surface is %dx%d",
			width, height, dst.Width(), dst.Height())
	}

	groups := parts[2:]
	if len(groups) != width*height {
		return errors.Errorf("decode surface: %d pixel groups, expected %d",
			len(groups), width*height)
	}

	// Parse everything before writing anything, so a malformed group cannot
	// leave the surface partially applied.
	pixels := make([]*colors.Color, len(groups))
	for i, group := range groups {
		fields := strings.Split(group, ",")
		if fields[0] == "null" {
			continue
		}
		if len(fields) != 4 {
			return errors.Errorf("decode surface: group %d has %d components", i, len(fields))
		}
		var vals [4]float64
		for j, f := range fields {
			vals[j], err = strconv.ParseFloat(strings.TrimSpace(f), 32)
			if err != nil {
				return errors.Wrapf(err, "decode surface: group %d component %d", i, j)
			}
		}
		c := colors.NewAlpha(float32(vals[0]), float32(vals[1]), float32(vals[2]), float32(vals[3]))
		pixels[i] = &c
	}

	for i, c := range pixels {
		if c == nil {
			continue
		}
		dst.SetColor(i%width, i/width, *c)
	}
	return nil
}

// DecodeNewSurface allocates a Memory surface of the payload's declared
// dimensions and decodes into it. Adapters use this when the target size is
// only known from the wire.
func DecodeNewSurface(payload string) (*surfaces.Memory, error) {
	parts := strings.SplitN(payload, ";", 3)
	if len(parts) < 2 {
		return nil, errors.New("decode surface: missing dimensions")
	}
	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, errors.Wrap(err, "decode surface: width")
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, errors.Wrap(err, "decode surface: height")
	}
	if width < 0 || height < 0 {
		return nil, errors.Errorf("decode surface: negative dimensions %dx%d", width, height)
	}
	dst := surfaces.NewMemory(width, height)
	if err := DecodeSurface(payload, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// EncodeHistogram serializes the four channel sequences.
func EncodeHistogram(h *histogram.Result) string {
	channels := [][]int{h.Red, h.Green, h.Blue, h.Alpha}
	encoded := make([]string, len(channels))
	for i, ch := range channels {
		vals := make([]string, len(ch))
		for j, v := range ch {
			vals[j] = strconv.Itoa(v)
		}
		encoded[i] = strings.Join(vals, ",")
	}
	return strings.Join(encoded, ";")
}

// DecodeHistogram parses a serialized histogram. The payload must carry
// exactly four channels of 257 buckets each.
func DecodeHistogram(payload string) (*histogram.Result, error) {
	parts := strings.Split(payload, ";")
	if len(parts) != 4 {
		return nil, errors.Errorf("decode histogram: %d channels, expected 4", len(parts))
	}

	out := histogram.NewResult()
	targets := [][]int{out.Red, out.Green, out.Blue, out.Alpha}
	for i, part := range parts {
		vals := strings.Split(part, ",")
		if len(vals) != histogram.Buckets {
			return nil, errors.Errorf("decode histogram: channel %d has %d buckets, expected %d",
				i, len(vals), histogram.Buckets)
		}
		for j, v := range vals {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return nil, errors.Wrapf(err, "decode histogram: channel %d bucket %d", i, j)
			}
			targets[i][j] = n
		}
	}
	return out, nil
}
