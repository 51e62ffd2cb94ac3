package colors

// BlendMode selects how a source color is combined with a destination color.
type BlendMode int

const (
	// BlendCross is standard "over" alpha compositing:
	// out = dst*(1-srcA) + src*srcA, applied per channel including alpha.
	BlendCross BlendMode = iota
	// BlendAdditive sums channels with no alpha weighting.
	BlendAdditive
	// BlendAdditiveAlpha adds the source weighted by its alpha: dst + src*srcA.
	BlendAdditiveAlpha
	// BlendMultiplied multiplies channels element-wise.
	BlendMultiplied
)

// String returns the wire name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendCross:
		return "Cross"
	case BlendAdditive:
		return "Additive"
	case BlendAdditiveAlpha:
		return "AdditiveAlpha"
	case BlendMultiplied:
		return "Multiplied"
	}
	return "Unknown"
}

// ParseBlendMode maps a wire name back to a BlendMode.
// Unknown names fall back to BlendCross.
func ParseBlendMode(s string) BlendMode {
	switch s {
	case "Additive":
		return BlendAdditive
	case "AdditiveAlpha":
		return BlendAdditiveAlpha
	case "Multiplied":
		return BlendMultiplied
	}
	return BlendCross
}

// Blend combines the receiver (treated as the destination) with src under the
// given mode.
//
// The combination is always performed in normalized space. All channels,
// including alpha, are clamped to at most 1.0 in normalized space before the
// result is converted back to 255-mode; alpha stays normalized as always.
func (c Color) Blend(src Color, mode BlendMode) Color {
	d := c.ToNormalized()
	s := src.ToNormalized()

	var out Color
	out.Normalized = true

	switch mode {
	case BlendAdditive:
		out.R = d.R + s.R
		out.G = d.G + s.G
		out.B = d.B + s.B
		out.A = d.A + s.A
	case BlendAdditiveAlpha:
		out.R = d.R + s.R*s.A
		out.G = d.G + s.G*s.A
		out.B = d.B + s.B*s.A
		out.A = d.A + s.A*s.A
	case BlendMultiplied:
		out.R = d.R * s.R
		out.G = d.G * s.G
		out.B = d.B * s.B
		out.A = d.A * s.A
	default: // BlendCross
		inv := 1 - s.A
		out.R = d.R*inv + s.R*s.A
		out.G = d.G*inv + s.G*s.A
		out.B = d.B*inv + s.B*s.A
		out.A = d.A*inv + s.A*s.A
	}

	out.R = capOne(out.R)
	out.G = capOne(out.G)
	out.B = capOne(out.B)
	out.A = capOne(out.A)

	return out.To255()
}

func capOne(v float32) float32 {
	if v > 1 {
		return 1
	}
	return v
}
