package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionRoundTrip(t *testing.T) {
	cases := []Color{
		New(0, 0, 0),
		New(255, 255, 255),
		New(1, 2, 3),
		NewAlpha(200, 100, 50, 0.25),
		NewAlpha(17, 93, 211, 0.5),
	}
	for _, c := range cases {
		back := c.ToNormalized().To255()
		assert.InDelta(t, c.R, back.R, 1, "red for %+v", c)
		assert.InDelta(t, c.G, back.G, 1, "green for %+v", c)
		assert.InDelta(t, c.B, back.B, 1, "blue for %+v", c)
		assert.Equal(t, c.A, back.A, "alpha must be untouched by conversion")
	}
}

func TestConversionIsNoOpInSameMode(t *testing.T) {
	c := New(10, 20, 30)
	assert.Equal(t, c, c.To255(), "255->255 should be a plain copy")

	n := c.ToNormalized()
	assert.Equal(t, n, n.ToNormalized(), "normalized->normalized should be a plain copy")
}

func TestConversionDoesNotMutateReceiver(t *testing.T) {
	c := New(100, 150, 200)
	_ = c.ToNormalized()
	assert.False(t, c.Normalized, "conversion must produce a copy, not flip the receiver")
	assert.Equal(t, float32(100), c.R)
}

func TestClampIdempotent(t *testing.T) {
	cases := []Color{
		NewAlpha(-5, 300, 128, 2),
		{R: -0.5, G: 1.5, B: 0.25, A: -1, Normalized: true},
		New(0, 255, 17),
	}
	for _, c := range cases {
		once := c.Clamp()
		assert.Equal(t, once, once.Clamp(), "clamp must be idempotent for %+v", c)

		limit := float32(255)
		if once.Normalized {
			limit = 1
		}
		for name, v := range map[string]float32{"r": once.R, "g": once.G, "b": once.B} {
			assert.GreaterOrEqual(t, v, float32(0), "%s lower bound", name)
			assert.LessOrEqual(t, v, limit, "%s upper bound", name)
		}
		assert.GreaterOrEqual(t, once.A, float32(0))
		assert.LessOrEqual(t, once.A, float32(1))
	}
}

func TestGrayscale(t *testing.T) {
	c := New(100, 200, 50).Grayscale()
	// 0.299*100 + 0.587*200 + 0.114*50 = 153.0
	assert.Equal(t, float32(153), c.R)
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.G, c.B)
}

func TestGrayscaleNormalizedDoesNotRound(t *testing.T) {
	c := New(100, 200, 50).ToNormalized().Grayscale()
	assert.InDelta(t, 0.6, c.R, 0.001)
	assert.True(t, c.Normalized)
}

func TestInvert(t *testing.T) {
	c := New(0, 100, 255).Invert()
	assert.Equal(t, New(255, 155, 0), c)
	assert.Equal(t, New(0, 100, 255), c.Invert(), "invert is its own inverse")
}

func TestEqualTolerance(t *testing.T) {
	a := New(100, 100, 100)
	b := New(102, 98, 101)
	assert.True(t, a.Equal(b, 2))
	assert.False(t, a.Equal(b, 1))

	transparent := a
	transparent.Transparent = true
	assert.False(t, a.Equal(transparent, 255), "transparent flag must match exactly")
}

func TestEqualRGBIgnoresAlpha(t *testing.T) {
	a := NewAlpha(10, 20, 30, 1)
	b := NewAlpha(10, 20, 30, 0)
	assert.True(t, a.EqualRGB(b, 0))
	assert.False(t, a.Equal(b, 0))
}

func TestArithmeticUnclamped(t *testing.T) {
	c := New(250, 5, 128)

	sum := c.Add(10)
	assert.Equal(t, float32(260), sum.R, "arithmetic must not clamp")
	assert.Equal(t, float32(11), sum.A, "alpha participates in arithmetic")

	diff := c.Sub(10)
	assert.Equal(t, float32(-5), diff.G)

	prod := c.Mul(2)
	assert.Equal(t, float32(500), prod.R)

	quot := c.Div(2)
	assert.Equal(t, float32(64), quot.B)

	both := c.AddColor(New(10, 10, 10))
	assert.Equal(t, float32(260), both.R)

	less := c.SubColor(New(255, 0, 0))
	assert.Equal(t, float32(-5), less.R)
}
