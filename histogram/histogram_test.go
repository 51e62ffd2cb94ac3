package histogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/diagnostics"
	"github.com/gridpix/go-filter/surfaces"
)

func TestComputeCounts(t *testing.T) {
	s := surfaces.NewMemory(2, 2)
	s.SetColor(0, 0, colors.New(0, 128, 255))
	s.SetColor(1, 0, colors.New(0, 128, 255))
	s.SetColor(0, 1, colors.NewAlpha(10, 20, 30, 0.5))
	// (1,1) stays absent.

	h := Compute(s, nil)
	assert.Equal(t, 2, h.Red[0])
	assert.Equal(t, 1, h.Red[10])
	assert.Equal(t, 2, h.Green[128])
	assert.Equal(t, 2, h.Blue[255])
	assert.Equal(t, 2, h.Alpha[255], "opaque pixels land in bucket 255")
	assert.Equal(t, 1, h.Alpha[128], "alpha 0.5 rounds to bucket 128")

	total := 0
	for _, v := range h.Red {
		total += v
	}
	assert.Equal(t, 3, total, "absent pixels are not counted")
}

func TestComputeEmitsProgress(t *testing.T) {
	s := surfaces.NewMemoryFilled(2, 4, colors.Black())
	var c diagnostics.Collector
	Compute(s, &c)

	var percents []int
	for _, e := range c.Entries {
		if e.Kind == "progress" {
			assert.Equal(t, "Histogram", e.Filter)
			percents = append(percents, e.Percent)
		}
	}
	assert.Equal(t, []int{25, 50, 75, 100}, percents)
}

func TestCumulative(t *testing.T) {
	s := surfaces.NewMemoryFilled(3, 3, colors.New(100, 100, 100))
	cum := Cumulative(Compute(s, nil))

	for i := 0; i < 100; i++ {
		assert.Equal(t, 0, cum.Red[i])
	}
	for i := 100; i < Buckets; i++ {
		assert.Equal(t, 9, cum.Red[i])
	}
	assert.Equal(t, 9, cum.Red[Buckets-1], "last bucket holds the pixel count")

	for i := 1; i < Buckets; i++ {
		assert.GreaterOrEqual(t, cum.Green[i], cum.Green[i-1], "cumulative must be monotone")
	}
}

func TestEqualizeConstantImage(t *testing.T) {
	// A constant image has its whole mass at one value, so the cumulative
	// count at that value is w*h and every pixel maps to 255.
	src := surfaces.NewMemoryFilled(2, 2, colors.Black())
	dst := surfaces.NewMemory(2, 2)
	Equalize(src, dst, nil)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c, ok := dst.ColorAt(x, y)
			require.True(t, ok)
			assert.Equal(t, colors.New(255, 255, 255), c)
		}
	}
}

func TestEqualizePreservesAlpha(t *testing.T) {
	src := surfaces.NewMemoryFilled(2, 2, colors.NewAlpha(50, 50, 50, 0.25))
	dst := surfaces.NewMemory(2, 2)
	Equalize(src, dst, nil)

	c, ok := dst.ColorAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, float32(0.25), c.A)
}

func TestEqualizeSkipsAbsentWithWarning(t *testing.T) {
	src := surfaces.NewMemory(2, 1)
	src.SetColor(0, 0, colors.Black())

	dst := surfaces.NewMemory(2, 1)
	var c diagnostics.Collector
	Equalize(src, dst, &c)

	_, ok := dst.ColorAt(1, 0)
	assert.False(t, ok, "absent source pixels leave the destination untouched")
	assert.Len(t, c.Warnings(), 1)
}

func TestEqualizeEmptySurface(t *testing.T) {
	src := surfaces.NewMemory(0, 0)
	dst := surfaces.NewMemory(0, 0)
	Equalize(src, dst, nil) // must not divide by zero
}
