package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/diagnostics"
	"github.com/gridpix/go-filter/surfaces"
)

func TestTranslate(t *testing.T) {
	src := surfaces.NewMemory(3, 3)
	src.SetColor(0, 0, colors.New(10, 20, 30))

	dst := surfaces.NewMemory(3, 3)
	Translate(src, dst, 1, 2, Options{})

	c, ok := dst.ColorAt(1, 2)
	require.True(t, ok)
	assert.Equal(t, colors.New(10, 20, 30), c)

	// Everywhere else carries the default white fill.
	c, ok = dst.ColorAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, colors.White(), c)
}

func TestTranslateCustomFill(t *testing.T) {
	src := surfaces.NewMemory(2, 2)
	dst := surfaces.NewMemory(2, 2)
	fill := colors.New(1, 2, 3)
	Translate(src, dst, 0, 0, Options{Fill: &fill})

	c, ok := dst.ColorAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, fill, c)
}

func TestTranslateClipsSilently(t *testing.T) {
	src := surfaces.NewMemoryFilled(2, 2, colors.Black())
	dst := surfaces.NewMemory(2, 2)
	Translate(src, dst, 5, 5, Options{}) // every write lands outside

	c, ok := dst.ColorAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, colors.White(), c, "only the fill remains")
}

func TestRotateZeroDegreesIsIdentity(t *testing.T) {
	src := surfaces.NewMemory(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.SetColor(x, y, colors.New(float32(x*50), float32(y*50), 0))
		}
	}

	dst := surfaces.NewMemory(3, 3)
	Rotate(src, dst, 1, 1, 0, Options{})

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want, _ := src.ColorAt(x, y)
			got, ok := dst.ColorAt(x, y)
			require.True(t, ok)
			assert.True(t, want.Equal(got, 1), "(%d,%d): want %+v got %+v", x, y, want, got)
		}
	}
}

func TestRotate90AroundCenter(t *testing.T) {
	// 3x3 with a marked pixel at (2,1): a 90-degree rotation around the
	// center inverse-maps destination (1,2) onto it.
	src := surfaces.NewMemoryFilled(3, 3, colors.Black())
	src.SetColor(2, 1, colors.New(200, 0, 0))

	dst := surfaces.NewMemory(3, 3)
	Rotate(src, dst, 1, 1, 90, Options{})

	c, ok := dst.ColorAt(1, 2)
	require.True(t, ok)
	assert.InDelta(t, 200, c.R, 1, "marked pixel should land at (1,2): %+v", c)
}

func TestRotateSkipsAbsentWithWarning(t *testing.T) {
	src := surfaces.NewMemory(3, 3) // fully absent
	dst := surfaces.NewMemory(3, 3)
	var diag diagnostics.Collector
	Rotate(src, dst, 1, 1, 45, Options{Diag: &diag})

	c, ok := dst.ColorAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, colors.White(), c, "skipped pixels keep the fill")
	assert.NotEmpty(t, diag.Warnings())
}

func TestScaleIdentity(t *testing.T) {
	src := surfaces.NewMemory(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.SetColor(x, y, colors.New(float32(x*30), float32(y*30), 99))
		}
	}

	dst := surfaces.NewMemory(3, 3)
	Scale(src, dst, 1, 1, Options{})

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want, _ := src.ColorAt(x, y)
			got, ok := dst.ColorAt(x, y)
			require.True(t, ok)
			assert.True(t, want.Equal(got, 1), "(%d,%d)", x, y)
		}
	}
}

func TestScaleDoesNotPrefill(t *testing.T) {
	src := surfaces.NewMemoryFilled(2, 2, colors.Black())
	dst := surfaces.NewMemory(4, 4)
	Scale(src, dst, 0.5, 0.5, Options{}) // target extent 1x1

	_, ok := dst.ColorAt(3, 3)
	assert.False(t, ok, "pixels outside the scaled extent stay untouched")

	_, ok = dst.ColorAt(0, 0)
	assert.True(t, ok)
}

func TestScaleRejectsNonPositiveFactors(t *testing.T) {
	src := surfaces.NewMemoryFilled(2, 2, colors.Black())
	dst := surfaces.NewMemory(2, 2)
	Scale(src, dst, 0, 1, Options{})
	Scale(src, dst, 1, -2, Options{})

	_, ok := dst.ColorAt(0, 0)
	assert.False(t, ok, "invalid factors must write nothing")
}

func TestScaleUpTargetExtent(t *testing.T) {
	src := surfaces.NewMemoryFilled(2, 2, colors.New(60, 60, 60))
	dst := surfaces.NewMemory(5, 5)
	Scale(src, dst, 1.5, 1.5, Options{}) // ceil(2*1.5) = 3

	_, ok := dst.ColorAt(2, 2)
	assert.True(t, ok)
	_, ok = dst.ColorAt(3, 3)
	assert.False(t, ok, "writes stop at the ceil of the scaled size")
}
