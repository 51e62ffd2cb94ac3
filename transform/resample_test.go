package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/surfaces"
)

func TestResampleIdentityAtSameSize(t *testing.T) {
	src := surfaces.NewMemory(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetColor(x, y, colors.New(float32(x*60), float32(y*60), 128))
		}
	}

	dst := Resample(src, 4, 4, BilinearFilter, nil)
	require.Equal(t, 4, dst.Width())
	require.Equal(t, 4, dst.Height())

	// At 1:1 scale the triangle kernel centers exactly on each source pixel.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want, _ := src.ColorAt(x, y)
			got, ok := dst.ColorAt(x, y)
			require.True(t, ok)
			assert.True(t, want.Equal(got, 1), "(%d,%d): want %+v got %+v", x, y, want, got)
		}
	}
}

func TestResampleConstantPreserved(t *testing.T) {
	src := surfaces.NewMemoryFilled(8, 8, colors.New(100, 150, 200))
	for _, f := range []ResampleFilter{BilinearFilter, BicubicFilter, LanczosFilter, MitchellNetravaliFilter} {
		dst := Resample(src, 4, 4, f, nil)
		c, ok := dst.ColorAt(2, 2)
		require.True(t, ok, "filter %d", f)
		assert.True(t, c.Equal(colors.New(100, 150, 200), 1), "filter %d: %+v", f, c)
	}
}

func TestResampleNearestDimensions(t *testing.T) {
	src := surfaces.NewMemoryFilled(10, 6, colors.Black())
	dst := Resample(src, 5, 3, NearestNeighborFilter, nil)
	assert.Equal(t, 5, dst.Width())
	assert.Equal(t, 3, dst.Height())

	c, ok := dst.ColorAt(4, 2)
	require.True(t, ok)
	assert.Equal(t, colors.Black(), c)
}

func TestResampleInvalidTarget(t *testing.T) {
	src := surfaces.NewMemoryFilled(4, 4, colors.Black())
	dst := Resample(src, 0, -3, BilinearFilter, nil)
	assert.Equal(t, 1, dst.Width())
	assert.Equal(t, 1, dst.Height())
}

func TestResampleSparseSurfaceRenormalizes(t *testing.T) {
	// Half the source is absent: present pixels must keep their intensity
	// instead of being averaged against phantom black.
	src := surfaces.NewMemory(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			src.SetColor(x, y, colors.New(200, 200, 200))
		}
	}

	dst := Resample(src, 2, 2, BilinearFilter, nil)
	c, ok := dst.ColorAt(0, 0)
	require.True(t, ok)
	assert.InDelta(t, 200, c.R, 1)
}

func BenchmarkResampleBilinear(b *testing.B) {
	src := surfaces.NewMemoryFilled(256, 256, colors.New(128, 64, 32))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Resample(src, 128, 128, BilinearFilter, nil)
	}
}
