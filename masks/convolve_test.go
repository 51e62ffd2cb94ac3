package masks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/diagnostics"
	"github.com/gridpix/go-filter/surfaces"
)

func TestApplyIdentityReproducesSource(t *testing.T) {
	src := surfaces.NewMemory(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.SetColor(x, y, colors.NewAlpha(
				float32(x*40), float32(y*40), float32(x*y*10), 0.5))
		}
	}

	dst := surfaces.NewMemory(3, 3)
	Apply(src, dst, Identity, nil)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want, _ := src.ColorAt(x, y)
			got, ok := dst.ColorAt(x, y)
			require.True(t, ok)
			assert.True(t, want.Equal(got, 0.001), "(%d,%d): want %+v got %+v", x, y, want, got)
		}
	}
}

func TestApplyMeanOnConstant(t *testing.T) {
	src := surfaces.NewMemoryFilled(4, 4, colors.New(90, 90, 90))
	dst := surfaces.NewMemory(4, 4)
	Apply(src, dst, Mean, nil)

	c, ok := dst.ColorAt(2, 2)
	require.True(t, ok)
	assert.Equal(t, colors.New(90, 90, 90), c, "averaging a constant image is the identity")
}

func TestApplyWrapsToroidally(t *testing.T) {
	// 3x1 strip: the mean of any 3-wide window covers the whole strip.
	src := surfaces.NewMemory(3, 1)
	src.SetColor(0, 0, colors.New(0, 0, 0))
	src.SetColor(1, 0, colors.New(90, 90, 90))
	src.SetColor(2, 0, colors.New(180, 180, 180))

	horizontal := Mask{Factor: 1.0 / 3.0, Weights: [][]float32{{1, 1, 1}}}
	dst := surfaces.NewMemory(3, 1)
	Apply(src, dst, horizontal, nil)

	for x := 0; x < 3; x++ {
		c, ok := dst.ColorAt(x, 0)
		require.True(t, ok)
		assert.Equal(t, float32(90), c.R, "column %d must see all three pixels via wrap", x)
	}
}

func TestApplyClampsAndBias(t *testing.T) {
	src := surfaces.NewMemoryFilled(3, 3, colors.New(200, 10, 128))
	dst := surfaces.NewMemory(3, 3)
	Apply(src, dst, Emboss, nil) // weights sum to 0, bias 128

	c, ok := dst.ColorAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, colors.New(128, 128, 128), c)
}

func TestApplyOutputAlphaFromLastNeighbor(t *testing.T) {
	src := surfaces.NewMemory(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.SetColor(x, y, colors.NewAlpha(100, 100, 100, float32(y*3+x)/10))
		}
	}

	dst := surfaces.NewMemory(3, 3)
	Apply(src, dst, Mean, nil)

	// For the center pixel the scan ends at (2,2), whose alpha is 0.8.
	c, ok := dst.ColorAt(1, 1)
	require.True(t, ok)
	assert.InDelta(t, 0.8, c.A, 0.001)
}

func TestApplyWarnsOnAbsentNeighbor(t *testing.T) {
	src := surfaces.NewMemory(3, 3)
	src.SetColor(1, 1, colors.New(90, 90, 90))

	dst := surfaces.NewMemory(3, 3)
	var diag diagnostics.Collector
	Apply(src, dst, Mean, &diag)

	assert.NotEmpty(t, diag.Warnings())

	// The lone present pixel contributes 90/9 = 10 to its own window.
	c, ok := dst.ColorAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, float32(10), c.R)
}

func TestDetectEdgesFlatImageUntouched(t *testing.T) {
	src := surfaces.NewMemoryFilled(4, 4, colors.New(120, 120, 120))
	dst := surfaces.NewMemory(4, 4)
	DetectEdges(src, dst, nil)

	// The mask response on a flat region is 0, never brighter than the
	// source, so nothing is written.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			_, ok := dst.ColorAt(x, y)
			assert.False(t, ok, "flat region pixel (%d,%d) must not be overwritten", x, y)
		}
	}
}

func TestDetectEdgesWritesGrayscaleOnEdges(t *testing.T) {
	// Dark field with one bright pixel: the mask fires around it.
	src := surfaces.NewMemoryFilled(5, 5, colors.New(10, 10, 10))
	src.SetColor(2, 2, colors.New(250, 250, 250))

	dst := surfaces.NewMemory(5, 5)
	DetectEdges(src, dst, nil)

	// The bright pixel's own window sums to 8*250 - 8*10 = 1920, clamped to
	// 255, which is brighter than the source's 250.
	c, ok := dst.ColorAt(2, 2)
	require.True(t, ok, "edge response must be written at the bright pixel")
	assert.Equal(t, c.R, c.G, "written edge pixels are grayscale")
	assert.Equal(t, c.G, c.B)
	assert.Equal(t, float32(255), c.R)
}

func TestCatalog(t *testing.T) {
	names := []string{
		"Blur", "Blur2", "MotionBlur",
		"EdgesHorizontal", "EdgesVertical", "Edges45", "EdgesAll",
		"Sharpen", "Sharpen2", "Edges", "Emboss", "Emboss2",
		"Mean", "Identity",
	}
	assert.Len(t, Names(), len(names))
	for _, n := range names {
		m, ok := ByName(n)
		require.True(t, ok, "catalog must contain %q", n)
		assert.Positive(t, m.Rows(), "%s rows", n)
		assert.Positive(t, m.Cols(), "%s cols", n)
		for _, row := range m.Weights {
			assert.Len(t, row, m.Cols(), "%s must be rectangular", n)
		}
	}

	_, ok := ByName("NoSuchMask")
	assert.False(t, ok)
}

func TestCatalogFixedValues(t *testing.T) {
	assert.Equal(t, float32(8), EdgesAll.Weights[1][1])
	assert.Equal(t, float32(9), Sharpen.Weights[1][1])
	assert.Equal(t, float32(-7), Edges.Weights[1][1])
	assert.Equal(t, float32(128), Emboss.Bias)
	assert.Equal(t, float32(1.0/13.0), Blur2.Factor)
	assert.Equal(t, [][]float32{{1}}, Identity.Weights)
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 2, wrap(-1, 3))
	assert.Equal(t, 0, wrap(3, 3))
	assert.Equal(t, 1, wrap(-5, 3))
	assert.Equal(t, 1, wrap(7, 3))
}
