// Package masks implements generic NxM kernel convolution over a surface,
// the fixed catalog of named kernels, specialized edge detection, and a fast
// separable box blur for real-time paths.
package masks

// Mask is an R×C matrix of signed weights plus a post-multiply Factor and a
// post-add Bias, applied uniformly by the convolution engine:
//
//	out = round(Factor·sum + Bias), clamped to [0,255]
type Mask struct {
	Weights [][]float32
	Factor  float32
	Bias    float32
}

// Rows returns the vertical extent of the mask.
func (m Mask) Rows() int { return len(m.Weights) }

// Cols returns the horizontal extent of the mask.
func (m Mask) Cols() int {
	if len(m.Weights) == 0 {
		return 0
	}
	return len(m.Weights[0])
}

// The named kernel catalog. These are data, fixed bit-for-bit: filters built
// on them must reproduce the same output images across versions.
var (
	// Blur is a light 3×3 cross blur.
	Blur = Mask{Factor: 1, Weights: [][]float32{
		{0, 0.2, 0},
		{0.2, 0.2, 0.2},
		{0, 0.2, 0},
	}}

	// Blur2 is a stronger 5×5 diamond blur.
	Blur2 = Mask{Factor: 1.0 / 13.0, Weights: [][]float32{
		{0, 0, 1, 0, 0},
		{0, 1, 1, 1, 0},
		{1, 1, 1, 1, 1},
		{0, 1, 1, 1, 0},
		{0, 0, 1, 0, 0},
	}}

	// MotionBlur smears along the main diagonal.
	MotionBlur = Mask{Factor: 1.0 / 9.0, Weights: [][]float32{
		{1, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 1},
	}}

	// EdgesHorizontal responds to horizontal edges.
	EdgesHorizontal = Mask{Factor: 1, Weights: [][]float32{
		{0, 0, -1, 0, 0},
		{0, 0, -1, 0, 0},
		{0, 0, 2, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}}

	// EdgesVertical responds to vertical edges.
	EdgesVertical = Mask{Factor: 1, Weights: [][]float32{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{-1, -1, 2, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}}

	// Edges45 responds to 45-degree diagonal edges.
	Edges45 = Mask{Factor: 1, Weights: [][]float32{
		{-1, 0, 0, 0, 0},
		{0, -2, 0, 0, 0},
		{0, 0, 6, 0, 0},
		{0, 0, 0, -2, 0},
		{0, 0, 0, 0, -1},
	}}

	// EdgesAll is the all-direction Laplacian edge finder. DetectEdges is
	// built on it.
	EdgesAll = Mask{Factor: 1, Weights: [][]float32{
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	}}

	// Sharpen is the standard 3×3 sharpening kernel.
	Sharpen = Mask{Factor: 1, Weights: [][]float32{
		{-1, -1, -1},
		{-1, 9, -1},
		{-1, -1, -1},
	}}

	// Sharpen2 is a subtler 5×5 sharpen.
	Sharpen2 = Mask{Factor: 1.0 / 8.0, Weights: [][]float32{
		{-1, -1, -1, -1, -1},
		{-1, 2, 2, 2, -1},
		{-1, 2, 8, 2, -1},
		{-1, 2, 2, 2, -1},
		{-1, -1, -1, -1, -1},
	}}

	// Edges is an aggressive edge extractor.
	Edges = Mask{Factor: 1, Weights: [][]float32{
		{1, 1, 1},
		{1, -7, 1},
		{1, 1, 1},
	}}

	// Emboss gives a relief effect biased to mid-gray.
	Emboss = Mask{Factor: 1, Bias: 128, Weights: [][]float32{
		{-1, -1, 0},
		{-1, 0, 1},
		{0, 1, 1},
	}}

	// Emboss2 is a stronger 45-degree emboss.
	Emboss2 = Mask{Factor: 1, Bias: 128, Weights: [][]float32{
		{-1, -1, -1, -1, 0},
		{-1, -1, -1, 0, 1},
		{-1, -1, 0, 1, 1},
		{-1, 0, 1, 1, 1},
		{0, 1, 1, 1, 1},
	}}

	// Mean is the 3×3 averaging kernel.
	Mean = Mask{Factor: 1.0 / 9.0, Weights: [][]float32{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}}

	// Identity reproduces the source image exactly.
	Identity = Mask{Factor: 1, Weights: [][]float32{{1}}}
)

var catalog = map[string]Mask{
	"Blur":            Blur,
	"Blur2":           Blur2,
	"MotionBlur":      MotionBlur,
	"EdgesHorizontal": EdgesHorizontal,
	"EdgesVertical":   EdgesVertical,
	"Edges45":         Edges45,
	"EdgesAll":        EdgesAll,
	"Sharpen":         Sharpen,
	"Sharpen2":        Sharpen2,
	"Edges":           Edges,
	"Emboss":          Emboss,
	"Emboss2":         Emboss2,
	"Mean":            Mean,
	"Identity":        Identity,
}

// ByName looks up a catalog mask by its wire name.
func ByName(name string) (Mask, bool) {
	m, ok := catalog[name]
	return m, ok
}

// Names returns the catalog's mask names. Order is unspecified.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	return out
}
