package util

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestLoadFrameFilesSortedByNumber(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "frame-10.png"), color.RGBA{R: 10, A: 255})
	writePNG(t, filepath.Join(dir, "frame-2.png"), color.RGBA{R: 2, A: 255})
	writePNG(t, filepath.Join(dir, "frame-1.png"), color.RGBA{R: 1, A: 255})

	frames, err := LoadFrameFiles(dir)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	assert.Equal(t, 1, frames[0].Frame)
	assert.Equal(t, 2, frames[1].Frame)
	assert.Equal(t, 10, frames[2].Frame, "numeric order, not lexical")
}

func TestLoadFrameFilesIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "frame-1.png"), color.RGBA{A: 255})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cover.png"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "frame-2.png"), 0o755))

	frames, err := LoadFrameFiles(dir)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, 1, frames[0].Frame)
}

func TestLoadFrameFilesBadNumber(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "frame-abc.png"), color.RGBA{A: 255})

	_, err := LoadFrameFiles(dir)
	assert.Error(t, err)
}

func TestLoadFrameFilesMissingDirectory(t *testing.T) {
	_, err := LoadFrameFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFrameFileDecode(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "frame-1.png"), color.RGBA{R: 200, G: 100, B: 50, A: 255})

	frames, err := LoadFrameFiles(dir)
	require.NoError(t, err)
	require.Len(t, frames, 1)

	img, err := frames[0].Decode()
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(200), r>>8)
	assert.Equal(t, uint32(100), g>>8)
	assert.Equal(t, uint32(50), b>>8)
}

func TestFrameFileDecodeGarbage(t *testing.T) {
	f := FrameFile{Path: "frame-1.jpg", Data: []byte("not an image")}
	_, err := f.Decode()
	assert.Error(t, err)
}
