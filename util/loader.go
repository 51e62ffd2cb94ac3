// Package util - frame-sequence loading for batch filtering runs.
package util

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
)

// FrameFile is one image of an ordered frame sequence.
type FrameFile struct {
	// Path is the path to the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
	// Frame is the sequence number parsed from the file name.
	Frame int
}

// LoadFrameFiles reads every "frame-<n>.<ext>" image from a directory and
// returns them sorted by frame number. Supported extensions are .jpg, .jpeg,
// .png and .webp; other files are ignored.
//
// Arguments:
// - dir: Directory path containing the frame files.
//
// Returns:
// - []FrameFile: The raw frames in ascending frame order.
// - error: An error if the directory or a frame cannot be read.
func LoadFrameFiles(dir string) ([]FrameFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "load frames")
	}

	var frames []FrameFile
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(file.Name()))
		switch ext {
		case ".jpg", ".jpeg", ".png", ".webp":
		default:
			continue
		}

		name := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		if !strings.HasPrefix(name, "frame-") {
			continue
		}
		frame, err := strconv.Atoi(strings.TrimPrefix(name, "frame-"))
		if err != nil {
			return nil, errors.Wrapf(err, "load frames: %s", file.Name())
		}

		path := filepath.Join(dir, file.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "load frames: %s", file.Name())
		}

		frames = append(frames, FrameFile{Path: path, Data: data, Frame: frame})
	}

	sort.Slice(frames, func(i, j int) bool {
		return frames[i].Frame < frames[j].Frame
	})

	return frames, nil
}

// Decode turns the frame's raw bytes into an image, picking the decoder from
// the file extension.
func (f FrameFile) Decode() (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".png":
		img, err = png.Decode(bytes.NewReader(f.Data))
	case ".webp":
		img, err = webp.Decode(bytes.NewReader(f.Data))
	default:
		img, err = jpeg.Decode(bytes.NewReader(f.Data))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode frame %s", f.Path)
	}
	return img, nil
}
