package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/nfnt/resize"

	"github.com/gridpix/go-filter/diagnostics"
	"github.com/gridpix/go-filter/filters"
	"github.com/gridpix/go-filter/histogram"
	"github.com/gridpix/go-filter/masks"
	"github.com/gridpix/go-filter/profiler"
	"github.com/gridpix/go-filter/surfaces"
	"github.com/gridpix/go-filter/util"
)

func main() {
	var (
		input      = flag.String("input", "", "input image file (png, jpeg or webp)")
		batchDir   = flag.String("batch", "", "directory of frame-N.* files to filter instead of -input")
		output     = flag.String("output", "out.png", "output file (single input) or directory (batch)")
		filterName = flag.String("filter", "Blur", "filter to apply (mask name, Grayscale, Invert, Equalize, DetectEdges or BoxBlur)")
		radius     = flag.Int("radius", 3, "radius for BoxBlur")
		maxDim     = flag.Int("maxdim", 0, "downscale inputs so neither side exceeds this before filtering (0 = off)")
		verbose    = flag.Bool("verbose", false, "log filter diagnostics")
		report     = flag.Bool("report", false, "print per-filter timing report")
	)
	flag.Parse()

	if *input == "" && *batchDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	timer := profiler.NewOperationTimer()
	var diag diagnostics.Reporter
	if *verbose {
		diag = logReporter{}
	}

	if *batchDir != "" {
		frames, err := util.LoadFrameFiles(*batchDir)
		if err != nil {
			log.Fatalf("loading frames: %v", err)
		}
		if err := os.MkdirAll(*output, 0o755); err != nil {
			log.Fatalf("creating output dir: %v", err)
		}
		for _, frame := range frames {
			img, err := frame.Decode()
			if err != nil {
				log.Fatalf("decoding %s: %v", frame.Path, err)
			}
			result := runFilter(img, *filterName, *radius, *maxDim, diag, timer)
			out := filepath.Join(*output, fmt.Sprintf("frame-%d.png", frame.Frame))
			if err := writeImage(out, result); err != nil {
				log.Fatalf("writing %s: %v", out, err)
			}
		}
		log.Printf("filtered %d frames", len(frames))
	} else {
		img, err := readImage(*input)
		if err != nil {
			log.Fatalf("reading %s: %v", *input, err)
		}
		result := runFilter(img, *filterName, *radius, *maxDim, diag, timer)
		if err := writeImage(*output, result); err != nil {
			log.Fatalf("writing %s: %v", *output, err)
		}
	}

	if *report {
		fmt.Print(timer.Report())
	}
}

// runFilter applies the named filter and returns the result image.
func runFilter(img image.Image, name string, radius, maxDim int, diag diagnostics.Reporter, timer *profiler.OperationTimer) image.Image {
	if maxDim > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
			img = resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Lanczos3)
		}
	}

	src := surfaces.FromImage(img)
	dst := surfaces.NewImageSurfaceSize(src.Width(), src.Height())

	start := time.Now()
	switch name {
	case "Grayscale":
		filters.Grayscale(src, dst, diag)
	case "Invert":
		filters.Invert(src, dst, diag)
	case "Equalize":
		histogram.Equalize(src, dst, diag)
	case "DetectEdges":
		filters.Copy(src, dst, nil)
		masks.DetectEdges(src, dst, diag)
	case "BoxBlur":
		blurred := masks.BoxBlur(src, masks.BoxBlurOptions{Radius: radius})
		filters.Copy(blurred, dst, nil)
	default:
		m, ok := masks.ByName(name)
		if !ok {
			log.Fatalf("unknown filter %q (masks: %s)", name, strings.Join(masks.Names(), ", "))
		}
		masks.Apply(src, dst, m, diag)
	}
	timer.Track(name, time.Since(start))

	return dst.RGBA()
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Decode(f)
	case ".webp":
		return webp.Decode(f)
	default:
		return jpeg.Decode(f)
	}
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, nil)
	case ".webp":
		return webp.Encode(f, img, &webp.Options{Quality: 90})
	default:
		return png.Encode(f, img)
	}
}

// logReporter forwards engine diagnostics to the standard logger.
type logReporter struct{}

func (logReporter) Progress(filter string, percent int) {
	if percent%25 == 0 {
		log.Printf("%s: %d%%", filter, percent)
	}
}

func (logReporter) Log(filter, message string) {
	log.Printf("%s: %s", filter, message)
}

func (logReporter) Warn(filter, message string) {
	log.Printf("%s: warning: %s", filter, message)
}

func (logReporter) Error(filter, message string) {
	log.Printf("%s: error: %s", filter, message)
}
