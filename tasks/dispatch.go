package tasks

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gridpix/go-filter/codec"
	"github.com/gridpix/go-filter/colors"
	"github.com/gridpix/go-filter/filters"
	"github.com/gridpix/go-filter/histogram"
	"github.com/gridpix/go-filter/masks"
	"github.com/gridpix/go-filter/surfaces"
	"github.com/gridpix/go-filter/transform"
)

// Dispatch routes one request to the engine and emits every resulting
// response: Progress and Log messages while the filter scans, then a single
// Result<Name>Filter (or Error) response. All responses echo the request tag.
//
// Dispatch is synchronous; isolation is the worker's concern.
func Dispatch(req Request, emit func(Response)) {
	if req.Type != TypeFilter {
		emit(errorResponse(req, errors.Errorf("unknown request type %q", req.Type)))
		return
	}

	handler, ok := handlers[req.Cmd]
	if !ok {
		emit(errorResponse(req, errors.Errorf("unknown command %q", req.Cmd)))
		return
	}

	payload, err := handler(req, emit)
	if err != nil {
		emit(errorResponse(req, err))
		return
	}
	emit(Response{Cmd: ResultCommand(req.Cmd), Tag: req.Tag, Payload: payload})
}

// Run dispatches the request and collects every emitted response in order.
func Run(req Request) []Response {
	var out []Response
	Dispatch(req, func(r Response) { out = append(out, r) })
	return out
}

type handlerFunc func(req Request, emit func(Response)) (string, error)

var handlers = map[Command]handlerFunc{
	CmdCopy:                handleCopy,
	CmdHistogram:           handleHistogram,
	CmdSumHistogram:        handleSumHistogram,
	CmdEqualize:            handleEqualize,
	CmdGrayscale:           handleGrayscale,
	CmdInvert:              handleInvert,
	CmdThreshold:           handleThreshold,
	CmdAssignChannelValue:  handleAssignChannelValue,
	CmdDetectEdges:         handleDetectEdges,
	CmdTranslate:           handleTranslate,
	CmdRotate:              handleRotate,
	CmdScale:               handleScale,
	CmdErosion:             handleErosion,
	CmdBilinearInterpolate: handleBilinearInterpolate,
	CmdBlend:               handleBlend,
	CmdMaskFilter:          handleMaskFilter,
}

// emitReporter bridges the engine's diagnostics channel onto the response
// stream, synchronously and tag-preserving.
type emitReporter struct {
	tag  string
	emit func(Response)
}

func (r emitReporter) Progress(filter string, percent int) {
	r.emit(Response{Cmd: ResponseProgress, Tag: r.tag, Filter: filter, Progress: percent})
}

func (r emitReporter) Log(filter, message string) {
	r.emit(Response{Cmd: ResponseLog, Tag: r.tag, Filter: filter, Payload: message})
}

func (r emitReporter) Warn(filter, message string) {
	r.emit(Response{Cmd: ResponseLog, Tag: r.tag, Filter: filter, Payload: message})
}

func (r emitReporter) Error(filter, message string) {
	r.emit(Response{Cmd: ResponseError, Tag: r.tag, Filter: filter, Error: message})
}

func errorResponse(req Request, err error) Response {
	return Response{Cmd: ResponseError, Tag: req.Tag, Error: err.Error()}
}

// sourceSurface decodes the request's primary image.
func sourceSurface(req Request) (*surfaces.Memory, error) {
	if req.Image == "" {
		return nil, errors.New("request carries no image")
	}
	src, err := codec.DecodeNewSurface(req.Image)
	if err != nil {
		return nil, errors.Wrapf(err, "command %s", req.Cmd)
	}
	return src, nil
}

// Malformed optional parameters fall back to their defaults silently; only a
// missing or unreadable image is an adapter error.

func paramFloat(req Request, key string, def float32) float32 {
	v, ok := req.Params[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
	if err != nil {
		return def
	}
	return float32(f)
}

func paramInt(req Request, key string, def int) int {
	v, ok := req.Params[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func paramBool(req Request, key string, def bool) bool {
	v, ok := req.Params[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

func paramColor(req Request, key string, def colors.Color) colors.Color {
	v, ok := req.Params[key]
	if !ok {
		return def
	}
	c, err := colors.ParseRGBA(v)
	if err != nil {
		return def
	}
	return c
}

func handleCopy(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	dst := surfaces.NewMemory(src.Width(), src.Height())
	filters.Copy(src, dst, emitReporter{tag: req.Tag, emit: emit})
	return codec.EncodeSurface(dst), nil
}

func handleHistogram(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	h := histogram.Compute(src, emitReporter{tag: req.Tag, emit: emit})
	return codec.EncodeHistogram(h), nil
}

func handleSumHistogram(req Request, _ func(Response)) (string, error) {
	payload, ok := req.Params["histogram"]
	if !ok {
		return "", errors.New("SumHistogram: missing histogram parameter")
	}
	h, err := codec.DecodeHistogram(payload)
	if err != nil {
		return "", err
	}
	return codec.EncodeHistogram(histogram.Cumulative(h)), nil
}

func handleEqualize(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	dst := surfaces.NewMemory(src.Width(), src.Height())
	histogram.Equalize(src, dst, emitReporter{tag: req.Tag, emit: emit})
	return codec.EncodeSurface(dst), nil
}

func handleGrayscale(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	dst := surfaces.NewMemory(src.Width(), src.Height())
	filters.Grayscale(src, dst, emitReporter{tag: req.Tag, emit: emit})
	return codec.EncodeSurface(dst), nil
}

func handleInvert(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	dst := surfaces.NewMemory(src.Width(), src.Height())
	filters.Invert(src, dst, emitReporter{tag: req.Tag, emit: emit})
	return codec.EncodeSurface(dst), nil
}

func handleThreshold(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	dst := surfaces.NewMemory(src.Width(), src.Height())
	filters.Threshold(src, dst,
		paramColor(req, "thresholdColor", colors.New(127, 127, 127)),
		paramColor(req, "highColor", colors.White()),
		paramColor(req, "lowColor", colors.Black()),
		paramBool(req, "thresholdAlpha", false),
		emitReporter{tag: req.Tag, emit: emit})
	return codec.EncodeSurface(dst), nil
}

func handleAssignChannelValue(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	dst := surfaces.NewMemory(src.Width(), src.Height())
	set := filters.ParseChannels(req.Params["channels"])
	filters.AssignChannel(src, dst, set, paramFloat(req, "value", 0),
		emitReporter{tag: req.Tag, emit: emit})
	return codec.EncodeSurface(dst), nil
}

func handleDetectEdges(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	// The edge gate only overwrites where the mask response wins, so the
	// destination starts as a copy of the source.
	dst := surfaces.NewMemory(src.Width(), src.Height())
	filters.Copy(src, dst, nil)
	masks.DetectEdges(src, dst, emitReporter{tag: req.Tag, emit: emit})
	return codec.EncodeSurface(dst), nil
}

func handleTranslate(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	dst := surfaces.NewMemory(src.Width(), src.Height())
	fill := paramColor(req, "fillColor", colors.White())
	transform.Translate(src, dst, paramInt(req, "dx", 0), paramInt(req, "dy", 0),
		transform.Options{Fill: &fill, Diag: emitReporter{tag: req.Tag, emit: emit}})
	return codec.EncodeSurface(dst), nil
}

func handleRotate(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	dst := surfaces.NewMemory(src.Width(), src.Height())
	fill := paramColor(req, "fillColor", colors.White())
	transform.Rotate(src, dst,
		paramFloat(req, "px", float32(src.Width())/2),
		paramFloat(req, "py", float32(src.Height())/2),
		paramFloat(req, "angle", 0),
		transform.Options{Fill: &fill, Diag: emitReporter{tag: req.Tag, emit: emit}})
	return codec.EncodeSurface(dst), nil
}

func handleScale(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	sx := paramFloat(req, "sx", 1)
	sy := paramFloat(req, "sy", 1)
	if sx <= 0 || sy <= 0 {
		return "", errors.Errorf("Scale: invalid factors %g,%g", sx, sy)
	}
	dst := surfaces.NewMemory(
		scaledExtent(src.Width(), sx),
		scaledExtent(src.Height(), sy))
	transform.Scale(src, dst, sx, sy,
		transform.Options{Diag: emitReporter{tag: req.Tag, emit: emit}})
	return codec.EncodeSurface(dst), nil
}

func scaledExtent(extent int, factor float32) int {
	scaled := float32(extent) * factor
	out := int(scaled)
	if float32(out) < scaled {
		out++
	}
	return out
}

func handleErosion(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	dst := surfaces.NewMemory(src.Width(), src.Height())
	filters.Erosion(src, dst, filters.ErosionOptions{
		ErosionColor:     paramColor(req, "erosionColor", colors.Black()),
		Threshold:        paramInt(req, "threshold", 4),
		Tolerance:        paramFloat(req, "tolerance", 0),
		NeighborColor:    paramColor(req, "neighborColor", colors.Black()),
		ReplacementColor: paramColor(req, "replacementColor", colors.White()),
		Diag:             emitReporter{tag: req.Tag, emit: emit},
	})
	return codec.EncodeSurface(dst), nil
}

func handleBilinearInterpolate(req Request, _ func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	c, ok := transform.BilinearInterpolate(src,
		paramFloat(req, "x", 0), paramFloat(req, "y", 0))
	if !ok {
		return "null", nil
	}
	return colors.FormatRGBA(c), nil
}

func handleBlend(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	if req.BlendImage == "" {
		return "", errors.New("Blend: missing blend image")
	}
	blendSrc, err := codec.DecodeNewSurface(req.BlendImage)
	if err != nil {
		return "", errors.Wrap(err, "Blend: blend image")
	}
	dst := surfaces.NewMemory(src.Width(), src.Height())
	mode := colors.ParseBlendMode(req.Params["mode"])
	filters.Blend(src, blendSrc, dst, mode, emitReporter{tag: req.Tag, emit: emit})
	return codec.EncodeSurface(dst), nil
}

func handleMaskFilter(req Request, emit func(Response)) (string, error) {
	src, err := sourceSurface(req)
	if err != nil {
		return "", err
	}
	name := req.Params["mask"]
	m, ok := masks.ByName(name)
	if !ok {
		return "", errors.Errorf("MaskFilter: unknown mask %q", name)
	}
	m.Factor = paramFloat(req, "factor", m.Factor)
	m.Bias = paramFloat(req, "bias", m.Bias)
	dst := surfaces.NewMemory(src.Width(), src.Height())
	masks.Apply(src, dst, m, emitReporter{tag: req.Tag, emit: emit})
	return codec.EncodeSurface(dst), nil
}
