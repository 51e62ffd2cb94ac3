// Package tasks is the command surface consumed by external task runners:
// it maps named commands plus serialized arguments to engine calls and
// serializes the results, keeping all routing glue outside the engine's own
// package boundary.
package tasks

import "fmt"

// TypeFilter is the only defined request type.
const TypeFilter = "Filter"

// Command names one engine operation.
type Command string

const (
	CmdCopy                Command = "Copy"
	CmdHistogram           Command = "Histogram"
	CmdSumHistogram        Command = "SumHistogram"
	CmdEqualize            Command = "Equalize"
	CmdGrayscale           Command = "Grayscale"
	CmdInvert              Command = "Invert"
	CmdThreshold           Command = "Threshold"
	CmdAssignChannelValue  Command = "AssignChannelValue"
	CmdDetectEdges         Command = "DetectEdges"
	CmdTranslate           Command = "Translate"
	CmdRotate              Command = "Rotate"
	CmdScale               Command = "Scale"
	CmdErosion             Command = "Erosion"
	CmdBilinearInterpolate Command = "BilinearInterpolate"
	CmdBlend               Command = "Blend"
	CmdMaskFilter          Command = "MaskFilter"
)

// Request is one unit of work for the adapter.
type Request struct {
	// Type must be TypeFilter.
	Type string `json:"type"`
	// Cmd names the engine operation to run.
	Cmd Command `json:"cmd"`
	// Tag is opaque to the adapter and echoed back on every response,
	// including progress and log messages.
	Tag string `json:"tag"`
	// Image is the serialized primary source surface.
	Image string `json:"image,omitempty"`
	// BlendImage is the serialized second surface, used by Blend.
	BlendImage string `json:"blendImage,omitempty"`
	// Params carries operation-specific scalars and color strings
	// ("rgba(r,g,b,a)" style).
	Params map[string]string `json:"params,omitempty"`
}

// Response kinds besides results.
const (
	ResponseProgress = "Progress"
	ResponseLog      = "Log"
	ResponseError    = "Error"
)

// Response is one message posted back to the caller.
type Response struct {
	// Cmd is "Result<Name>Filter" for results, or Progress/Log/Error.
	Cmd string `json:"cmd"`
	// Tag echoes the request's tag.
	Tag string `json:"tag"`
	// Filter names the running filter on Progress and Log responses.
	Filter string `json:"filter,omitempty"`
	// Payload holds the serialized result, or the log message.
	Payload string `json:"payload,omitempty"`
	// Progress is the completion percentage on Progress responses.
	Progress int `json:"progress,omitempty"`
	// Error describes an adapter-level failure on Error responses.
	Error string `json:"error,omitempty"`
}

// ResultCommand returns the response command name for a request command,
// e.g. "ResultCopyFilter" for Copy.
func ResultCommand(cmd Command) string {
	return fmt.Sprintf("Result%sFilter", cmd)
}
