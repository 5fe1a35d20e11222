package plycloud

import "fmt"

// SkipReason tells why an element was not installed into the point cloud.
type SkipReason uint8

const (
	// SkipEdge marks an "edge" element; the file probably holds a graph.
	SkipEdge SkipReason = iota + 1
	// SkipFace marks a "face" element; the file probably holds a mesh.
	SkipFace
	// SkipUnknown marks any other non-vertex element.
	SkipUnknown
)

func (r SkipReason) String() string {
	switch r {
	case SkipEdge:
		return "edge"
	case SkipFace:
		return "face"
	case SkipUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("SkipReason(%d)", r)
	}
}

// Hint returns the human readable diagnostic for the reason.
func (r SkipReason) Hint() string {
	switch r {
	case SkipEdge:
		return "ignored, is it a graph?"
	case SkipFace:
		return "ignored, is it a mesh?"
	default:
		return "unknown element ignored"
	}
}

func skipReason(elementName string) SkipReason {
	switch elementName {
	case "edge":
		return SkipEdge
	case "face":
		return SkipFace
	default:
		return SkipUnknown
	}
}

// Observer receives the advisory diagnostics of Load and Save.
// Diagnostics never change the outcome of an operation.
type Observer interface {
	// ElementSkipped is called for every element of a loaded file other
	// than "vertex".
	ElementSkipped(name string, reason SkipReason)
	// ASCIIWrite is called before a file is written in ASCII format.
	ASCIIWrite(path string)
}

// NoopObserver discards all diagnostics.
type NoopObserver struct{}

func (NoopObserver) ElementSkipped(string, SkipReason) {}
func (NoopObserver) ASCIIWrite(string)                 {}

// LogObserver reports diagnostics through a Logger.
type LogObserver struct {
	logger *Logger
}

// NewLogObserver creates an observer writing to logger.
// A nil logger uses NewLogger(nil).
func NewLogObserver(logger *Logger) *LogObserver {
	if logger == nil {
		logger = NewLogger(nil)
	}
	return &LogObserver{logger: logger}
}

// ElementSkipped implements Observer.
func (o *LogObserver) ElementSkipped(name string, reason SkipReason) {
	o.logger.Warn(reason.Hint(),
		"element", name,
		"reason", reason.String(),
	)
}

// ASCIIWrite implements Observer.
func (o *LogObserver) ASCIIWrite(path string) {
	o.logger.Debug("you're writing an ASCII ply file, use binary format for better performance",
		"path", path,
	)
}
