package module

import (
	"strings"

	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
)

// VOILUTModule carries the linear window/level presets of an image
// Per DICOM Part 3 Section C.11.2
type VOILUTModule struct {
	Windows []WindowLevel
}

// WindowLevel represents a single window/level preset
type WindowLevel struct {
	Center      float64 // Window center value
	Width       float64 // Window width value
	Explanation string  // Optional description (e.g., "BONE", "SOFT TISSUE")
}

// NewVOILUTModuleForCT creates presets for common CT viewing windows
func NewVOILUTModuleForCT() *VOILUTModule {
	return &VOILUTModule{
		Windows: []WindowLevel{
			{Center: 40, Width: 400, Explanation: "SOFT_TISSUE"},
			{Center: 400, Width: 2000, Explanation: "BONE"},
			{Center: -600, Width: 1500, Explanation: "LUNG"},
			{Center: 50, Width: 350, Explanation: "BRAIN"},
		},
	}
}

// AddWindow adds a window/level preset
func (m *VOILUTModule) AddWindow(center, width float64, explanation string) {
	m.Windows = append(m.Windows, WindowLevel{
		Center:      center,
		Width:       width,
		Explanation: explanation,
	})
}

// Default returns the first preset, which viewers apply on load
func (m *VOILUTModule) Default() (WindowLevel, bool) {
	if len(m.Windows) == 0 {
		return WindowLevel{}, false
	}
	return m.Windows[0], true
}

// ToTags converts the module to DICOM tag elements
func (m *VOILUTModule) ToTags() []IODElement {
	if len(m.Windows) == 0 {
		return nil
	}
	centers := make([]float64, len(m.Windows))
	widths := make([]float64, len(m.Windows))
	explanations := make([]string, len(m.Windows))
	for i, w := range m.Windows {
		centers[i] = w.Center
		widths[i] = w.Width
		explanations[i] = w.Explanation
	}
	elements := []IODElement{
		{Tag: tag.WindowCenter, Value: centers},
		{Tag: tag.WindowWidth, Value: widths},
	}
	// Window Center/Width Explanation is optional
	if hasExplanations(m.Windows) {
		elements = append(elements, IODElement{Tag: tag.WindowCenterWidthExplanation, Value: strings.Join(explanations, "\\")})
	}
	return elements
}

// hasExplanations checks if any window has an explanation
func hasExplanations(windows []WindowLevel) bool {
	for _, w := range windows {
		if w.Explanation != "" {
			return true
		}
	}
	return false
}
