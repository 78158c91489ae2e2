package module

import (
	"math"

	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
)

// CineModule is the "cineModule" metadata record
type CineModule struct {
	FrameTime *float64 // ms per frame
}

func (m *CineModule) ToTags() []IODElement {
	return nonEmpty(IODElement{Tag: tag.FrameTime, Value: m.FrameTime})
}

// FrameRate returns frames per second, NaN when FrameTime is absent and
// +Inf when it is zero
func (m *CineModule) FrameRate() float64 {
	if m.FrameTime == nil {
		return math.NaN()
	}
	return 1000 / *m.FrameTime
}
