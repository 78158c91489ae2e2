package module

import "github.com/jpfielding/overlay.go/pkg/dicom/tag"

// ImagePlaneModule is the "imagePlaneModule" metadata record
type ImagePlaneModule struct {
	Rows           *int
	Columns        *int
	SliceThickness *float64 // mm
	SliceLocation  *float64 // mm
	PixelSpacing   []float64
}

func (m *ImagePlaneModule) ToTags() []IODElement {
	return nonEmpty(
		IODElement{Tag: tag.Rows, Value: m.Rows},
		IODElement{Tag: tag.Columns, Value: m.Columns},
		IODElement{Tag: tag.SliceThickness, Value: m.SliceThickness},
		IODElement{Tag: tag.SliceLocation, Value: m.SliceLocation},
		IODElement{Tag: tag.PixelSpacing, Value: m.PixelSpacing},
	)
}
