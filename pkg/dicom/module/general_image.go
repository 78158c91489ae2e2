package module

import "github.com/jpfielding/overlay.go/pkg/dicom/tag"

// Lossy Image Compression (0028,2110) codes
const (
	LosslessCompression = "00"
	LossyCompression    = "01"
)

// GeneralImageModule is the "generalImageModule" metadata record
type GeneralImageModule struct {
	InstanceNumber              *int
	LossyImageCompression       string // 00 or 01
	LossyImageCompressionRatio  string // DS, possibly multi-valued
	LossyImageCompressionMethod string
}

func (m *GeneralImageModule) ToTags() []IODElement {
	return nonEmpty(
		IODElement{Tag: tag.InstanceNumber, Value: m.InstanceNumber},
		IODElement{Tag: tag.LossyImageCompression, Value: m.LossyImageCompression},
		IODElement{Tag: tag.LossyImageCompressionRatio, Value: m.LossyImageCompressionRatio},
		IODElement{Tag: tag.LossyImageCompressionMethod, Value: m.LossyImageCompressionMethod},
	)
}
