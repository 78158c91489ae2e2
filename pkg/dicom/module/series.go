package module

import "github.com/jpfielding/overlay.go/pkg/dicom/tag"

// GeneralSeriesModule is the "generalSeriesModule" metadata record
type GeneralSeriesModule struct {
	Modality          string
	SeriesInstanceUID string
	SeriesNumber      *int
	SeriesDescription string
}

func (m *GeneralSeriesModule) ToTags() []IODElement {
	return nonEmpty(
		IODElement{Tag: tag.Modality, Value: m.Modality},
		IODElement{Tag: tag.SeriesInstanceUID, Value: m.SeriesInstanceUID},
		IODElement{Tag: tag.SeriesNumber, Value: m.SeriesNumber},
		IODElement{Tag: tag.SeriesDescription, Value: m.SeriesDescription},
	)
}

func (m *GeneralSeriesModule) SetSeriesInstanceUID(uid string) {
	m.SeriesInstanceUID = uid
}
