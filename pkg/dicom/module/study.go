package module

import (
	"time"

	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
)

// GeneralStudyModule is the "generalStudyModule" metadata record
type GeneralStudyModule struct {
	StudyInstanceUID string
	StudyDate        string // packed DA
	StudyTime        string // packed TM
	StudyDescription string
}

func NewGeneralStudyModule() GeneralStudyModule {
	t := time.Now()
	return GeneralStudyModule{
		StudyDate: NewDate(t).String(),
		StudyTime: NewTime(t).String(),
	}
}

func (m *GeneralStudyModule) ToTags() []IODElement {
	return nonEmpty(
		IODElement{Tag: tag.StudyInstanceUID, Value: m.StudyInstanceUID},
		IODElement{Tag: tag.StudyDate, Value: m.StudyDate},
		IODElement{Tag: tag.StudyTime, Value: m.StudyTime},
		IODElement{Tag: tag.StudyDescription, Value: m.StudyDescription},
	)
}
