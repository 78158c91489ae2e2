package module

import (
	"time"

	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
)

// CTImageStorage is the SOP Class UID of CT Image Storage
const CTImageStorage = "1.2.840.10008.5.1.4.1.1.2"

// SOPCommonModule identifies an instance and the character set of its text values
type SOPCommonModule struct {
	SOPClassUID          string
	SOPInstanceUID       string
	SpecificCharacterSet string
	InstanceCreationDate Date
	InstanceCreationTime Time
}

func NewSOPCommonModule(classUID, instanceUID string) SOPCommonModule {
	t := time.Now()
	return SOPCommonModule{
		SOPClassUID:          classUID,
		SOPInstanceUID:       instanceUID,
		SpecificCharacterSet: "ISO_IR 100", // Latin 1
		InstanceCreationDate: NewDate(t),
		InstanceCreationTime: NewTime(t),
	}
}

// ToTags leaves the creation date and time out when the date is unset
func (m *SOPCommonModule) ToTags() []IODElement {
	var date, tm string
	if m.InstanceCreationDate != (Date{}) {
		date = m.InstanceCreationDate.String()
		tm = m.InstanceCreationTime.String()
	}
	return nonEmpty(
		IODElement{Tag: tag.SOPClassUID, Value: m.SOPClassUID},
		IODElement{Tag: tag.SOPInstanceUID, Value: m.SOPInstanceUID},
		IODElement{Tag: tag.SpecificCharacterSet, Value: m.SpecificCharacterSet},
		IODElement{Tag: tag.InstanceCreationDate, Value: date},
		IODElement{Tag: tag.InstanceCreationTime, Value: tm},
	)
}
