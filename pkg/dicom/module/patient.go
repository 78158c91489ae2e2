package module

import "github.com/jpfielding/overlay.go/pkg/dicom/tag"

// PatientModule is the "patient" metadata record
type PatientModule struct {
	PatientName string // packed PN, Family^Given^Middle^Prefix^Suffix
	PatientID   string
	PatientSex  string // M, F, O
	PatientAge  string // AS, e.g. 045Y
}

func (m *PatientModule) ToTags() []IODElement {
	return nonEmpty(
		IODElement{Tag: tag.PatientName, Value: m.PatientName},
		IODElement{Tag: tag.PatientID, Value: m.PatientID},
		IODElement{Tag: tag.PatientSex, Value: m.PatientSex},
		IODElement{Tag: tag.PatientAge, Value: m.PatientAge},
	)
}

// SetPatientName sets the patient's name
func (m *PatientModule) SetPatientName(first, last, middle, prefix, suffix string) {
	m.PatientName = PersonName{
		GivenName:  first,
		FamilyName: last,
		MiddleName: middle,
		Prefix:     prefix,
		Suffix:     suffix,
	}.String()
}

// nonEmpty drops elements whose value is absent: empty strings and nil pointers
func nonEmpty(elems ...IODElement) []IODElement {
	out := make([]IODElement, 0, len(elems))
	for _, e := range elems {
		switch v := e.Value.(type) {
		case string:
			if v == "" {
				continue
			}
		case *int:
			if v == nil {
				continue
			}
			e.Value = *v
		case *float64:
			if v == nil {
				continue
			}
			e.Value = *v
		case []float64:
			if len(v) == 0 {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}
