package metadata

import "github.com/jpfielding/overlay.go/pkg/dicom/module"

// Accessor reads typed records from a Provider. Absent or mistyped records
// come back as the empty record so callers never branch on presence.
type Accessor struct {
	Provider Provider
}

// NewAccessor wraps p
func NewAccessor(p Provider) Accessor {
	return Accessor{Provider: p}
}

func (a Accessor) get(category Category, imageID string) any {
	if a.Provider == nil || imageID == "" {
		return nil
	}
	return a.Provider.Metadata(category, imageID)
}

// record unwraps either a T or a *T
func record[T any](v any) T {
	switch r := v.(type) {
	case T:
		return r
	case *T:
		if r != nil {
			return *r
		}
	}
	var zero T
	return zero
}

func (a Accessor) Patient(imageID string) module.PatientModule {
	return record[module.PatientModule](a.get(Patient, imageID))
}

func (a Accessor) Study(imageID string) module.GeneralStudyModule {
	return record[module.GeneralStudyModule](a.get(GeneralStudy, imageID))
}

func (a Accessor) Series(imageID string) module.GeneralSeriesModule {
	return record[module.GeneralSeriesModule](a.get(GeneralSeries, imageID))
}

func (a Accessor) ImagePlane(imageID string) module.ImagePlaneModule {
	return record[module.ImagePlaneModule](a.get(ImagePlane, imageID))
}

func (a Accessor) GeneralImage(imageID string) module.GeneralImageModule {
	return record[module.GeneralImageModule](a.get(GeneralImage, imageID))
}

func (a Accessor) Cine(imageID string) module.CineModule {
	return record[module.CineModule](a.get(Cine, imageID))
}

func (a Accessor) VOILUT(imageID string) module.VOILUTModule {
	return record[module.VOILUTModule](a.get(VOILUT, imageID))
}
