package dicom

import (
	"github.com/jpfielding/overlay.go/pkg/dicom/module"
	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
	"github.com/jpfielding/overlay.go/pkg/dicom/vr"
)

// Option configures a Dataset during construction
type Option func(*Dataset) error

// NewDataset creates a Dataset with the given options
func NewDataset(opts ...Option) (*Dataset, error) {
	ds := &Dataset{Elements: make(map[Tag]*Element)}
	for _, opt := range opts {
		if err := opt(ds); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// WithElement adds a single element to the dataset, taking the VR from the tag
func WithElement(t tag.Tag, value interface{}) Option {
	return WithVR(t, vr.ForTag(t), value)
}

// WithVR adds a single element with an explicit VR
func WithVR(t tag.Tag, v vr.VR, value interface{}) Option {
	return func(ds *Dataset) error {
		ds.Elements[t] = &Element{
			Tag:   t,
			VR:    v,
			Value: value,
		}
		return nil
	}
}

// WithSequence adds a sequence element to the dataset
func WithSequence(t tag.Tag, items ...*Dataset) Option {
	return WithVR(t, vr.SQ, items)
}

// WithModule adds all elements from a module's ToTags() result
func WithModule(tags []module.IODElement) Option {
	return func(ds *Dataset) error {
		for _, el := range tags {
			if err := WithElement(el.Tag, el.Value)(ds); err != nil {
				return err
			}
		}
		return nil
	}
}
