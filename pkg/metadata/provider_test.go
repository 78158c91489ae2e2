package metadata

import (
	"testing"
	"time"

	"github.com/jpfielding/overlay.go/pkg/dicom/module"
	"github.com/stretchr/testify/assert"
)

func patientProvider(name string) ProviderFunc {
	return func(category Category, imageID string) any {
		if category != Patient || imageID != "img-1" {
			return nil
		}
		return module.PatientModule{PatientName: name}
	}
}

func TestRegistryPriority(t *testing.T) {
	r := NewRegistry(patientProvider("low^first"))
	r.AddProvider(patientProvider("low^second"), 0)
	assert.Equal(t, "low^first", NewAccessor(r).Patient("img-1").PatientName)

	r.AddProvider(patientProvider("high"), 10)
	assert.Equal(t, "high", NewAccessor(r).Patient("img-1").PatientName)

	assert.Nil(t, r.Metadata(Cine, "img-1"))
	assert.Nil(t, r.Metadata(Patient, "other"))
}

func TestAccessorDefaults(t *testing.T) {
	var empty Accessor
	assert.Equal(t, module.PatientModule{}, empty.Patient("img-1"))

	ft := 40.0
	acc := NewAccessor(ProviderFunc(func(category Category, imageID string) any {
		switch category {
		case Cine:
			return &module.CineModule{FrameTime: &ft}
		case ImagePlane:
			return (*module.ImagePlaneModule)(nil)
		case Patient:
			return "not a record"
		}
		return nil
	}))
	assert.Equal(t, &ft, acc.Cine("img-1").FrameTime)
	assert.Equal(t, module.ImagePlaneModule{}, acc.ImagePlane("img-1"))
	assert.Equal(t, module.PatientModule{}, acc.Patient("img-1"))
	assert.Equal(t, module.GeneralStudyModule{}, acc.Study("img-1"))
	// no image, no lookup
	assert.Equal(t, module.CineModule{}, acc.Cine(""))
}

func TestRegistryProviderRegistersLazily(t *testing.T) {
	r := NewRegistry()
	var once bool
	r.AddProvider(ProviderFunc(func(category Category, imageID string) any {
		if !once {
			once = true
			r.AddProvider(patientProvider("lazy"), 5)
		}
		return nil
	}), 0)

	done := make(chan any)
	go func() {
		done <- r.Metadata(Patient, "img-1")
	}()
	select {
	case rec := <-done:
		// the provider added during the call is asked on the next lookup
		assert.Nil(t, rec)
	case <-time.After(2 * time.Second):
		t.Fatal("registry lookup blocked while a provider registered another")
	}
	assert.Equal(t, "lazy", NewAccessor(r).Patient("img-1").PatientName)
}
