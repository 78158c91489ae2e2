package overlay

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/jpfielding/overlay.go/pkg/dicom"
	"github.com/jpfielding/overlay.go/pkg/dicom/module"
	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
	"github.com/jpfielding/overlay.go/pkg/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ip(n int) *int { return &n }

// records is a provider over fixed records for a single image
type records map[metadata.Category]any

func (r records) Metadata(category metadata.Category, imageID string) any {
	if imageID != "img" {
		return nil
	}
	return r[category]
}

func fullRecords() records {
	return records{
		metadata.Patient:       module.PatientModule{PatientName: "Smith^John^Q", PatientID: "P1", PatientSex: "F", PatientAge: "045Y"},
		metadata.GeneralStudy:  module.GeneralStudyModule{StudyDescription: "CT HEAD", StudyDate: "19990405", StudyTime: "142530.123"},
		metadata.GeneralSeries: module.GeneralSeriesModule{SeriesNumber: ip(2), SeriesDescription: "AXIAL"},
		metadata.ImagePlane:    module.ImagePlaneModule{Rows: ip(512), Columns: ip(256), SliceThickness: fp(5), SliceLocation: fp(-12.345)},
		metadata.GeneralImage:  module.GeneralImageModule{InstanceNumber: ip(7), LossyImageCompression: "01", LossyImageCompressionRatio: "10"},
		metadata.Cine:          module.CineModule{FrameTime: fp(40)},
	}
}

func TestRender_Full(t *testing.T) {
	r := NewRenderer(fullRecords())
	ov := r.Render(Props{ImageID: "img", Scale: 1.5, WindowWidth: 400, WindowCenter: 40, ImageIndex: 6, StackSize: 20})
	require.NotNil(t, ov)

	assert.Equal(t, []string{"Smith, John Q", "Feminino - 045Y Ano(s)", "P1"}, ov.TopLeft)
	assert.Equal(t, []string{"CT HEAD", "Seg 5, Abr de 1999", "14:25:30"}, ov.TopRight)
	assert.Equal(t, []string{"Zoom: 150%", "W: 400 L: 40", "Perca: 10.00 : 1"}, ov.BottomRight)
	assert.Equal(t, []string{"Ser: 2", "Img: 7 de 20", "25.00 FPS", "256 x 512", "Loc: -12.35 mm Esp: 5.00 mm", "AXIAL"}, ov.BottomLeft)
	assert.Equal(t, 15, ov.Lines())
}

func TestRender_English(t *testing.T) {
	r := NewRenderer(fullRecords(), WithLocale(English))
	ov := r.Render(Props{ImageID: "img", Scale: 1, WindowWidth: 400, WindowCenter: 40, StackSize: 20})
	require.NotNil(t, ov)
	assert.Equal(t, "Female - 045Y Year(s)", ov.TopLeft[1])
	assert.Equal(t, "Mon 5, Apr of 1999", ov.TopRight[1])
	assert.Equal(t, "Img: 7 of 20", ov.BottomLeft[1])
	assert.Equal(t, "Lossy: 10.00 : 1", ov.BottomRight[2])
}

func TestRender_NoImage(t *testing.T) {
	r := NewRenderer(fullRecords())
	ov := r.Render(Props{Scale: 1, StackSize: 3})
	assert.Nil(t, ov)
	assert.Nil(t, ov.Regions())
	assert.Equal(t, 0, ov.Lines())

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, ov))
	require.NoError(t, WriteText(&buf, ov, 80))
	assert.Empty(t, buf.String())
}

func TestRender_MissingMetadata(t *testing.T) {
	r := NewRenderer(records{})
	ov := r.Render(Props{ImageID: "img", Scale: 1, WindowWidth: math.NaN(), WindowCenter: 40, StackSize: 1})
	require.NotNil(t, ov)
	assert.Equal(t, []string{"Masculino"}, ov.TopLeft)
	assert.Empty(t, ov.TopRight)
	assert.Equal(t, []string{"Zoom: 100%", "Sem perca / Não comprimido"}, ov.BottomRight)
	assert.Empty(t, ov.BottomLeft)
}

func TestRender_SingleImageStack(t *testing.T) {
	r := NewRenderer(fullRecords())
	ov := r.Render(Props{ImageID: "img", Scale: 1, StackSize: 1})
	require.NotNil(t, ov)
	for _, line := range ov.BottomLeft {
		assert.NotContains(t, line, "Img:")
	}
}

func TestRender_BottomLeftRules(t *testing.T) {
	rec := fullRecords()
	rec[metadata.GeneralSeries] = module.GeneralSeriesModule{SeriesNumber: ip(-1)}
	rec[metadata.GeneralImage] = module.GeneralImageModule{}
	rec[metadata.ImagePlane] = module.ImagePlaneModule{Rows: ip(512), SliceThickness: fp(0), SliceLocation: fp(math.NaN())}
	rec[metadata.Cine] = module.CineModule{FrameTime: fp(0)}

	ov := NewRenderer(rec).Render(Props{ImageID: "img", Scale: 1, ImageIndex: 1, StackSize: 3})
	require.NotNil(t, ov)
	// instance number falls back to the stack position
	assert.Equal(t, []string{"Img: 2 de 3"}, ov.BottomLeft)

	rec[metadata.GeneralSeries] = module.GeneralSeriesModule{SeriesNumber: ip(0)}
	rec[metadata.ImagePlane] = module.ImagePlaneModule{SliceThickness: fp(2.5)}
	ov = NewRenderer(rec).Render(Props{ImageID: "img", Scale: 1, StackSize: 1})
	assert.Equal(t, []string{"Ser: 0", "Esp: 2.50 mm"}, ov.BottomLeft)
}

func TestRender_FromStore(t *testing.T) {
	series := module.GeneralSeriesModule{SeriesNumber: ip(4), SeriesDescription: "SAG T1"}
	plane := module.ImagePlaneModule{Rows: ip(256), Columns: ip(256), SliceLocation: fp(10)}
	ds, err := dicom.NewDataset(
		dicom.WithElement(tag.SOPInstanceUID, "1.2.3"),
		dicom.WithElement(tag.PatientName, "Doe^Jane"),
		dicom.WithModule(series.ToTags()),
		dicom.WithModule(plane.ToTags()),
	)
	require.NoError(t, err)
	store := metadata.NewStore()
	id, err := store.Add(context.Background(), ds)
	require.NoError(t, err)

	ov := NewRenderer(metadata.NewRegistry(store)).Render(Props{ImageID: id, Scale: 2, WindowWidth: 1500, WindowCenter: -600, StackSize: 1})
	require.NotNil(t, ov)
	assert.Equal(t, "Doe, Jane", ov.TopLeft[0])
	assert.Equal(t, []string{"Zoom: 200%", "W: 1500 L: -600", "Sem perca / Não comprimido"}, ov.BottomRight)
	assert.Equal(t, []string{"Ser: 4", "256 x 256", "Loc: 10.00 mm", "SAG T1"}, ov.BottomLeft)
}
