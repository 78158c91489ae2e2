package dicom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
	"github.com/jpfielding/overlay.go/pkg/dicom/vr"
)

func TestDatasetString(t *testing.T) {
	item, err := NewDataset(WithElement(tag.Modality, "CT"))
	require.NoError(t, err)
	ds, err := NewDataset(
		WithElement(tag.Rows, 512),
		WithElement(tag.PatientName, "Doe^Jane"),
		WithElement(tag.PixelSpacing, []float64{0.5, 0.5}),
		WithSequence(tag.Tag{Group: 0x0008, Element: 0x1140}, item),
		WithVR(tag.Tag{Group: 0x7FE0, Element: 0x0010}, vr.OB, BulkData{BulkDataURI: "http://host/frames/1"}),
		WithVR(tag.Tag{Group: 0x0009, Element: 0x0010}, vr.LO, nil),
	)
	require.NoError(t, err)

	assert.Equal(t,
		"[(0008,1140)] SQ: Sequence (1 items)\n"+
			"[(0009,0010)] LO: <empty>\n"+
			"[(0010,0010)] PN PatientName: Doe^Jane\n"+
			"[(0028,0010)] US Rows: 512\n"+
			"[(0028,0030)] DS PixelSpacing: 0.5\\0.5\n"+
			"[(7FE0,0010)] OB: Bulk Data http://host/frames/1\n",
		ds.String())

	var nilDS *Dataset
	assert.Equal(t, "<nil>", nilDS.String())
}
