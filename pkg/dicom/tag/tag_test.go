package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	got, err := ParseKey("00100010")
	require.NoError(t, err)
	assert.Equal(t, PatientName, got)
	assert.Equal(t, "00100010", got.Key())
	assert.Equal(t, "(0010,0010)", got.String())

	got, err = ParseKey("0008103e")
	require.NoError(t, err)
	assert.Equal(t, SeriesDescription, got)

	_, err = ParseKey("0010")
	assert.Error(t, err)
	_, err = ParseKey("0010zz10")
	assert.Error(t, err)
}

func TestLess(t *testing.T) {
	assert.True(t, PatientName.Less(PatientID))
	assert.True(t, StudyDate.Less(PatientName))
	assert.False(t, Rows.Less(Rows))
}

func TestLookupName(t *testing.T) {
	assert.Equal(t, "FrameTime", FrameTime.LookupName())
	assert.Equal(t, "", New(0x0009, 0x0001).LookupName())
	assert.True(t, New(0x0009, 0x0001).IsPrivate())
}
