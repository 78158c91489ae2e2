package overlay

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	ov := &Overlay{
		TopLeft:     []string{"A", "BB"},
		TopRight:    []string{"X"},
		BottomLeft:  []string{"L1", "L2", "L3"},
		BottomRight: []string{"R"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, ov, 10))
	assert.Equal(t, "A        X\nBB\n\nL1\nL2\nL3       R\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteText(&buf, &Overlay{TopLeft: []string{"long left"}, TopRight: []string{"right"}}, 5))
	assert.Equal(t, "long left right\n\n", buf.String())
}

func TestWriteHTML(t *testing.T) {
	ov := &Overlay{TopLeft: []string{"Doe, Jane"}, BottomRight: []string{"<b>"}}
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, ov))
	out := buf.String()
	assert.Contains(t, out, `<div class="ViewportOverlay">`)
	assert.Contains(t, out, `<div class="top-left overlay-element"><div>Doe, Jane</div></div>`)
	assert.Contains(t, out, `<div class="bottom-right overlay-element"><div>&lt;b&gt;</div></div>`)
	assert.Contains(t, out, `<div class="bottom-left overlay-element"></div>`)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "null\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, &Overlay{ImageID: "1.2.3", TopLeft: []string{"x"}}))
	assert.Contains(t, buf.String(), `"imageId": "1.2.3"`)
	assert.Contains(t, buf.String(), `"topLeft": [`)
}

func TestEncodeWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := EncodeWriter(&buf, "latin1")
	require.NoError(t, err)
	_, err = w.Write([]byte("Não"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, []byte{'N', 0xE3, 'o'}, buf.Bytes())

	buf.Reset()
	w, err = EncodeWriter(&buf, "UTF-8")
	require.NoError(t, err)
	_, err = w.Write([]byte("Não"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "Não", buf.String())

	_, err = EncodeWriter(&buf, "ebcdic")
	assert.Error(t, err)
}
