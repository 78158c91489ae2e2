package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfielding/overlay.go/pkg/dicom"
	"github.com/jpfielding/overlay.go/pkg/overlay"
)

func writeSample(t *testing.T, opts sampleOptions) string {
	t.Helper()
	datasets, err := buildSample(opts)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "series.json")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, dicom.WriteJSON(f, datasets))
	return path
}

func TestBuildSample(t *testing.T) {
	datasets, err := buildSample(sampleOptions{Frames: 3, FrameTime: 40})
	require.NoError(t, err)
	require.Len(t, datasets, 3)
	assert.Equal(t, 3, dicom.GetInstanceNumber(datasets[2]))
	assert.NotEqual(t, dicom.GetSOPInstanceUID(datasets[0]), dicom.GetSOPInstanceUID(datasets[1]))
	assert.True(t, strings.HasPrefix(dicom.GetSOPInstanceUID(datasets[0]), "2.25."))

	_, err = buildSample(sampleOptions{})
	assert.Error(t, err)
}

func TestRunRender_JSON(t *testing.T) {
	path := writeSample(t, sampleOptions{Frames: 4, FrameTime: 40, Lossy: true})
	metricsPath := filepath.Join(t.TempDir(), "overlay.prom")

	var buf bytes.Buffer
	err := runRender(context.Background(), &buf, renderOptions{
		File: path, Index: 1, Scale: 1.5, Format: "json", Charset: "utf-8", Locale: "pt-BR",
		MetricsOut: metricsPath,
	})
	require.NoError(t, err)

	var ov overlay.Overlay
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ov))
	assert.Equal(t, []string{"Silva, Maria", "Feminino - 042Y Ano(s)", "OVL-0001"}, ov.TopLeft)
	assert.Equal(t, []string{"Zoom: 150%", "W: 400 L: 40", "Perca: 10.00 : 1"}, ov.BottomRight)
	assert.Equal(t, []string{
		"Ser: 2",
		"Img: 2 de 4",
		"25.00 FPS",
		"512 x 512",
		"Loc: 2.50 mm Esp: 2.50 mm",
		"Axial 2.5mm",
	}, ov.BottomLeft)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `overlay_renders_total{state="rendered"} 1`)
}

func TestRunRender_WindowOverride(t *testing.T) {
	path := writeSample(t, sampleOptions{Frames: 1})
	ww, wc := 1500.0, -600.0

	var buf bytes.Buffer
	err := runRender(context.Background(), &buf, renderOptions{
		File: path, Scale: 1, WW: &ww, WC: &wc, Format: "json", Locale: "en",
	})
	require.NoError(t, err)

	var ov overlay.Overlay
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ov))
	assert.Contains(t, ov.BottomRight, "W: 1500 L: -600")
	assert.Contains(t, ov.BottomRight, "Lossless / Uncompressed")
	for _, line := range ov.BottomLeft {
		assert.False(t, strings.HasPrefix(line, "Img"), "single image stack has no Img line")
	}
}

func TestRunRender_TextLatin1(t *testing.T) {
	path := writeSample(t, sampleOptions{Frames: 1})

	var buf bytes.Buffer
	err := runRender(context.Background(), &buf, renderOptions{
		File: path, Scale: 1, Format: "text", Width: 60, Charset: "latin1", Locale: "pt-BR",
	})
	require.NoError(t, err)
	// ã is 0xE3 in latin1
	assert.Contains(t, buf.String(), "Sem perca / N\xe3o comprimido")
}

func TestRunRender_Errors(t *testing.T) {
	path := writeSample(t, sampleOptions{Frames: 2})
	ctx := context.Background()

	err := runRender(ctx, &bytes.Buffer{}, renderOptions{File: path, Index: 5, Format: "json", Locale: "pt-BR"})
	assert.ErrorContains(t, err, "out of range")

	err = runRender(ctx, &bytes.Buffer{}, renderOptions{File: path, Format: "json", Locale: "xx"})
	assert.Error(t, err)

	err = runRender(ctx, &bytes.Buffer{}, renderOptions{File: path, Format: "yaml", Locale: "pt-BR"})
	assert.ErrorContains(t, err, "unknown format")

	err = runRender(ctx, &bytes.Buffer{}, renderOptions{File: filepath.Join(t.TempDir(), "missing.json"), Format: "json", Locale: "pt-BR"})
	assert.Error(t, err)
}

func TestResolveFormat(t *testing.T) {
	assert.Equal(t, "json", resolveFormat("auto", &bytes.Buffer{}))
	assert.Equal(t, "html", resolveFormat("html", &bytes.Buffer{}))
}

func TestRootVersion(t *testing.T) {
	root := NewRoot(context.Background(), "abc123")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "abc123\n", buf.String())
}

func TestRunDump(t *testing.T) {
	path := writeSample(t, sampleOptions{Frames: 2})

	var buf bytes.Buffer
	require.NoError(t, runDump(context.Background(), &buf, path, "text"))
	out := buf.String()
	assert.Contains(t, out, "=== 0 2.25.")
	assert.Contains(t, out, "[(0010,0010)] PN PatientName: Silva^Maria")
	assert.Contains(t, out, "[(0020,0013)] IS InstanceNumber: 2")

	buf.Reset()
	require.NoError(t, runDump(context.Background(), &buf, path, "json"))
	datasets, err := dicom.ParseJSON(&buf)
	require.NoError(t, err)
	assert.Len(t, datasets, 2)
	assert.Equal(t, 1, dicom.GetInstanceNumber(datasets[0]))

	assert.Error(t, runDump(context.Background(), &bytes.Buffer{}, path, "xml"))
}

func TestRootLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "overlayctl.log")
	root := NewRoot(context.Background(), "abc123")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"version", "--log-file", logPath, "--log-level", "loud"})
	require.NoError(t, root.Execute())
	// the file is closed and detached from the default logger after the command
	slog.Warn("after close")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Invalid log level")
	assert.NotContains(t, string(data), "after close")
}

func TestRunRender_MalformedNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "00080018": {"vr": "UI", "Value": ["1.2.3"]},
  "00100010": {"vr": "PN", "Value": [{"Alphabetic": "Doe^Jane"}]},
  "00181050": {"vr": "DS", "Value": ["unknown"]},
  "00282110": {"vr": "CS", "Value": ["01"]},
  "00282112": {"vr": "DS", "Value": [""]}
}`), 0o644))

	var buf bytes.Buffer
	err := runRender(context.Background(), &buf, renderOptions{File: path, Scale: 1, Format: "json", Locale: "pt-BR"})
	require.NoError(t, err)

	var ov overlay.Overlay
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ov))
	assert.Equal(t, "Doe, Jane", ov.TopLeft[0])
	assert.Equal(t, []string{"Zoom: 100%", "Sem perca / Não comprimido"}, ov.BottomRight)
}
