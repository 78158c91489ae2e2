package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jpfielding/overlay.go/pkg/dicom"
	"github.com/jpfielding/overlay.go/pkg/metadata"
	"github.com/jpfielding/overlay.go/pkg/metrics"
	"github.com/jpfielding/overlay.go/pkg/overlay"
)

// renderOptions are the flags of the render command
type renderOptions struct {
	File       string
	Index      int
	Scale      float64
	WW, WC     *float64 // nil falls back to the image's VOI LUT
	Format     string
	Width      int
	Charset    string
	Locale     string
	MetricsOut string
}

// NewRenderCmd renders the overlay of one image of a DICOM JSON series
func NewRenderCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "render the viewport overlay of an image",
		Long:  "Loads DICOM JSON instance metadata, orders the instances into a stack and renders the overlay of the image at --index.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := renderOptions{}
			opts.File, _ = cmd.Flags().GetString("file")
			opts.Index, _ = cmd.Flags().GetInt("index")
			opts.Scale, _ = cmd.Flags().GetFloat64("scale")
			opts.Format, _ = cmd.Flags().GetString("format")
			opts.Width, _ = cmd.Flags().GetInt("width")
			opts.Charset, _ = cmd.Flags().GetString("charset")
			opts.Locale, _ = cmd.Flags().GetString("locale")
			opts.MetricsOut, _ = cmd.Flags().GetString("metrics-out")
			if opts.File == "" && len(args) > 0 {
				opts.File = args[0]
			}
			if cmd.Flags().Changed("ww") {
				ww, _ := cmd.Flags().GetFloat64("ww")
				opts.WW = &ww
			}
			if cmd.Flags().Changed("wc") {
				wc, _ := cmd.Flags().GetFloat64("wc")
				opts.WC = &wc
			}
			if opts.File == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}
			return runRender(ctx, cmd.OutOrStdout(), opts)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "DICOM JSON file, - for stdin")
	pf.IntP("index", "i", 0, "index of the image in the stack")
	pf.Float64("scale", 1, "viewport zoom, 1 is 100%")
	pf.Float64("ww", math.NaN(), "window width, defaults to the image's VOI LUT")
	pf.Float64("wc", math.NaN(), "window center, defaults to the image's VOI LUT")
	pf.String("format", "auto", "output format (auto|text|json|html)")
	pf.Int("width", 80, "text layout width")
	pf.String("charset", "utf-8", "output charset (utf-8|latin1)")
	pf.String("locale", "pt-BR", "display locale (pt-BR|en)")
	pf.String("metrics-out", "", "write prometheus metrics to this textfile")
	return cmd
}

func loadDatasets(path string) ([]*dicom.Dataset, error) {
	if path == "-" {
		return dicom.ParseJSON(os.Stdin)
	}
	return dicom.ReadJSONFile(path)
}

func runRender(ctx context.Context, w io.Writer, opts renderOptions) error {
	locale, err := overlay.LookupLocale(opts.Locale)
	if err != nil {
		return err
	}
	datasets, err := loadDatasets(opts.File)
	if err != nil {
		return fmt.Errorf("loading %s: %w", opts.File, err)
	}
	store := metadata.NewStore()
	if _, err := store.AddAll(ctx, datasets); err != nil {
		return fmt.Errorf("indexing %s: %w", opts.File, err)
	}

	m := metrics.New(prometheus.NewRegistry())
	registry := metadata.NewRegistry()
	registry.AddProvider(m.InstrumentProvider(store), 0)
	renderer := overlay.NewRenderer(registry, overlay.WithLocale(locale))

	stack := store.Stack()
	props := overlay.Props{
		Scale:        opts.Scale,
		WindowWidth:  math.NaN(),
		WindowCenter: math.NaN(),
		ImageIndex:   opts.Index,
		StackSize:    len(stack),
	}
	if len(stack) > 0 {
		if opts.Index < 0 || opts.Index >= len(stack) {
			return fmt.Errorf("index %d out of range, stack has %d images", opts.Index, len(stack))
		}
		props.ImageID = stack[opts.Index]
	}
	voi := renderer.Accessor.VOILUT(props.ImageID)
	if win, ok := voi.Default(); ok {
		props.WindowWidth, props.WindowCenter = win.Width, win.Center
	}
	if opts.WW != nil {
		props.WindowWidth = *opts.WW
	}
	if opts.WC != nil {
		props.WindowCenter = *opts.WC
	}
	slog.DebugContext(ctx, "rendering overlay", "image_id", props.ImageID, "index", props.ImageIndex, "stack", props.StackSize)

	ov := renderer.Render(props)
	m.ObserveRender(ov)
	if ov == nil {
		slog.InfoContext(ctx, "no image to render", "file", opts.File)
	}

	out, err := overlay.EncodeWriter(w, opts.Charset)
	if err != nil {
		return err
	}
	if err := writeOverlay(out, ov, resolveFormat(opts.Format, w), opts.Width); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	if opts.MetricsOut != "" {
		if err := m.WriteTextfile(opts.MetricsOut); err != nil {
			return err
		}
	}
	return nil
}

// resolveFormat turns auto into text on a terminal and json otherwise
func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return "text"
	}
	return "json"
}

func writeOverlay(w io.Writer, ov *overlay.Overlay, format string, width int) error {
	switch format {
	case "text":
		return overlay.WriteText(w, ov, width)
	case "json":
		return overlay.WriteJSON(w, ov)
	case "html":
		return overlay.WriteHTML(w, ov)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
