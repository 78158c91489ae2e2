package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpfielding/overlay.go/pkg/dicom"
	"github.com/jpfielding/overlay.go/pkg/dicom/module"
	"github.com/jpfielding/overlay.go/pkg/util"
)

// sampleOptions shape the synthetic series
type sampleOptions struct {
	Frames    int
	FrameTime float64 // ms, 0 leaves the cine module out
	Lossy     bool
}

// NewSampleCmd writes a synthetic CT series as DICOM JSON
func NewSampleCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "write a synthetic DICOM JSON series",
		Long:  "Writes a synthetic CT series in the DICOM JSON model, suitable as input to render.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := sampleOptions{}
			opts.Frames, _ = cmd.Flags().GetInt("frames")
			opts.FrameTime, _ = cmd.Flags().GetFloat64("frame-time")
			opts.Lossy, _ = cmd.Flags().GetBool("lossy")
			out, _ := cmd.Flags().GetString("out")

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create file: %w", err)
				}
				defer f.Close()
				w = f
			}
			datasets, err := buildSample(opts)
			if err != nil {
				return err
			}
			slog.DebugContext(ctx, "writing sample series", "frames", len(datasets), "out", out)
			return dicom.WriteJSON(w, datasets)
		},
	}
	pf := cmd.PersistentFlags()
	pf.IntP("frames", "n", 10, "number of images in the series")
	pf.Float64("frame-time", 0, "cine frame time in ms, 0 for none")
	pf.Bool("lossy", false, "mark the images as lossy JPEG compressed")
	pf.StringP("out", "o", "", "output file, stdout when empty")
	return cmd
}

func buildSample(opts sampleOptions) ([]*dicom.Dataset, error) {
	if opts.Frames < 1 {
		return nil, fmt.Errorf("frames must be positive, got %d", opts.Frames)
	}
	patient := module.PatientModule{PatientID: "OVL-0001", PatientSex: "F", PatientAge: "042Y"}
	patient.SetPatientName("Maria", "Silva", "", "", "")
	study := module.NewGeneralStudyModule()
	study.StudyInstanceUID = util.NewUID()
	study.StudyDescription = "TC TORAX"
	seriesNumber := 2
	series := module.GeneralSeriesModule{
		Modality:          "CT",
		SeriesNumber:      &seriesNumber,
		SeriesDescription: "Axial 2.5mm",
	}
	series.SetSeriesInstanceUID(util.NewUID())
	voi := module.NewVOILUTModuleForCT()

	datasets := make([]*dicom.Dataset, 0, opts.Frames)
	for i := 0; i < opts.Frames; i++ {
		instance := i + 1
		rows, cols := 512, 512
		thickness := 2.5
		location := float64(i) * thickness
		plane := module.ImagePlaneModule{
			Rows:           &rows,
			Columns:        &cols,
			SliceThickness: &thickness,
			SliceLocation:  &location,
			PixelSpacing:   []float64{0.7, 0.7},
		}
		image := module.GeneralImageModule{
			InstanceNumber:        &instance,
			LossyImageCompression: module.LosslessCompression,
		}
		if opts.Lossy {
			image.LossyImageCompression = module.LossyCompression
			image.LossyImageCompressionRatio = "10"
		}
		sop := module.NewSOPCommonModule(module.CTImageStorage, util.NewUID())
		dsOpts := []dicom.Option{
			dicom.WithModule(sop.ToTags()),
			dicom.WithModule(patient.ToTags()),
			dicom.WithModule(study.ToTags()),
			dicom.WithModule(series.ToTags()),
			dicom.WithModule(plane.ToTags()),
			dicom.WithModule(image.ToTags()),
			dicom.WithModule(voi.ToTags()),
		}
		if opts.FrameTime > 0 {
			frameTime := opts.FrameTime
			cine := module.CineModule{FrameTime: &frameTime}
			dsOpts = append(dsOpts, dicom.WithModule(cine.ToTags()))
		}
		ds, err := dicom.NewDataset(dsOpts...)
		if err != nil {
			return nil, fmt.Errorf("instance %d: %w", instance, err)
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}
