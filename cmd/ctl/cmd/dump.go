package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jpfielding/overlay.go/pkg/dicom"
	"github.com/jpfielding/overlay.go/pkg/metadata"
)

// NewDumpCmd prints the instances of a DICOM JSON file in stack order
func NewDumpCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "print DICOM JSON instances in stack order",
		Long:  "Loads DICOM JSON instance metadata and prints every instance, ordered as render stacks them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			if path == "" && len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("file path is required. Use --file flag or provide as argument")
			}
			format, _ := cmd.Flags().GetString("format")
			return runDump(ctx, cmd.OutOrStdout(), path, format)
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "DICOM JSON file, - for stdin")
	pf.String("format", "text", "output format (text|json)")
	return cmd
}

func runDump(ctx context.Context, w io.Writer, path, format string) error {
	datasets, err := loadDatasets(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	store := metadata.NewStore()
	if _, err := store.AddAll(ctx, datasets); err != nil {
		return fmt.Errorf("indexing %s: %w", path, err)
	}
	stack := store.Stack()
	ordered := make([]*dicom.Dataset, 0, len(stack))
	for _, id := range stack {
		ds, _ := store.Dataset(id)
		ordered = append(ordered, ds)
	}

	switch format {
	case "text":
		for i, id := range stack {
			if _, err := fmt.Fprintf(w, "=== %d %s ===\n%s\n", i, id, ordered[i]); err != nil {
				return err
			}
		}
		return nil
	case "json":
		return dicom.WriteJSON(w, ordered)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
