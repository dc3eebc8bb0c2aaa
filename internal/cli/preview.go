package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jc418gv/stl-gen/pkg/stlio"
)

// Preview dimensions are 40% of Full HD so the PNGs stay small enough to
// check into a repository.
const (
	previewWidth  = 768
	previewHeight = 432
)

func newPreviewCmd() *cobra.Command {
	var (
		output        string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "preview <model.stl>",
		Short: "Render an STL file to a shaded PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			stlPath := args[0]
			if output == "" {
				output = strings.TrimSuffix(stlPath, ".stl") + ".png"
			}
			prog := newProgress(logger)
			if err := stlio.PreviewPNG(stlPath, output, width, height, stlio.DefaultView()); err != nil {
				return err
			}
			prog.done("rendered " + output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "O", "", "PNG output path (default: input with .png extension)")
	cmd.Flags().IntVar(&width, "width", previewWidth, "output width in pixels")
	cmd.Flags().IntVar(&height, "height", previewHeight, "output height in pixels")
	return cmd
}
