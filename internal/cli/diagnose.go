package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/jc418gv/stl-gen/pkg/enclosure"
	"github.com/jc418gv/stl-gen/pkg/stlio"
)

func newDiagnoseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose",
		Short: "Export the rag basket construction one step at a time",
		Long: `Export the basket build as incremental STLs (base box, open-top shell,
slot, single lattice cutter) with bounding-box logging, to pin down which
boolean step produces bad geometry. Existing step files are kept unless
--force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd.Context(), opts)
		},
	}
}

func runDiagnose(ctx context.Context, opts *options) error {
	logger := loggerFromContext(ctx)
	p, err := loadParams(opts.params)
	if err != nil {
		return err
	}
	cfg := p.Basket
	cfg.Logger = logger
	steps, err := enclosure.BasketSteps(cfg)
	if err != nil {
		return err
	}
	for i, step := range steps {
		size := boundsSize(step.Solid.Bounds())
		logger.Infof("step %d %s: bounds %.3f x %.3f x %.3f", i+1, step.Name, size.X, size.Y, size.Z)

		path, err := outPath(opts, step.Name+".stl")
		if err != nil {
			return err
		}
		skipped, err := stlio.ExportIfNeeded(path, step.Solid, p.meshCells(opts), opts.force)
		if err != nil {
			return fmt.Errorf("step %s: %w", step.Name, err)
		}
		if skipped {
			logger.Infof("skipping %s (exists), use --force to overwrite", path)
			continue
		}
		logger.Infof("exported %s", path)
	}
	return nil
}

func boundsSize(b r3.Box) r3.Vec {
	return r3.Sub(b.Max, b.Min)
}
