package cli

import (
	"context"
	"fmt"

	"github.com/soypat/sdf"
	"github.com/spf13/cobra"

	"github.com/jc418gv/stl-gen/pkg/enclosure"
	"github.com/jc418gv/stl-gen/pkg/stlio"
)

func newBasketCmd(opts *options) *cobra.Command {
	var filename string
	cmd := &cobra.Command{
		Use:   "basket",
		Short: "Generate the ventilated rag basket",
		Long: `Generate the rag basket: an open-top shelled box with a hanging slot
through the front and back walls and a diamond ventilation lattice on all
four walls. Lattice placements that would break into the slot are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBasket(cmd.Context(), opts, filename)
		},
	}
	cmd.Flags().StringVar(&filename, "filename", "rag_basket.stl", "output filename")
	return cmd
}

func runBasket(ctx context.Context, opts *options, filename string) error {
	logger := loggerFromContext(ctx)
	p, err := loadParams(opts.params)
	if err != nil {
		return err
	}
	cfg := p.Basket
	cfg.Logger = logger
	s, err := enclosure.Basket(cfg)
	if err != nil {
		return err
	}
	return export(ctx, opts, p, filename, s)
}

func newHCSR501Cmd(opts *options) *cobra.Command {
	var baseFile, lidFile string
	cmd := &cobra.Command{
		Use:   "hcsr501",
		Short: "Generate the two-part HC-SR501 PIR sensor case",
		Long: `Generate the HC-SR501 case: an open-top base with a tapered pin opening
on the back face and a fresnel window on the front, plus a press-fit lid
with an inset lip and tabs matching the base's rim cutouts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHCSR501(cmd.Context(), opts, baseFile, lidFile)
		},
	}
	cmd.Flags().StringVar(&baseFile, "base-filename", "hcsr501_case_base.stl", "base output filename")
	cmd.Flags().StringVar(&lidFile, "lid-filename", "hcsr501_case_lid.stl", "lid output filename")
	return cmd
}

func runHCSR501(ctx context.Context, opts *options, baseFile, lidFile string) error {
	logger := loggerFromContext(ctx)
	p, err := loadParams(opts.params)
	if err != nil {
		return err
	}
	cfg := p.HCSR501
	cfg.Logger = logger
	base, err := enclosure.HCSR501Base(cfg)
	if err != nil {
		return err
	}
	if err := export(ctx, opts, p, baseFile, base); err != nil {
		return err
	}
	lid, err := enclosure.HCSR501Lid(cfg)
	if err != nil {
		return err
	}
	return export(ctx, opts, p, lidFile, lid)
}

func newProtoBoardCmd(opts *options) *cobra.Command {
	var baseFile, lidFile string
	cmd := &cobra.Command{
		Use:   "protoboard",
		Short: "Generate the prototype-board case",
		Long: `Generate the prototype-board case: an open-top base with a round-bottom
connector slot on one short wall, plus a lipped lid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProtoBoard(cmd.Context(), opts, baseFile, lidFile)
		},
	}
	cmd.Flags().StringVar(&baseFile, "base-filename", "proto_board_base.stl", "base output filename")
	cmd.Flags().StringVar(&lidFile, "lid-filename", "proto_board_lid.stl", "lid output filename")
	return cmd
}

func runProtoBoard(ctx context.Context, opts *options, baseFile, lidFile string) error {
	logger := loggerFromContext(ctx)
	p, err := loadParams(opts.params)
	if err != nil {
		return err
	}
	cfg := p.ProtoBoard
	cfg.Logger = logger
	base, err := enclosure.ProtoBoardBase(cfg)
	if err != nil {
		return err
	}
	if err := export(ctx, opts, p, baseFile, base); err != nil {
		return err
	}
	lid, err := enclosure.ProtoBoardLid(cfg)
	if err != nil {
		return err
	}
	return export(ctx, opts, p, lidFile, lid)
}

func newAllCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Generate every part",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := runBasket(ctx, opts, "rag_basket.stl"); err != nil {
				return err
			}
			if err := runHCSR501(ctx, opts, "hcsr501_case_base.stl", "hcsr501_case_lid.stl"); err != nil {
				return err
			}
			return runProtoBoard(ctx, opts, "proto_board_base.stl", "proto_board_lid.stl")
		},
	}
}

// export meshes the solid into the resolved output directory, honoring the
// idempotent skip-if-exists behavior shared by every generator command.
func export(ctx context.Context, opts *options, p Params, filename string, s sdf.SDF3) error {
	logger := loggerFromContext(ctx)
	path, err := outPath(opts, filename)
	if err != nil {
		return err
	}
	prog := newProgress(logger)
	skipped, err := stlio.ExportIfNeeded(path, s, p.meshCells(opts), opts.force)
	if err != nil {
		return err
	}
	if skipped {
		logger.Infof("skipping %s (exists), use --force to overwrite", path)
		return nil
	}
	prog.done(fmt.Sprintf("exported %s", path))
	return nil
}
