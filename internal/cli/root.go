// Package cli implements the stl-gen command-line interface.
//
// The generator commands (basket, hcsr501, protoboard, all) build a
// parametric enclosure solid and export it as a binary STL, diagnose exports
// the basket construction one boolean step at a time, and preview renders an
// STL file to a shaded PNG. Outputs land in stl-draft/ by default; validated
// prints go to stl-final/ via --final. All commands support --verbose for
// debug-level logging; loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// options holds the persistent flag values shared by every subcommand.
type options struct {
	outDir  string
	final   bool
	params  string
	quality int
	force   bool
}

// Execute runs the stl-gen CLI under ctx and returns an error if any command
// fails. Cancelling ctx (e.g. on SIGINT) aborts the running command.
func Execute(ctx context.Context) error {
	var verbose bool
	opts := &options{}

	root := &cobra.Command{
		Use:          "stl-gen",
		Short:        "stl-gen generates 3D-printable enclosure meshes",
		Long:         `stl-gen builds parametric enclosure geometry (a ventilated rag basket, an HC-SR501 sensor case and a prototype-board case) and exports binary STL meshes ready for slicing.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("stl-gen %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.outDir, "out-dir", "o", "", "output directory (default stl-draft)")
	root.PersistentFlags().BoolVar(&opts.final, "final", false, "place output into stl-final instead of stl-draft")
	root.PersistentFlags().StringVarP(&opts.params, "params", "p", "", "TOML parameter file overlaying the built-in defaults")
	root.PersistentFlags().IntVarP(&opts.quality, "quality", "q", 0, "octree mesh resolution (default from parameter file)")
	root.PersistentFlags().BoolVar(&opts.force, "force", false, "overwrite existing output files")

	root.AddCommand(newBasketCmd(opts))
	root.AddCommand(newHCSR501Cmd(opts))
	root.AddCommand(newProtoBoardCmd(opts))
	root.AddCommand(newAllCmd(opts))
	root.AddCommand(newDiagnoseCmd(opts))
	root.AddCommand(newPreviewCmd())

	return root.ExecuteContext(ctx)
}

// ensureOutDir resolves the output directory from the persistent flags and
// creates it. --final always wins so validated prints never mix with drafts.
func ensureOutDir(opts *options) (string, error) {
	dir := "stl-draft"
	switch {
	case opts.final:
		dir = "stl-final"
	case opts.outDir != "":
		dir = opts.outDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return dir, nil
}

// outPath joins the resolved output directory with filename.
func outPath(opts *options, filename string) (string, error) {
	dir, err := ensureOutDir(opts)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}
