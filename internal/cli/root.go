package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/spanforge/spanforge/pkg/buildinfo"
)

// Execute runs the spanforge CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (generate,
// layout, preview, view), configures logging based on the --verbose flag,
// and executes the command tree. The logger is attached to the context and
// accessible to all commands via loggerFromContext.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "spanforge",
		Short:        "spanforge generates parametric steel girder bridge models",
		Long:         `spanforge is a CLI tool for generating simplified steel girder highway bridges (girders, deck slab, parapets) as solid CAD geometry, with STEP/BREP/OBJ export and terminal or diagram previews.`,
		Version:      buildinfo.Version,
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

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newLayoutCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newViewCmd())

	return root.ExecuteContext(ctx)
}
