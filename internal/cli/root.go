package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sfas/pkg/buildinfo"
)

// Execute runs the sfas CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (order, render),
// configures logging based on the --verbose flag, and executes the command
// tree. Cancelling ctx aborts the running command.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "sfas",
		Short:        "sfas orders directed graphs to minimize backward edge weight",
		Long:         `sfas computes a linear order of a weighted directed graph such that the total weight of edges pointing backward - the feedback edge set - is kept small, using a greedy source/sink peeling heuristic.`,
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

	root.AddCommand(newOrderCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
