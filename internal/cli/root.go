package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the floorroute CLI under ctx and returns an error if any
// command fails. Logging defaults to info level; --verbose (-v) raises it
// to debug. The logger is attached to the command context and retrieved by
// subcommands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "floorroute",
		Short:        "floorroute finds optimal shopping routes through floor plans",
		Long:         `floorroute computes the shortest walking route through a grid floor plan that starts at the entrance, collects every article, and ends at the counter, avoiding shelves and walls.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newDemoCmd())

	return root.ExecuteContext(ctx)
}
