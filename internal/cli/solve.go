package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pschiffmann/floorroute/floorgrid"
	"github.com/pschiffmann/floorroute/route"
)

// newSolveCmd creates the solve command: load a TOML floor plan, compute the
// optimal route, and print the annotated floor.
func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <plan.toml>",
		Short: "Compute the optimal route for a floor plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			grid, err := loadPlan(args[0])
			if err != nil {
				return err
			}
			logger.Debug("plan loaded",
				"file", args[0],
				"width", grid.Width(),
				"height", grid.Height(),
				"articles", len(grid.Articles()))

			res, err := route.OptimalRoute(grid)
			if err != nil {
				// The rendering is a convenience view: degrade to the bare
				// floor, but still fail the command.
				logger.Error("no route", "err", err)
				fmt.Fprint(cmd.OutOrStdout(), colorize(floorgrid.Render(grid, nil)))

				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), colorize(floorgrid.Render(grid, res.Route)))
			logger.Info("route found", "steps", res.Distance, "articles", len(res.Order))

			return nil
		},
	}
}
