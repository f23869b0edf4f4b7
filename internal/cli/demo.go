package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pschiffmann/floorroute/floorgrid"
	"github.com/pschiffmann/floorroute/route"
)

// newDemoCmd creates the demo command: solve a fixed 8×4 store, rearrange
// two shelves, and solve it again to show replanning after Block/Free.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Solve the built-in demo store, rearrange shelves, solve again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			grid, err := floorgrid.New(
				[]byte{0x40, 0x48, 0x48, 0x08}, 1,
				floorgrid.Cell{X: 0, Y: 0}, floorgrid.Cell{X: 7, Y: 3},
				map[floorgrid.Cell]string{
					{X: 0, Y: 2}: "Cheese",
					{X: 2, Y: 3}: "Butter",
					{X: 5, Y: 0}: "Ponies",
					{X: 6, Y: 2}: "Salad",
				})
			if err != nil {
				return err
			}

			solve := func(headline string) error {
				res, err := route.OptimalRoute(grid)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), headline)
				fmt.Fprint(cmd.OutOrStdout(), colorize(floorgrid.Render(grid, res.Route)))
				logger.Info("route found", "steps", res.Distance, "cells", len(res.Route))

				return nil
			}

			if err = solve("initial layout:"); err != nil {
				return err
			}

			// Rearrange: extend the row-2 shelf, open a gap beside the entrance.
			for _, c := range []floorgrid.Cell{{X: 2, Y: 2}, {X: 3, Y: 2}} {
				if err = grid.Block(c); err != nil {
					return err
				}
			}
			if err = grid.Free(floorgrid.Cell{X: 1, Y: 1}); err != nil {
				return err
			}
			logger.Debug("shelves rearranged", "blocked", "(2,2) (3,2)", "freed", "(1,1)")

			fmt.Fprintln(cmd.OutOrStdout())

			return solve("after rearranging shelves:")
		},
	}
}
