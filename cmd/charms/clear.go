package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/orchestrators/charm"
)

func (c *cli) newClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every charm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !yes {
				list, err := c.store.List(ctx, &charm.ListInput{})
				if err != nil {
					return err
				}
				if len(list.Charms) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Inventory is already empty")
					return nil
				}

				if !confirm(cmd, fmt.Sprintf("Delete all %d charms? [y/N] ", len(list.Charms))) {
					return errors.Canceled("clear aborted")
				}
			}

			out, err := c.store.ClearAll(ctx, &charm.ClearAllInput{})
			if out != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d charms\n", out.Removed)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
