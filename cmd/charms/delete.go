package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/orchestrators/charm"
)

func (c *cli) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id> [id...]",
		Aliases: []string{"rm"},
		Short:   "Delete charms by id",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			var missing []int64
			for _, id := range ids {
				out, err := c.store.Delete(cmd.Context(), &charm.DeleteInput{ID: id})
				if err != nil {
					return err
				}
				if !out.Deleted {
					missing = append(missing, id)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted charm %d\n", id)
			}

			if len(missing) > 0 {
				return errors.NotFoundf("charms not found: %v", missing)
			}
			return nil
		},
	}
}
