package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newSkillsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "skills [query]",
		Short:       "List known skills and their max levels",
		Long:        `List the skill catalog. With a query, only skills whose name contains it (ignoring case) are shown.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			names := c.catalog.Suggest(query)
			if len(names) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No skills match %q\n", query)
				return nil
			}

			for _, name := range names {
				maxLevel, _ := c.catalog.MaxLevelOf(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s max %d\n", name, maxLevel)
			}
			return nil
		},
	}
}
