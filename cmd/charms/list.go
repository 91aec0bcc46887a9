package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charm-tracker/internal/charmtext"
	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/filter"
	"github.com/KirkDiggler/charm-tracker/internal/orchestrators/charm"
)

const (
	formatTable = "table"
	formatText  = "text"
)

func (c *cli) newListCmd() *cobra.Command {
	var (
		skillTerms  []string
		armor       string
		weapon      string
		noSlots     bool
		newestFirst bool
		format      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List charms, optionally filtered",
		Long: `List charms. Every --skill must be present on a charm. Slot filters match
charms whose slots are at least as large:

  charms list --skill Attack --skill "Critical Eye"
  charms list --armor 2-1 --weapon 1
  charms list --armor none --weapon none`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatTable && format != formatText {
				return errors.InvalidArgumentf("unknown format %q", format)
			}

			out, err := c.store.Find(cmd.Context(), &charm.FindInput{
				Spec:        filter.NewSpec(skillTerms, armor, weapon, !noSlots),
				NewestFirst: newestFirst,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format == formatText {
				if len(out.Charms) > 0 {
					fmt.Fprintln(w, charmtext.Format(out.Charms))
				}
				return nil
			}

			if len(out.Charms) == 0 {
				fmt.Fprintf(w, "No charms match (%d in inventory)\n", out.Total)
				return nil
			}
			fmt.Fprintln(w, renderCharmTable(out.Charms))
			if len(out.Charms) != out.Total {
				fmt.Fprintf(w, "Showing %d of %d charms\n", len(out.Charms), out.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&skillTerms, "skill", "s", nil, "Required skill name (repeat up to 3 times)")
	cmd.Flags().StringVarP(&armor, "armor", "a", "", `Minimum armor slots, e.g. "2-1", or "none"`)
	cmd.Flags().StringVarP(&weapon, "weapon", "w", "", `Minimum weapon slot, e.g. "1", or "none"`)
	cmd.Flags().BoolVar(&noSlots, "no-slots", false, "Ignore the slot filters")
	cmd.Flags().BoolVar(&newestFirst, "newest-first", false, "Show the most recently added charms first")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table or text")

	return cmd
}

func renderCharmTable(charms []entities.Charm) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "SKILLS", "ARMOR", "WEAPON").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, ch := range charms {
		t.Row(
			strconv.FormatInt(ch.ID, 10),
			describeSkills(ch.Skills),
			entities.FormatArmorPattern(ch.Slots.ArmorPattern()),
			entities.FormatWeaponCapacity(ch.Slots.WeaponCapacity()),
		)
	}

	return t.Render()
}
