package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/orchestrators/charm"
)

func (c *cli) newAddCmd() *cobra.Command {
	var (
		skillValues []string
		armor       string
		weapon      int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a charm",
		Long: `Add a charm with up to three skills and its slot layout. Examples:

  charms add --skill "Attack:3"
  charms add --skill "Critical Eye:2" --skill "Guard:1" --armor 2-1 --weapon 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			skills, err := parseSkillFlags(skillValues)
			if err != nil {
				return err
			}
			if err := c.catalog.ValidateSkills(skills); err != nil {
				return err
			}
			armorSlots, err := parseArmorSlots(armor)
			if err != nil {
				return err
			}
			if err := validateWeaponSlot(weapon); err != nil {
				return err
			}

			out, err := c.store.Add(cmd.Context(), &charm.AddInput{
				Skills: skills,
				Slots:  entities.NewSlots(armorSlots, weapon),
			})
			if out != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", describeCharm(out.Charm))
			}
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&skillValues, "skill", "s", nil, `Skill as "Name:Level" (repeat up to 3 times)`)
	cmd.Flags().StringVarP(&armor, "armor", "a", "", `Armor slot sizes, e.g. "2-1" or "-" for none`)
	cmd.Flags().IntVarP(&weapon, "weapon", "w", 0, "Weapon slot size, 0 for none")

	return cmd
}
