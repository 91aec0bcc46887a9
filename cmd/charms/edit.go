package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charm-tracker/internal/entities"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/orchestrators/charm"
)

func (c *cli) newEditCmd() *cobra.Command {
	var (
		skillValues []string
		armor       string
		weapon      int
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a charm's skills or slots",
		Long: `Change a charm. Only the given parts are replaced: --skill replaces every
skill, --armor the armor slots and --weapon the weapon slot.

  charms edit 1718000000000 --skill "Attack:2" --armor 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			begin, err := c.store.BeginEdit(ctx, &charm.BeginEditInput{ID: id})
			if err != nil {
				return err
			}
			if !begin.Editing {
				return errors.NotFoundf("charm %d not found", id)
			}

			skills := begin.Charm.Skills
			slots := begin.Charm.Slots
			flags := cmd.Flags()

			if flags.Changed("skill") {
				if skills, err = parseSkillFlags(skillValues); err != nil {
					return c.abortEdit(cmd, id, err)
				}
				if err := c.catalog.ValidateSkills(skills); err != nil {
					return c.abortEdit(cmd, id, err)
				}
			}
			if flags.Changed("armor") {
				armorSlots, err := parseArmorSlots(armor)
				if err != nil {
					return c.abortEdit(cmd, id, err)
				}
				slots = entities.NewSlots(armorSlots, slots.WeaponCapacity())
				slots[4], slots[5] = begin.Charm.Slots[4], begin.Charm.Slots[5]
			}
			if flags.Changed("weapon") {
				if err := validateWeaponSlot(weapon); err != nil {
					return c.abortEdit(cmd, id, err)
				}
				slots[entities.WeaponSlotIndex] = weapon
			}

			out, err := c.store.CommitEdit(ctx, &charm.CommitEditInput{
				ID:     id,
				Skills: skills,
				Slots:  slots,
			})
			if err != nil && out == nil {
				return c.abortEdit(cmd, id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", describeCharm(out.Charm))
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&skillValues, "skill", "s", nil, `Skill as "Name:Level" (repeat up to 3 times)`)
	cmd.Flags().StringVarP(&armor, "armor", "a", "", `Armor slot sizes, e.g. "2-1" or "-" for none`)
	cmd.Flags().IntVarP(&weapon, "weapon", "w", 0, "Weapon slot size, 0 for none")

	return cmd
}

// abortEdit leaves edit state and returns cause
func (c *cli) abortEdit(cmd *cobra.Command, id int64, cause error) error {
	_, _ = c.store.CancelEdit(cmd.Context(), &charm.CancelEditInput{ID: id})
	return cause
}
