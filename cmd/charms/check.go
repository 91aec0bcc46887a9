package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charm-tracker/internal/errors"
	charmsnapshot "github.com/KirkDiggler/charm-tracker/internal/repositories/charm_snapshot"
)

func (c *cli) newCheckCmd() *cobra.Command {
	var (
		repair bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the stored snapshot for corrupt or invalid charms",
		Long: `Read the stored snapshot without loading it into the store and report
problems: unreadable data, duplicate ids, charms without a named skill and
skills the catalog does not know. With --repair an unreadable snapshot is
replaced by an empty inventory.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			key := c.cfg.SnapshotKeyOrDefault()

			repo, closers, err := openRepository(ctx, c.cfg)
			if err != nil {
				return err
			}
			c.closers = append(c.closers, closers...)

			out, err := repo.Load(ctx, charmsnapshot.LoadInput{Key: key})
			switch {
			case errors.IsNotFound(err):
				fmt.Fprintf(w, "No snapshot stored under %q\n", key)
				return nil
			case errors.IsDataLoss(err):
				fmt.Fprintf(w, "Snapshot %q is corrupt: %v\n", key, err)
				if !repair {
					return err
				}
				if !yes && !confirm(cmd, "Replace it with an empty inventory? (yes/no): ") {
					return errors.Canceled("repair aborted")
				}
				if _, err := repo.Save(ctx, charmsnapshot.SaveInput{Key: key}); err != nil {
					return err
				}
				fmt.Fprintf(w, "Replaced %q with an empty inventory\n", key)
				return nil
			case err != nil:
				return err
			}

			problems := c.inspect(out)
			fmt.Fprintf(w, "Snapshot %q holds %d charms, %d problems\n", key, len(out.Charms), len(problems))
			for _, problem := range problems {
				fmt.Fprintf(w, "  - %s\n", problem)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "Replace an unreadable snapshot with an empty inventory")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the repair confirmation")

	return cmd
}

// inspect lists what the store would drop or reject when loading out
func (c *cli) inspect(out *charmsnapshot.LoadOutput) []string {
	var problems []string
	seen := make(map[int64]bool, len(out.Charms))

	for _, ch := range out.Charms {
		if seen[ch.ID] {
			problems = append(problems, fmt.Sprintf("charm %d: duplicate id", ch.ID))
			continue
		}
		seen[ch.ID] = true

		if !ch.Skills.HasNamed() {
			problems = append(problems, fmt.Sprintf("charm %d: no named skill", ch.ID))
			continue
		}
		if err := c.catalog.ValidateSkills(ch.Skills); err != nil {
			problems = append(problems, fmt.Sprintf("charm %d: %v", ch.ID, err))
		}
	}

	return problems
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
