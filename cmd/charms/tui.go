package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charm-tracker/cmd/charms/ui"
	"github.com/KirkDiggler/charm-tracker/internal/errors"
)

func (c *cli) newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit charms interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model := ui.New(cmd.Context(), c.store, c.catalog)

			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				if errors.Is(err, tea.ErrProgramKilled) {
					return errors.Canceled("interrupted")
				}
				return errors.Wrap(err, "terminal UI failed")
			}
			return nil
		},
	}
}
