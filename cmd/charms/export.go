package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/orchestrators/charm"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

func (c *cli) newExportCmd() *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every charm as bulk text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.store.Export(cmd.Context(), &charm.ExportInput{})
			if err != nil {
				return err
			}

			if !toClipboard {
				if out.Count > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), out.Text)
				}
				return nil
			}

			if err := clipboardWriteAll(out.Text); err != nil {
				return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write clipboard")
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Copied %d charms to the clipboard\n", out.Count)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&toClipboard, "clipboard", "c", false, "Copy to the system clipboard instead of stdout")

	return cmd
}
