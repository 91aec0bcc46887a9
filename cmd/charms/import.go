package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/orchestrators/charm"
)

func (c *cli) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import charms from bulk text",
		Long: `Import charms, one per line:

  skill1,level1,skill2,level2,skill3,level3,armor1,armor2,armor3,weapon,0,0

Reads the file, or stdin when the file is "-" or omitted. Lines that cannot
be read are reported and skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readImportSource(cmd, args)
			if err != nil {
				return err
			}

			out, err := c.store.ImportText(cmd.Context(), &charm.ImportTextInput{Text: text})
			if out == nil {
				return err
			}

			for _, rejected := range out.Rejected {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %v\n", rejected)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d charms, skipped %d\n", out.Imported, out.Skipped)
			return err
		},
	}
}

func readImportSource(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)

	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.WrapWithCode(err, errors.CodeNotFound, "import file not found")
		}
		return "", errors.Wrap(err, "failed to read import data")
	}

	return string(data), nil
}
