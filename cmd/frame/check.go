package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [files or packages...]",
		Short: "Validate frame directives without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.generate(args)
			if res != nil {
				report(cmd, res.Diagnostics)
			}

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d frames in %d files\n", len(res.Frames), len(res.Files))

			return nil
		},
	}
}
