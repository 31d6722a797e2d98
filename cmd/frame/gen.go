package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"function-frame/internal/gen"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		write  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "gen [files or packages...]",
		Short: "Insert frame banners into annotated functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.generate(args)
			if res != nil {
				report(cmd, res.Diagnostics)
			}

			if err != nil {
				return err
			}

			if output == "" && !write {
				output = a.cfg.Output
			}

			switch {
			case output != "":
				if err := gen.WriteFiles(a.fs, res.Files, output); err != nil {
					return err
				}
			case write:
				if err := gen.WriteFiles(a.fs, res.Files, ""); err != nil {
					return err
				}
			default:
				for _, f := range res.Files {
					if len(res.Files) > 1 {
						fmt.Fprintf(cmd.OutOrStdout(), "// %s\n", f.Filename)
					}

					_, _ = cmd.OutOrStdout().Write(f.Content)
				}

				return nil
			}

			a.logger.Info("generation complete", "files", len(res.Files), "frames", len(res.Frames))

			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write rewritten files into this directory")
	cmd.MarkFlagsMutuallyExclusive("write", "output")

	return cmd
}
