package main

import (
	"fmt"
	"strconv"

	"github.com/bndr/gotabulate"
	"github.com/spf13/cobra"

	"function-frame/internal/gen"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [files or packages...]",
		Short: "List frame directives and their resolved options",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.generate(args)
			if res != nil {
				report(cmd, res.Diagnostics)
			}

			if err != nil {
				return err
			}

			if len(res.Frames) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no frame directives found")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderFrames(res.Frames))

			return nil
		},
	}
}

// renderFrames formats frames as a grid table.
func renderFrames(frames []gen.Frame) string {
	rows := make([][]any, 0, len(frames))
	for _, f := range frames {
		rows = append(rows, []any{
			f.Position,
			f.Decl,
			strconv.Quote(f.Options.Title),
			strconv.Quote(f.Options.Sep),
			strconv.FormatUint(uint64(f.Options.Width), 10),
			strconv.FormatBool(f.Options.SepLine),
		})
	}

	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"Position", "Function", "Title", "Sep", "Width", "SepLine"})
	t.SetAlign("left")

	return t.Render("grid")
}
