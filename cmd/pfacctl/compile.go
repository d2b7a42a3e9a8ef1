package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pfac/pfac"
)

func newCompileCmd(logger zerolog.Logger) *cobra.Command {
	var dualWidth bool

	cmd := &cobra.Command{
		Use:   "compile <pattern-file>",
		Short: "Compile a pattern file and print automaton statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			ctx, err := loadPatterns(f, logger, pfac.WithDualWidth(dualWidth))
			if err != nil {
				return err
			}
			defer ctx.Destroy()

			fmt.Fprintln(cmd.OutOrStdout(), ctx.DebugString())
			return nil
		},
	}

	cmd.Flags().BoolVar(&dualWidth, "dual-width", false, "also build the alternate-width delta table")
	return cmd
}
