package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pfac/pfac"
)

func newScanCmd(logger zerolog.Logger) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "scan <pattern-file>",
		Short: "Compile a pattern file and scan an input file (or stdin) for matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer pf.Close()

			ctx, err := loadPatterns(pf, logger)
			if err != nil {
				return err
			}
			defer ctx.Destroy()

			var input io.Reader = cmd.InOrStdin()
			if inputPath != "" {
				in, err := os.Open(inputPath)
				if err != nil {
					return err
				}
				defer in.Close()
				input = in
			}

			buf, err := io.ReadAll(input)
			if err != nil {
				return errors.Wrap(err, "reading scan input")
			}

			scanner, err := ctx.NewScanner()
			if err != nil {
				return err
			}
			sink := pfac.NewSink(ctx.SinkCapacity())

			count, err := scanner.Scan(buf, sink)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "matched %d pattern id(s), %d total emission(s): %v\n",
				sink.Count(), count, sink.Matches())
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "file to scan (default: stdin)")
	return cmd
}
