package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "pfacctl",
		Short: "Compile and scan byte patterns with the PFAC matching core",
	}

	root.AddCommand(newCompileCmd(logger))
	root.AddCommand(newScanCmd(logger))

	return root
}
