// Command pfacctl is a small benchmark/demo harness around the pfac
// core: it compiles a pattern file and then either prints compiled
// automaton statistics or scans an input file, in the spirit of the
// reference implementation's standalone test/bench harness.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
