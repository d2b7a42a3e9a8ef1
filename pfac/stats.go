package pfac

import "fmt"

// DebugString renders a human-readable summary of the compiled
// automaton -- pattern count, state count, cell width, the number of
// states with a non-empty output list, and the longest such list --
// mirroring the table-dump helpers of the reference
// implementation. It is never called from the scan hot path.
func (c *Context) DebugString() string {
	if !c.compiled || c.delta == nil {
		return "pfac.Context{uncompiled}"
	}

	width := 16
	if c.stats.Wide {
		width = 32
	}

	nonEmpty := 0
	maxOutputs := 0
	for _, row := range c.output {
		if len(row) == 0 {
			continue
		}
		nonEmpty++
		if len(row) > maxOutputs {
			maxOutputs = len(row)
		}
	}

	return fmt.Sprintf(
		"pfac.Context{patterns=%d states=%d cellWidth=%d outputStates=%d maxOutputsPerState=%d}",
		c.stats.PatternCount, c.stats.StateCount, width, nonEmpty, maxOutputs,
	)
}
