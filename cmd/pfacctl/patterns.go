package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/pfac/pfac"
)

// loadPatterns reads one pattern per line in the form:
//
//	<id> <nocase|cs> <pattern text>
//
// Blank lines and lines starting with '#' are skipped. It registers
// every pattern on a fresh Context, compiles it, and returns it ready
// to scan.
func loadPatterns(r io.Reader, logger zerolog.Logger, opts ...pfac.Option) (*pfac.Context, error) {
	ctx := pfac.NewContext(append([]pfac.Option{pfac.WithLogger(logger)}, opts...)...)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.SplitN(line, " ", 3)
		if len(fields) != 3 {
			return nil, errors.Errorf("line %d: expected '<id> <nocase|cs> <pattern>', got %q", lineNo, line)
		}

		id, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid pattern id %q", lineNo, fields[0])
		}

		var flags pfac.Flags
		switch fields[1] {
		case "nocase":
			flags = pfac.NoCase
		case "cs":
			flags = 0
		default:
			return nil, errors.Errorf("line %d: flags must be 'nocase' or 'cs', got %q", lineNo, fields[1])
		}

		if err := ctx.Register([]byte(fields[2]), uint32(id), flags); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading pattern file")
	}

	if err := ctx.Compile(); err != nil {
		return nil, errors.Wrap(err, "compiling patterns")
	}
	return ctx, nil
}
