package pfac

import "github.com/pkg/errors"

// Scanner is the hot loop of the core. It holds no mutable state of
// its own: everything it reads comes from its (read-only, shareable)
// Context. A Scanner performs no internal
// parallelism, never blocks, and never suspends; it is safe to use
// concurrently with other Scanners bound to the same Context as long
// as each Scanner/Sink pair is owned by one goroutine at a time.
type Scanner struct {
	ctx *Context
}

// Scan walks the compiled delta table over buf, folding each input
// byte to ASCII-lowercase on the fly, and records every matched
// pattern id into sink. It returns the total number of pid-emission
// events counted -- not the number of unique pids, which may be
// fewer if a pattern occurs at multiple positions in buf.
//
// Scan cannot fail on a valid buffer; buflen 0 is a no-op returning 0.
// It implements a canonical linear O(len(buf)) walk: state is carried
// forward across the whole buffer, rather than re-scanning from every
// offset.
func (sc *Scanner) Scan(buf []byte, sink *Sink) (uint32, error) {
	ctx := sc.ctx
	if sink.Capacity() < ctx.SinkCapacity() {
		return 0, errors.Wrapf(ErrSinkTooSmall, "sink capacity %d, need %d", sink.Capacity(), ctx.SinkCapacity())
	}

	var matchCount uint32
	state := int32(0)

	for i, raw := range buf {
		next, hasOutput := ctx.delta.next(state, lower(raw))
		state = next
		if !hasOutput {
			continue
		}

		for _, packed := range ctx.output[state] {
			pid := packed & 0xFFFF
			if packed&verifyBit != 0 && !verifyMatch(ctx.verifier, pid, buf, i) {
				continue
			}
			sink.record(pid)
			matchCount++
		}
	}

	return matchCount, nil
}

// verifyMatch implements case-sensitive verification: the NOCASE DFA
// matched at position i (inclusive, terminal byte), but pid was
// registered case-sensitively, so its original bytes must compare
// equal to the input window ending at i.
func verifyMatch(verifier []verifyEntry, pid uint32, buf []byte, i int) bool {
	if int(pid) >= len(verifier) {
		return false
	}
	original := verifier[pid].bytes
	length := len(original)
	if length == 0 || i+1 < length {
		return false
	}
	start := i + 1 - length
	return bytesEqual(original, buf[start:i+1])
}
