package pfac

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type testPattern struct {
	content string
	id      uint32
	flags   Flags
}

func compileScanner(t *testing.T, pats []testPattern) (*Scanner, *Context) {
	t.Helper()
	ctx := NewContext()
	for _, p := range pats {
		require.NoError(t, ctx.Register([]byte(p.content), p.id, p.flags))
	}
	require.NoError(t, ctx.Compile())
	sc, err := ctx.NewScanner()
	require.NoError(t, err)
	return sc, ctx
}

func scan(t *testing.T, sc *Scanner, ctx *Context, buf string) (uint32, []uint32) {
	t.Helper()
	sink := NewSink(ctx.SinkCapacity())
	count, err := sc.Scan([]byte(buf), sink)
	require.NoError(t, err)
	matches := append([]uint32(nil), sink.Matches()...)
	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })
	return count, matches
}

// Scenario 1: a single case-sensitive pattern matches once.
func TestScenario1SingleCaseSensitiveMatch(t *testing.T) {
	sc, ctx := compileScanner(t, []testPattern{{"abcd", 0, 0}})
	count, matches := scan(t, sc, ctx, "abcdefghjiklmnopqrstuvwxyz")
	require.Equal(t, uint32(1), count)
	require.Equal(t, []uint32{0}, matches)
}

// Scenario 2: a near-miss case-sensitive pattern does not match.
func TestScenario2NoMatch(t *testing.T) {
	sc, ctx := compileScanner(t, []testPattern{{"abce", 0, 0}})
	count, matches := scan(t, sc, ctx, "abcdefghjiklmnopqrstuvwxyz")
	require.Equal(t, uint32(0), count)
	require.Empty(t, matches)
}

// Scenario 3: three overlapping case-sensitive patterns all match.
func TestScenario3OverlappingMatches(t *testing.T) {
	sc, ctx := compileScanner(t, []testPattern{
		{"abcd", 0, 0},
		{"bcde", 1, 0},
		{"fghj", 2, 0},
	})
	count, matches := scan(t, sc, ctx, "abcdefghjiklmnopqrstuvwxyz")
	require.Equal(t, uint32(3), count)
	require.Equal(t, []uint32{0, 1, 2}, matches)
}

// Scenario 4: the same three patterns, registered NOCASE with mixed case.
func TestScenario4CaseInsensitiveMatches(t *testing.T) {
	sc, ctx := compileScanner(t, []testPattern{
		{"ABCD", 0, NoCase},
		{"bCdEfG", 1, NoCase},
		{"fghJikl", 2, NoCase},
	})
	_, matches := scan(t, sc, ctx, "abcdefghjiklmnopqrstuvwxyz")
	require.Equal(t, []uint32{0, 1, 2}, matches)
}

// Scenario 5: the classic he/she/his/hers suffix-closure example.
func TestScenario5SuffixClosure(t *testing.T) {
	sc, ctx := compileScanner(t, []testPattern{
		{"he", 1, 0},
		{"she", 2, 0},
		{"his", 3, 0},
		{"hers", 4, 0},
	})

	_, matches := scan(t, sc, ctx, "she")
	require.Equal(t, []uint32{1, 2}, matches)

	_, matches = scan(t, sc, ctx, "hers")
	require.Equal(t, []uint32{1, 4}, matches)

	_, matches = scan(t, sc, ctx, "his")
	require.Equal(t, []uint32{3}, matches)
}

// Scenario 6: a NOCASE and a case-sensitive registration of the same
// text; only the NOCASE pattern survives verification on lowercase input.
func TestScenario6VerificationRejectsCaseSensitiveDuplicate(t *testing.T) {
	sc, ctx := compileScanner(t, []testPattern{
		{"Works", 0, NoCase},
		{"Works", 1, 0},
	})
	_, matches := scan(t, sc, ctx, "works")
	require.Equal(t, []uint32{0}, matches)
}

// Scenario 7: a case-sensitive pattern does not match a differently-cased substring.
func TestScenario7CaseSensitiveSubstringMismatch(t *testing.T) {
	sc, ctx := compileScanner(t, []testPattern{{"ONE", 0, 0}})
	_, matches := scan(t, sc, ctx, "tone")
	require.Empty(t, matches)
}

// Scanning an empty buffer emits zero pids and returns 0.
func TestEmptyBufferIsANoOp(t *testing.T) {
	sc, ctx := compileScanner(t, []testPattern{{"abc", 0, 0}})
	count, matches := scan(t, sc, ctx, "")
	require.Equal(t, uint32(0), count)
	require.Empty(t, matches)
}

// A pid appears in the match list at most once per scan even when the
// pattern occurs multiple times, though the returned count reflects
// every occurrence.
func TestRepeatedOccurrencesDedupInSinkButNotInCount(t *testing.T) {
	sc, ctx := compileScanner(t, []testPattern{{"ab", 0, 0}})
	count, matches := scan(t, sc, ctx, "ababab")
	require.Equal(t, uint32(3), count)
	require.Equal(t, []uint32{0}, matches)
}

// Duplicate registrations of the same id produce a context
// byte-identical to one built from a single registration.
func TestDuplicateRegistrationIsIdempotent(t *testing.T) {
	once := NewContext()
	require.NoError(t, once.Register([]byte("abc"), 0, 0))
	require.NoError(t, once.Compile())

	twice := NewContext()
	require.NoError(t, twice.Register([]byte("abc"), 0, 0))
	require.NoError(t, twice.Register([]byte("abc"), 0, 0))
	require.NoError(t, twice.Compile())

	require.Equal(t, once.DebugString(), twice.DebugString())
}

func TestRegisterAfterCompileIsRejected(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Register([]byte("abc"), 0, 0))
	require.NoError(t, ctx.Compile())
	require.ErrorIs(t, ctx.Register([]byte("xyz"), 1, 0), ErrAlreadyCompiled)
	require.ErrorIs(t, ctx.Compile(), ErrAlreadyCompiled)
}

func TestZeroLengthPatternIsIgnoredNotAnError(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Register(nil, 0, 0))
	require.NoError(t, ctx.Compile())
	require.Equal(t, 0, ctx.Stats().PatternCount)
}

func TestPidOverflowIsRejected(t *testing.T) {
	ctx := NewContext()
	err := ctx.Register([]byte("abc"), 1<<16, 0)
	require.ErrorIs(t, err, ErrPidOverflow)
}

func TestNewScannerBeforeCompileFails(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.NewScanner()
	require.ErrorIs(t, err, ErrNotCompiled)
}
