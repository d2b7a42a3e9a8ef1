package pfac

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// defaultQueueCapacity is the default BFS ring size (at least 2^16
// slots) for the failure solver and delta flattener.
const defaultQueueCapacity = 1 << 16

// CompileOptions configures a Context's Compile pass. It is built
// from functional Options rather than read from a file: this library
// has no on-disk configuration format.
type CompileOptions struct {
	// DualWidth, when true, builds both the 16-bit and 32-bit delta
	// tables regardless of state count, as a per-context field instead
	// of a process-wide switch. Intended for hybrid host/accelerator
	// deployments; the scanner itself always uses the table selected
	// by state count.
	DualWidth bool
	// QueueCapacity sizes the BFS ring used by the failure solver and
	// delta flattener. Overflow is ErrCapacityExceeded.
	QueueCapacity int
	// Logger receives Compile/Register diagnostics. The zero value is
	// a disabled logger.
	Logger zerolog.Logger
}

// Option mutates CompileOptions; see WithDualWidth, WithQueueCapacity
// and WithLogger.
type Option func(*CompileOptions)

// WithDualWidth enables building both delta table widths at Compile.
func WithDualWidth(enabled bool) Option {
	return func(o *CompileOptions) { o.DualWidth = enabled }
}

// WithQueueCapacity overrides the BFS ring size used during Compile.
func WithQueueCapacity(capacity int) Option {
	return func(o *CompileOptions) { o.QueueCapacity = capacity }
}

// WithLogger attaches a zerolog.Logger for Register/Compile
// diagnostics. The embedding detection pipeline owns log
// configuration; this library stays silent until one is supplied.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *CompileOptions) { o.Logger = logger }
}

// Stats summarizes a compiled Context, mirroring the diagnostics the
// reference implementation prints at the end of compilation.
type Stats struct {
	PatternCount  int
	StateCount    int
	MinPatternLen uint16
	MaxPatternLen uint16
	Wide          bool
}

// Context is a PFAC compilation/scan context. Patterns may be
// registered until Compile is called; afterwards the context is
// immutable and may be shared by any number of concurrent Scanners.
type Context struct {
	opts     CompileOptions
	store    *patternStore
	compiled bool

	delta    *deltaTable
	auxDelta *deltaTable // present only when opts.DualWidth
	output   [][]uint32  // packed: low 16 bits pid, bit 16 verify flag
	verifier []verifyEntry
	stats    Stats
}

// NewContext creates an empty, mutable compilation context.
func NewContext(opts ...Option) *Context {
	o := CompileOptions{
		QueueCapacity: defaultQueueCapacity,
		Logger:        defaultLogger,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Context{
		opts:  o,
		store: newPatternStore(),
	}
}

// Register inserts a pattern. A zero-length pattern is logged and
// ignored, not returned as an error. An id that does not fit in 16
// bits is rejected with ErrPidOverflow, since the compiled output
// table rows cannot represent it. Duplicate ids are silent no-ops.
// Register after Compile returns ErrAlreadyCompiled.
func (c *Context) Register(bytes []byte, id uint32, flags Flags) error {
	if c.compiled {
		return ErrAlreadyCompiled
	}
	if len(bytes) == 0 {
		c.opts.Logger.Warn().Msg("pfac: ignoring zero-length pattern")
		return nil
	}
	if id >= 1<<16 {
		return errors.Wrapf(ErrPidOverflow, "id=%d", id)
	}
	c.store.register(bytes, id, flags)
	return nil
}

// Compile builds the goto trie, solves failure links, flattens the
// delta table, stamps output presence, and builds the case-sensitive
// verifier index. Scratch construction structures are released
// afterward; only the delta table, packed output table and verifier
// index remain. Compile is idempotent-unsafe: calling it twice returns
// ErrAlreadyCompiled.
func (c *Context) Compile() error {
	if c.compiled {
		return ErrAlreadyCompiled
	}

	trie := buildGotoTrie(c.store)

	failure, err := solveFailures(trie, c.opts.QueueCapacity)
	if err != nil {
		return errors.Wrapf(err, "solving failure links over %d states", trie.stateCount())
	}

	wide := trie.stateCount() >= wideStateThresh
	delta, err := flattenDelta(trie, failure, wide, c.opts.QueueCapacity)
	if err != nil {
		return errors.Wrap(err, "flattening delta table")
	}
	stampOutputPresence(delta, trie.output)

	var aux *deltaTable
	if c.opts.DualWidth {
		aux, err = flattenDelta(trie, failure, !wide, c.opts.QueueCapacity)
		if err != nil {
			return errors.Wrap(err, "flattening auxiliary-width delta table")
		}
		stampOutputPresence(aux, trie.output)
	}

	c.verifier = buildVerifierIndex(c.store)
	c.output = packOutputTable(c.store, trie.output)
	c.stats = Stats{
		PatternCount:  len(c.store.patterns),
		StateCount:    trie.stateCount(),
		MinPatternLen: c.store.minLen,
		MaxPatternLen: c.store.maxLen,
		Wide:          wide,
	}
	c.delta = delta
	c.auxDelta = aux
	c.compiled = true
	c.store = nil // release pattern-store dedup hash, no longer needed after compile

	c.opts.Logger.Debug().
		Int("states", c.stats.StateCount).
		Int("patterns", c.stats.PatternCount).
		Bool("wide", c.stats.Wide).
		Msg("pfac: compiled")

	return nil
}

// NewScanner returns a new Scanner bound to this compiled Context.
// Any number of Scanners may share one Context concurrently; each
// Scanner/Sink pair must be used by a single goroutine at a time.
func (c *Context) NewScanner() (*Scanner, error) {
	if !c.compiled || c.delta == nil {
		return nil, ErrNotCompiled
	}
	return &Scanner{ctx: c}, nil
}

// Stats reports compiled-context diagnostics. Valid only after Compile.
func (c *Context) Stats() Stats {
	return c.stats
}

// SinkCapacity returns the minimum Sink capacity (in pattern ids) this
// context's scanners can emit into, i.e. max registered id + 1.
func (c *Context) SinkCapacity() uint32 {
	return uint32(len(c.verifier))
}

// WideDelta exposes a 32-bit delta table, for hybrid host/accelerator
// deployments that want to copy the contiguous row-major array to a
// device. It returns the auxiliary table when WithDualWidth built one
// in the wide form, otherwise the primary table when that one is wide
// (with or without DualWidth); when neither exists, or after Destroy,
// it returns nil, 0, false.
func (c *Context) WideDelta() (cells []uint32, stateCount int, ok bool) {
	if c.auxDelta == nil || !c.auxDelta.wide {
		if c.delta != nil && c.delta.wide {
			return c.delta.widecells, c.delta.stateCount, true
		}
		return nil, 0, false
	}
	return c.auxDelta.widecells, c.auxDelta.stateCount, true
}

// Destroy releases the compiled delta table, output table, and
// verifier index. The Context remains "compiled" (Register/Compile
// still refuse to run), NewScanner returns ErrNotCompiled, and Stats
// returns the stale figures from Compile; Destroy is meant for final
// teardown, not reuse.
func (c *Context) Destroy() {
	c.delta = nil
	c.auxDelta = nil
	c.output = nil
	c.verifier = nil
}
