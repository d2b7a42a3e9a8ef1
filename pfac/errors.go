package pfac

import "github.com/pkg/errors"

// Sentinel errors for the conditions enumerated in the core's error
// handling design. InvalidArgument (zero-length pattern) and
// DuplicateId are not included here: the former is logged and
// ignored, the latter is a silent no-op, per spec.
var (
	// ErrPidOverflow is returned by Register when id does not fit in
	// the 16 bits the compiled OutputTable rows reserve for a pattern
	// id (bit 16 is the verify-bit).
	ErrPidOverflow = errors.New("pfac: pattern id exceeds 16 bits")

	// ErrCapacityExceeded is returned by Compile when the BFS queue
	// used by the failure solver or delta flattener overflows its
	// fixed capacity.
	ErrCapacityExceeded = errors.New("pfac: state queue capacity exceeded")

	// ErrOutOfMemory names the allocation-failure kind. No function in
	// this package returns it: the tables are allocated with make, and
	// a failed allocation there is not reported as an error.
	ErrOutOfMemory = errors.New("pfac: allocation failed")

	// ErrNotCompiled is returned by operations that require a
	// compiled context (NewScanner) before Compile has succeeded.
	ErrNotCompiled = errors.New("pfac: context is not compiled")

	// ErrAlreadyCompiled is returned by Register/Compile once the
	// context has already been prepared; mutation after Compile is
	// unsupported.
	ErrAlreadyCompiled = errors.New("pfac: context already compiled")

	// ErrSinkTooSmall is returned by Scan when the sink's capacity is
	// smaller than the pattern id space the context can emit.
	ErrSinkTooSmall = errors.New("pfac: sink capacity too small for pattern id space")
)
