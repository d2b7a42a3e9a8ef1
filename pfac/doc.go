// Package pfac implements a Parallel Failureless Aho-Corasick (PFAC)
// multi-pattern matcher: patterns are compiled into a single flat
// transition table with failure links inlined, so scanning never
// needs to follow a failure chain at runtime.
//
// Typical use:
//
//	ctx := pfac.NewContext()
//	ctx.Register([]byte("abc"), 0, pfac.NoCase)
//	if err := ctx.Compile(); err != nil { ... }
//	scanner, _ := ctx.NewScanner()
//	sink := pfac.NewSink(ctx.SinkCapacity())
//	n, err := scanner.Scan(buf, sink)
//
// A compiled Context is read-only and may be shared by any number of
// concurrent Scanners; each Scanner/Sink pair is owned by a single
// goroutine for the duration of a scan.
package pfac
