// Package trace records what the decaf driver is doing.
//
// It stands in for a logging library: events are spans (begin/end) and
// points, grouped by scope and filtered by level.
//
//	decaf tokenize --trace=- --trace-level=detail a.decaf b.decaf
//
// Tracers:
//
//   - Nop: disabled tracing, zero overhead
//   - StreamTracer: writes each event to a file or stderr
//   - RingTracer: keeps the last N events in memory
//   - MultiTracer: fans out to several tracers
//
// Scopes, coarse to fine: ScopeDriver (one CLI command), ScopePass (a
// phase such as loading or scanning a batch), ScopeFile (one source file),
// ScopeToken (individual tokens, debug only).
//
// Tracers travel through the driver in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "scan", parentID)
//	defer span.End("")
package trace
