// Package trace provides a tracing subsystem for the decint calculator.
//
// The trace package records commands, batch runs, expressions and the
// arithmetic operations inside them, which is how slow multiplications and
// long divisions are spotted in a large batch.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	decint batch --trace=- --trace-level=detail exprs.txt
//
// # Architecture
//
//   - Nop: zero-overhead no-op tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped when a command fails
//   - MultiTracer: combines multiple tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only failure dumps
//   - LevelPhase: command and batch boundaries
//   - LevelDetail: one span per expression
//   - LevelDebug: every arithmetic operation
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeExpr, "expr", parentID)
//	defer span.End("")
package trace
