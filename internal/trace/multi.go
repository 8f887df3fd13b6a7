package trace

import "errors"

// MultiTracer fans out trace events to multiple tracers, e.g. a stream to
// a file plus a ring kept for failure dumps.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

// NewMultiTracer creates a MultiTracer over the enabled tracers in ts.
func NewMultiTracer(level Level, ts ...Tracer) *MultiTracer {
	kept := make([]Tracer, 0, len(ts))
	for _, t := range ts {
		if t != nil && t.Enabled() {
			kept = append(kept, t)
		}
	}
	return &MultiTracer{tracers: kept, level: level}
}

// Emit sends the event to every tracer; each applies its own level.
func (t *MultiTracer) Emit(ev *Event) {
	if ev == nil || !t.level.ShouldEmit(ev.Scope) {
		return
	}
	for _, tr := range t.tracers {
		tr.Emit(ev)
	}
}

// Flush flushes all tracers and joins their errors.
func (t *MultiTracer) Flush() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Flush())
	}
	return errors.Join(errs...)
}

// Close closes all tracers and joins their errors.
func (t *MultiTracer) Close() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

// Level returns the configured level.
func (t *MultiTracer) Level() Level {
	return t.level
}

// Enabled returns true if tracing is active.
func (t *MultiTracer) Enabled() bool {
	return t.level > LevelOff && len(t.tracers) > 0
}
