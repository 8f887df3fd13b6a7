package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"decint/internal/trace"
)

// setupTracing reads the trace flags, falling back to the [trace] table of
// the config file, and attaches the tracer to the command context.
// It returns a cleanup function.
func (a *app) setupTracing(cmd *cobra.Command) (func(), error) {
	flags := cmd.Flags()

	level, err := trace.ParseLevel(setting(flags, "trace-level", a.cfg.Trace.Level))
	if err != nil {
		return nil, err
	}
	output := setting(flags, "trace", a.cfg.Trace.Output)
	// asking for an output without a level means the default detail view
	if level == trace.LevelOff && flags.Changed("trace") {
		level = trace.LevelDetail
	}
	mode, err := trace.ParseMode(setting(flags, "trace-mode", a.cfg.Trace.Mode))
	if err != nil {
		return nil, err
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	if level == trace.LevelOff {
		a.tracer = trace.Nop
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: output,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	a.tracer = tracer
	a.dumpOnError = level == trace.LevelError || mode == trace.ModeRing
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	return func() {
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}
