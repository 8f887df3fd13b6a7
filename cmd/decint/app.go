package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"decint/internal/config"
	"decint/internal/diagfmt"
	"decint/internal/observ"
	"decint/internal/trace"
)

// app is the state shared by one CLI invocation.
type app struct {
	cfg     config.Config
	color   bool
	format  config.Format
	timings bool
	timer   *observ.Timer

	tracer      trace.Tracer
	dumpOnError bool
	cmdSpan     *trace.Span
	closeTrace  func()
}

// setup resolves settings from the config file and flags, flags winning
// when set explicitly, and installs the tracer on the command context.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if cfgPath != "" {
		a.cfg, err = config.Load(cfgPath)
	} else {
		a.cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}

	colorMode, err := config.ParseColor(setting(flags, "color", a.cfg.Output.Color))
	if err != nil {
		return err
	}
	switch colorMode {
	case config.ColorOn:
		a.color = true
	case config.ColorOff:
		a.color = false
	default:
		a.color = isTerminal(cmd.ErrOrStderr()) && os.Getenv("NO_COLOR") == ""
	}

	if a.format, err = config.ParseFormat(setting(flags, "format", a.cfg.Output.Format)); err != nil {
		return err
	}
	if a.timings, err = flags.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	a.timer = observ.NewTimer()

	closeTrace, err := a.setupTracing(cmd)
	if err != nil {
		return err
	}
	a.closeTrace = closeTrace

	a.cmdSpan = trace.Begin(a.tracer, trace.ScopeCommand, cmd.Name(), 0)
	ctx := trace.WithParent(cmd.Context(), a.cmdSpan.ID())
	cmd.SetContext(ctx)
	return nil
}

// finish closes the command span, prints timings and releases the tracer.
// A failed command dumps the ring tracer to stderr.
func (a *app) finish(stderr io.Writer, cmdErr error) {
	if a.cmdSpan != nil {
		detail := ""
		if cmdErr != nil {
			detail = cmdErr.Error()
		}
		a.cmdSpan.End(detail)
	}
	if cmdErr != nil && a.dumpOnError && a.tracer != nil {
		fmt.Fprintln(stderr, "trace (most recent events):")
		if err := trace.Dump(a.tracer, stderr, trace.FormatText); err != nil {
			fmt.Fprintf(stderr, "trace: dump error: %v\n", err)
		}
	}
	if a.timings && a.timer != nil {
		fmt.Fprint(stderr, a.timer.Summary())
	}
	if a.closeTrace != nil {
		a.closeTrace()
	}
}

// setting returns the flag value when the user set it, otherwise fromFile.
func setting(flags *pflag.FlagSet, name, fromFile string) string {
	if flags.Changed(name) || fromFile == "" {
		v, err := flags.GetString(name)
		if err == nil {
			return v
		}
	}
	return fromFile
}

// report renders err as a diagnostic and returns errReported.
func (a *app) report(w io.Writer, source string, line int, err error) error {
	d := diagfmt.FromError(source, line, err)
	if perr := diagfmt.Pretty(w, d, diagfmt.PrettyOpts{Color: a.color}); perr != nil {
		return fmt.Errorf("%w (while reporting: %w)", err, perr)
	}
	return errReported
}
