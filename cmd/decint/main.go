package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"decint/internal/version"
)

// errReported marks a failure whose diagnostics were already written.
var errReported = errors.New("errors reported")

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "decint",
		Short: "Arbitrary-precision decimal integer calculator",
		Long: `decint evaluates prefix expressions over integers of any size.

  decint eval '* 12345678901234567890 98765432109876543210'
  decint batch exprs.txt --format json`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("color", "auto", "colorize diagnostics (auto|on|off)")
	flags.String("format", "text", "output format (text|json|msgpack)")
	flags.Bool("timings", false, "print phase timings to stderr")
	flags.String("config", "", "settings file (default: nearest decint.toml)")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.Int("trace-ring-size", 4096, "events kept by the ring tracer")

	root.AddCommand(newEvalCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newCmpCmd(a))
	root.AddCommand(newBenchCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	a.finish(stderr, err)
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "decint: %v\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int
}
