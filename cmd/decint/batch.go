package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"decint/internal/calc"
	"decint/internal/config"
	"decint/internal/diagfmt"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		jobs   int
		uiFlag string
	)
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate one expression per line",
		Long: `Evaluate every line of FILE ("-" for stdin) in parallel. Blank lines
and lines starting with '#' are skipped. Results keep input order; a
failing line is reported and the rest still evaluate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("jobs") {
				jobs = a.cfg.Batch.Jobs
			}
			if jobs < 0 {
				return fmt.Errorf("--jobs must be >= 0, got %d", jobs)
			}
			mode, err := readUIMode(uiFlag)
			if err != nil {
				return err
			}
			return a.runBatch(cmd, args[0], jobs, shouldUseTUI(mode, cmd.ErrOrStderr()))
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "parallel workers (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&uiFlag, "ui", "off", "progress view on stderr (auto|on|off)")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, path string, jobs int, useUI bool) error {
	source := path
	phase := a.timer.Begin("read")
	var (
		lines []calc.Line
		err   error
	)
	if path == "-" {
		source = "<stdin>"
		lines, err = calc.ReadLines(cmd.InOrStdin())
	} else {
		lines, err = readFile(path)
	}
	a.timer.End(phase, strconv.Itoa(len(lines))+" lines")
	if err != nil {
		return err
	}

	phase = a.timer.Begin("eval")
	var results []calc.Result
	if useUI {
		results, err = evalWithUI(cmd.Context(), source, lines, jobs, cmd.ErrOrStderr())
	} else {
		results, err = calc.EvalAll(cmd.Context(), lines, jobs)
	}
	a.timer.End(phase, "")
	if err != nil {
		return err
	}

	phase = a.timer.Begin("write")
	defer a.timer.End(phase, "")

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	failed := 0
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		failed++
		if err := a.report(errOut, source, r.Line.No, r.Err); !errors.Is(err, errReported) {
			return err
		}
	}
	if err := writeResults(out, a.format, results); err != nil {
		return err
	}

	if failed > 0 {
		fmt.Fprintln(errOut, diagfmt.Summary(len(results), failed))
		return errReported
	}
	return nil
}

func readFile(path string) ([]calc.Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := calc.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// writeResults prints one value per line for text output, skipping
// failures, or every Record for JSON (one array) and msgpack (a stream).
func writeResults(w io.Writer, format config.Format, results []calc.Result) error {
	switch format {
	case config.FormatText:
		for _, r := range results {
			if r.Err != nil {
				continue
			}
			if _, err := fmt.Fprintln(w, r.Value); err != nil {
				return err
			}
		}
		return nil
	case config.FormatJSON:
		recs := make([]calc.Record, len(results))
		for i, r := range results {
			recs[i] = r.Record()
		}
		return encode(w, format, recs)
	default:
		for _, r := range results {
			if err := encode(w, format, r.Record()); err != nil {
				return err
			}
		}
		return nil
	}
}
