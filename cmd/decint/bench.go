package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"decint/internal/bignum"
	"decint/internal/config"
	"decint/internal/observ"
	"decint/internal/prof"
	"decint/internal/trace"
)

type benchOptions struct {
	digits []int
	runs   int
	seed   uint64
	prof   prof.Options
}

func newBenchCmd(a *app) *cobra.Command {
	var opts benchOptions
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time multiplication and division on generated operands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, n := range opts.digits {
				if n <= 0 {
					return fmt.Errorf("--digits entries must be positive, got %d", n)
				}
			}
			if opts.runs <= 0 {
				return fmt.Errorf("--runs must be positive, got %d", opts.runs)
			}

			session, err := prof.Start(opts.prof)
			if err != nil {
				return err
			}
			summaries, err := a.runBench(cmd, opts)
			if stopErr := session.Stop(); err == nil {
				err = stopErr
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.format != config.FormatText {
				return encode(out, a.format, summaries)
			}
			for _, s := range summaries {
				if _, err := fmt.Fprintln(out, s); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&opts.digits, "digits", []int{8, 64, 256}, "operand sizes in digits")
	cmd.Flags().IntVar(&opts.runs, "runs", 20, "timed runs per operation and size")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "operand generator seed")
	cmd.Flags().StringVar(&opts.prof.CPU, "cpu-profile", "", "write a CPU profile to file")
	cmd.Flags().StringVar(&opts.prof.Mem, "mem-profile", "", "write a heap profile to file")
	cmd.Flags().StringVar(&opts.prof.Trace, "runtime-trace", "", "write a Go runtime trace to file")
	return cmd
}

func (a *app) runBench(cmd *cobra.Command, opts benchOptions) ([]observ.Summary, error) {
	ctx := cmd.Context()
	t := trace.FromContext(ctx)
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))

	summaries := make([]observ.Summary, 0, 2*len(opts.digits))
	for _, n := range opts.digits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := strconv.Itoa(n)
		phase := a.timer.Begin("bench/" + name)
		span := trace.Begin(t, trace.ScopeBatch, "bench", trace.ParentFromContext(ctx))
		span.WithExtra("digits", name)

		x, y := benchOperand(rng, n), benchOperand(rng, n)
		product := bignum.Mul(x, y)
		dividend := bignum.Add(product, bignum.Sub(y, bignum.One()))

		mul := observ.Stats{Name: "mul/" + name}
		mul.Measure(opts.runs, func() { bignum.Mul(x, y) })

		div := observ.Stats{Name: "div/" + name}
		var divErr error
		div.Measure(opts.runs, func() {
			if _, err := bignum.Div(dividend, y); err != nil {
				divErr = err
			}
		})
		span.End("")
		a.timer.End(phase, "")
		if divErr != nil {
			return nil, divErr
		}

		for _, s := range []*observ.Stats{&mul, &div} {
			sum, err := s.Summarize()
			if err != nil {
				return nil, err
			}
			summaries = append(summaries, sum)
		}
	}
	return summaries, nil
}

// benchOperand returns a positive integer of exactly n digits.
func benchOperand(rng *rand.Rand, n int) bignum.BigInt {
	var sb strings.Builder
	sb.Grow(n)
	sb.WriteByte(byte('1' + rng.IntN(9)))
	for i := 1; i < n; i++ {
		sb.WriteByte(byte('0' + rng.IntN(10)))
	}
	return bignum.MustParse(sb.String())
}
