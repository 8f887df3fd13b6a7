package calc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"decint/internal/bignum"
	"decint/internal/trace"
)

// Line is one expression read from a batch source.
type Line struct {
	No   int // 1-based line number in the source
	Text string
}

// ReadLines collects the expressions in r, skipping blank lines and
// lines whose first non-space character is '#'.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	no := 0
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, Line{No: no, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", no+1, err)
	}
	return lines, nil
}

// Result is the outcome of evaluating one Line.
type Result struct {
	Line  Line
	Value bignum.BigInt
	Err   error
}

// Record is the serialized form of a Result.
type Record struct {
	Line  int            `json:"line" msgpack:"line"`
	Expr  string         `json:"expr" msgpack:"expr"`
	Value *bignum.BigInt `json:"value,omitempty" msgpack:"value,omitempty"`
	Error string         `json:"error,omitempty" msgpack:"error,omitempty"`
}

// Record converts r for JSON or msgpack output.
func (r Result) Record() Record {
	rec := Record{Line: r.Line.No, Expr: r.Line.Text}
	if r.Err != nil {
		rec.Error = r.Err.Error()
		return rec
	}
	v := r.Value
	rec.Value = &v
	return rec
}

// Options tunes EvalAllWith.
type Options struct {
	// Jobs bounds the number of concurrent evaluations, GOMAXPROCS when <= 0.
	Jobs int
	// Progress, if set, receives every Result as it completes. The caller
	// owns the channel and closes it after EvalAllWith returns.
	Progress chan<- Result
}

// EvalAll evaluates lines concurrently with at most jobs workers.
// Results are in input order. An expression error is stored in its
// Result; only cancellation of ctx fails the batch.
func EvalAll(ctx context.Context, lines []Line, jobs int) ([]Result, error) {
	return EvalAllWith(ctx, lines, Options{Jobs: jobs})
}

// EvalAllWith is EvalAll with progress reporting.
func EvalAllWith(ctx context.Context, lines []Line, opts Options) ([]Result, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	t := trace.FromContext(ctx)
	span := trace.Begin(t, trace.ScopeBatch, "batch", trace.ParentFromContext(ctx))
	span.WithExtra("lines", strconv.Itoa(len(lines))).WithExtra("jobs", strconv.Itoa(jobs))
	ctx = trace.WithParent(ctx, span.ID())

	results := make([]Result, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			v, err := Eval(gctx, line.Text)
			results[i] = Result{Line: line, Value: v, Err: err}
			if opts.Progress == nil {
				return nil
			}
			select {
			case opts.Progress <- results[i]:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}

	if err := g.Wait(); err != nil {
		span.End(err.Error())
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		span.End(err.Error())
		return nil, err
	}

	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
		}
	}
	span.WithExtra("failed", strconv.Itoa(failed)).End("")
	return results, nil
}
