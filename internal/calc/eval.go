package calc

import (
	"context"
	"fmt"
	"strconv"

	"decint/internal/bignum"
	"decint/internal/trace"
)

// Eval evaluates a single prefix expression.
// The tracer and parent span are taken from ctx.
func Eval(ctx context.Context, expr string) (bignum.BigInt, error) {
	t := trace.FromContext(ctx)
	span := trace.Begin(t, trace.ScopeExpr, "expr", trace.ParentFromContext(ctx))

	v, err := eval(t, span.ID(), Normalize(expr))
	if err != nil {
		span.WithExtra("error", err.Error()).End(expr)
		return bignum.BigInt{}, err
	}
	span.WithExtra("result", v.String()).End(expr)
	return v, nil
}

func eval(t trace.Tracer, parent uint64, expr string) (bignum.BigInt, error) {
	toks := Tokenize(expr)
	if len(toks) == 0 {
		return bignum.BigInt{}, &Error{Expr: expr, Index: -1, Err: ErrEmpty}
	}

	stack := make([]bignum.BigInt, 0, len(toks))
	// starts[k] is the index of the first token of the subexpression in stack[k]
	starts := make([]int, 0, len(toks))
	for i := len(toks) - 1; i >= 0; i-- {
		tok := toks[i]
		op, ok := operators[tok.Text]
		if !ok {
			v, err := bignum.Parse(tok.Text)
			if err != nil {
				return bignum.BigInt{}, tokenError(expr, i, tok, err)
			}
			stack = append(stack, v)
			starts = append(starts, i)
			continue
		}

		if len(stack) < op.arity {
			return bignum.BigInt{}, tokenError(expr, i, tok,
				fmt.Errorf("%w: %q takes %d, have %d", ErrMissingOperand, tok.Text, op.arity, len(stack)))
		}
		v, err := apply(t, parent, tok.Text, op, stack)
		if err != nil {
			return bignum.BigInt{}, tokenError(expr, i, tok, err)
		}
		stack = append(stack[:len(stack)-op.arity], v)
		starts = append(starts[:len(starts)-op.arity], i)
	}

	if len(stack) != 1 {
		// stack[len-2] holds the leftmost subexpression that fed nothing
		idx := starts[len(starts)-2]
		err := fmt.Errorf("%w: %d values left", ErrExtraOperand, len(stack))
		return bignum.BigInt{}, tokenError(expr, idx, toks[idx], err)
	}
	return stack[0], nil
}

// apply runs op on the top of stack inside an op-scoped span.
func apply(t trace.Tracer, parent uint64, name string, op operator, stack []bignum.BigInt) (bignum.BigInt, error) {
	span := trace.Begin(t, trace.ScopeOp, name, parent)
	top := stack[len(stack)-1]
	if op.arity == 1 {
		v := op.unary(top)
		span.WithExtra("digits", digitCount(v)).End("")
		return v, nil
	}
	v, err := op.binary(top, stack[len(stack)-2])
	if err != nil {
		span.End(err.Error())
		return bignum.BigInt{}, err
	}
	span.WithExtra("digits", digitCount(v)).End("")
	return v, nil
}

func digitCount(v bignum.BigInt) string {
	return strconv.Itoa(v.Len())
}
