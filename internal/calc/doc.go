// Package calc evaluates prefix (Polish-notation) expressions over
// arbitrary-precision integers.
//
// An expression is a sequence of whitespace-separated tokens:
//
//	expr     = operand | unary expr | binary expr expr
//	unary    = "neg" | "abs"
//	binary   = "+" | "-" | "*" | "/" | "%" | "cmp" | "max" | "min" | "shl"
//	operand  = [ "-" ] digit { digit }
//
// Tokens are processed right to left with an operand stack, so
// "- 10 3" is 7 and "* + 1 2 3" is 9. Input is NFKC-normalized first,
// which lets full-width digits evaluate. "/" and "%" accept only a
// non-negative dividend and a positive divisor. "cmp" yields -1, 0 or 1.
// "shl x k" appends k zero digits to x.
//
// Every failure is an [*Error] carrying the offending token's index and
// column, from which diagfmt draws a caret.
package calc
