// Package diagfmt renders expression errors for the terminal.
package diagfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"decint/internal/bignum"
	"decint/internal/calc"
)

// Diagnostic is one located error.
type Diagnostic struct {
	Source  string // file name, or "<arg>" for command-line input
	Line    int    // 1-based line number
	Col     int    // 0-based rune column within Text, -1 when unknown
	Text    string // the offending source line
	Message string
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	Width int // maximum display width of the echoed line, 0 means unlimited
}

// FromError locates err within line lineNo of source. A *calc.Error
// contributes its expression text and fault column, a bare
// *bignum.ParseError its input and position.
func FromError(source string, lineNo int, err error) Diagnostic {
	d := Diagnostic{Source: source, Line: lineNo, Col: -1, Message: err.Error()}
	var (
		cerr *calc.Error
		perr *bignum.ParseError
	)
	switch {
	case errors.As(err, &cerr):
		d.Text = cerr.Expr
		d.Message = cerr.Message()
		if cerr.Index >= 0 {
			d.Col = cerr.Col
		}
	case errors.As(err, &perr):
		d.Text = perr.Input
		if perr.Kind != bignum.MissingDigits {
			d.Col = perr.Pos
		}
	}
	return d
}

// Pretty writes d as
//
//	<source>:<line>:<col>: error: <message>
//	    <text>
//	    ^
//
// The caret line is padded by display width so wide runes stay aligned.
func Pretty(w io.Writer, d Diagnostic, opts PrettyOpts) error {
	loc := newColor(opts.Color, color.Bold)
	sev := newColor(opts.Color, color.FgRed, color.Bold)
	caret := newColor(opts.Color, color.FgGreen, color.Bold)

	var sb strings.Builder
	if d.Col >= 0 {
		loc.Fprintf(&sb, "%s:%d:%d:", d.Source, d.Line, d.Col+1)
	} else {
		loc.Fprintf(&sb, "%s:%d:", d.Source, d.Line)
	}
	sb.WriteString(" ")
	sev.Fprint(&sb, "error:")
	sb.WriteString(" ")
	sb.WriteString(d.Message)
	sb.WriteString("\n")

	if d.Text != "" {
		text, pad := d.Text, caretPadding(d.Text, d.Col)
		if opts.Width > 0 && runewidth.StringWidth(text) > opts.Width {
			if runewidth.StringWidth(pad) < opts.Width-3 {
				text = runewidth.Truncate(text, opts.Width, "...")
			}
		}
		sb.WriteString("    ")
		sb.WriteString(text)
		sb.WriteString("\n")
		if d.Col >= 0 {
			sb.WriteString("    ")
			sb.WriteString(pad)
			caret.Fprint(&sb, "^")
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// caretPadding returns the blank prefix that puts a caret under rune col of
// text. Tabs are kept so the terminal expands them the same way.
func caretPadding(text string, col int) string {
	if col <= 0 {
		return ""
	}
	var sb strings.Builder
	i := 0
	for _, r := range text {
		if i == col {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		i++
	}
	// a column past the end points just after the text
	if i < col {
		sb.WriteString(strings.Repeat(" ", col-i))
	}
	return sb.String()
}

func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Summary formats the closing count line of a batch run.
func Summary(total, failed int) string {
	if failed == 0 {
		return fmt.Sprintf("%d expressions evaluated", total)
	}
	return fmt.Sprintf("%d expressions evaluated, %d failed", total, failed)
}
