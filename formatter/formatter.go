package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/beqtools/beq"
	"github.com/beqtools/beq/expr"
)

var (
	errorStyle     = color.New(color.FgRed, color.Bold)
	kindStyle      = color.New(color.FgYellow, color.Bold)
	fileStyle      = color.New(color.FgCyan, color.Bold)
	inputStyle     = color.New(color.FgWhite)
	canonicalStyle = color.New(color.FgGreen, color.Bold)
)

// FormatResults renders batch canonicalization results as aligned
// "input -> canonical" lines, grouped under their source file.
func FormatResults(results []beq.Result) string {
	var builder strings.Builder

	width := 0
	for _, r := range results {
		if len(r.Input) > width {
			width = len(r.Input)
		}
	}

	lastFile := ""
	for _, r := range results {
		if r.Filename != "" && r.Filename != lastFile {
			builder.WriteString(fileStyle.Sprint(r.Filename) + "\n")
			lastFile = r.Filename
		}
		builder.WriteString(fmt.Sprintf("  %s -> %s\n",
			inputStyle.Sprintf("%-*s", width, r.Input),
			canonicalStyle.Sprint(r.Canonical)))
	}

	return builder.String()
}

// FormatError renders an error with its kind highlighted so users can tell
// a lexing problem from a structural or equation-shape problem.
func FormatError(err error) string {
	var (
		lexErr    *expr.LexError
		parseErr  *expr.ParseError
		formatErr *beq.FormatError
	)

	kind := "error"
	switch {
	case errors.As(err, &lexErr):
		kind = "lex error"
	case errors.As(err, &parseErr):
		kind = "parse error"
	case errors.As(err, &formatErr):
		kind = "equation format error"
	}

	return fmt.Sprintf("%s %s: %s",
		errorStyle.Sprint("error:"),
		kindStyle.Sprint(kind),
		err.Error())
}
