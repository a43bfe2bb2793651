// Package beq canonicalizes boolean equations. It accepts an equation in any
// of the recognized human notations ("F = NOT A", "F=~A", "F = ! A") and
// produces the single canonical schema string downstream boolean-logic
// components consume ("F=~A").
package beq

import (
	"fmt"
	"strings"

	"github.com/beqtools/beq/expr"
)

// Equation is a parsed equation: a left-hand variable name and the
// right-hand expression tree. Downstream components that want to skip
// re-parsing consume the tree directly.
type Equation struct {
	Name string
	Root expr.Expr
}

// Canonical returns the canonical schema string for the equation.
func (eq *Equation) Canonical() string {
	return eq.Name + "=" + expr.Canonical(eq.Root)
}

func (eq *Equation) String() string {
	return eq.Canonical()
}

// FormatError reports an equation whose overall shape is invalid: a missing
// or duplicated '=' separator, or a left-hand side that is not a single
// identifier.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return "equation format error: " + e.Msg
}

// Engine parses and canonicalizes equations against one alias table.
// The zero engine is not usable; construct one with New or NewWithTable.
type Engine struct {
	table *expr.AliasTable
}

// New creates an Engine, loading custom operator aliases from the given yaml
// configuration file. An empty path yields the built-in aliases only.
func New(configPath string) (*Engine, error) {
	config, err := parseConfigurationFile(configPath)
	if err != nil {
		return nil, err
	}

	table := expr.NewAliasTable()
	if err := registerAliases(table, config); err != nil {
		return nil, err
	}
	return &Engine{table: table}, nil
}

// NewWithTable creates an Engine over an already-populated alias table.
func NewWithTable(table *expr.AliasTable) *Engine {
	return &Engine{table: table}
}

// Parse splits the equation on its separator, validates the left-hand side,
// and parses the right-hand side into a tree. It fails with *FormatError for
// a malformed equation shape, *expr.LexError for unrecognized characters on
// the right-hand side, and *expr.ParseError for structural problems.
func (e *Engine) Parse(raw string) (*Equation, error) {
	sep := strings.IndexByte(raw, '=')
	if sep < 0 {
		return nil, &FormatError{Msg: "missing '=' separator"}
	}
	if strings.IndexByte(raw[sep+1:], '=') >= 0 {
		return nil, &FormatError{Msg: "more than one '=' separator"}
	}

	name, err := e.parseName(raw[:sep])
	if err != nil {
		return nil, err
	}

	tokens, err := expr.NewLexerWithTable(raw[sep+1:], e.table).Tokenize()
	if err != nil {
		return nil, err
	}
	root, err := expr.NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}

	return &Equation{Name: name, Root: root}, nil
}

// Canonicalize is the string-to-string entry point: parse and re-emit the
// canonical schema.
func (e *Engine) Canonicalize(raw string) (string, error) {
	eq, err := e.Parse(raw)
	if err != nil {
		return "", err
	}
	return eq.Canonical(), nil
}

// parseName validates the left-hand side as exactly one identifier token.
func (e *Engine) parseName(lhs string) (string, error) {
	tokens, err := expr.NewLexerWithTable(lhs, e.table).Tokenize()
	if err != nil {
		return "", &FormatError{Msg: fmt.Sprintf("left side %q is not a single identifier: %v", strings.TrimSpace(lhs), err)}
	}
	// one identifier plus the trailing EOF token
	if len(tokens) != 2 || tokens[0].Type != expr.TokenIdentifier {
		return "", &FormatError{Msg: fmt.Sprintf("left side %q is not a single identifier", strings.TrimSpace(lhs))}
	}
	return tokens[0].Value, nil
}

var defaultEngine = NewWithTable(expr.DefaultTable())

// Parse parses an equation using the built-in aliases.
func Parse(raw string) (*Equation, error) {
	return defaultEngine.Parse(raw)
}

// Canonicalize canonicalizes an equation using the built-in aliases.
func Canonicalize(raw string) (string, error) {
	return defaultEngine.Canonicalize(raw)
}
