package expr

import (
	"fmt"
	"unicode"
)

// OperatorKind identifies a recognized boolean operator.
type OperatorKind int

const (
	_ OperatorKind = iota
	OpNot
	OpAnd
	OpXor
	OpOr
)

// String returns the canonical symbol for the operator.
func (k OperatorKind) String() string {
	switch k {
	case OpNot:
		return "~"
	case OpAnd:
		return "&"
	case OpXor:
		return "^"
	case OpOr:
		return "|"
	default:
		return "?"
	}
}

// Precedence returns the binding strength of the operator.
// NOT binds tightest, then AND, then XOR, then OR.
func (k OperatorKind) Precedence() int {
	switch k {
	case OpNot:
		return 4
	case OpAnd:
		return 3
	case OpXor:
		return 2
	case OpOr:
		return 1
	default:
		return 0
	}
}

// Arity returns the number of operands the operator takes.
func (k OperatorKind) Arity() int {
	if k == OpNot {
		return 1
	}
	return 2
}

// AliasTable maps every recognized spelling of an operator to its kind.
// The default table is read-only; registration happens only on copies
// created with NewAliasTable.
type AliasTable struct {
	ops map[string]OperatorKind
}

var defaultTable = &AliasTable{ops: map[string]OperatorKind{
	"NOT": OpNot, "not": OpNot, "~": OpNot, "!": OpNot,
	"AND": OpAnd, "and": OpAnd, "&": OpAnd, "*": OpAnd,
	"OR": OpOr, "or": OpOr, "|": OpOr, "+": OpOr,
	"XOR": OpXor, "xor": OpXor, "^": OpXor,
}}

// DefaultTable returns the process-wide table of built-in spellings.
func DefaultTable() *AliasTable {
	return defaultTable
}

// NewAliasTable returns a mutable copy of the default table, suitable for
// registering additional aliases.
func NewAliasTable() *AliasTable {
	ops := make(map[string]OperatorKind, len(defaultTable.ops))
	for s, k := range defaultTable.ops {
		ops[s] = k
	}
	return &AliasTable{ops: ops}
}

// Resolve looks up a spelling and reports whether it names an operator.
// Matching is case-sensitive: "NOT" and "not" resolve, "Not" does not.
func (t *AliasTable) Resolve(spelling string) (OperatorKind, bool) {
	k, ok := t.ops[spelling]
	return k, ok
}

// ResolveEquals reports whether the spelling is the equation separator.
func (t *AliasTable) ResolveEquals(spelling string) bool {
	return spelling == "="
}

// Register adds a new spelling for the given operator kind. A spelling must
// be either a word (letters only, so the lexer scans it as an identifier
// would be scanned) or a single non-letter symbol character; multi-character
// symbols cannot be produced by the single-pass lexer and are rejected.
// Registering a spelling already bound to a different kind is an error.
func (t *AliasTable) Register(spelling string, kind OperatorKind) error {
	if spelling == "" {
		return fmt.Errorf("register operator alias: empty spelling")
	}
	if kind < OpNot || kind > OpOr {
		return fmt.Errorf("register operator alias %q: unknown operator kind", spelling)
	}
	if !validAliasSpelling(spelling) {
		return fmt.Errorf("register operator alias %q: must be a word or a single symbol", spelling)
	}
	if existing, ok := t.ops[spelling]; ok && existing != kind {
		return fmt.Errorf("register operator alias %q: already bound to %s", spelling, existing)
	}
	if spelling == "=" || spelling == "(" || spelling == ")" {
		return fmt.Errorf("register operator alias %q: reserved punctuation", spelling)
	}
	t.ops[spelling] = kind
	return nil
}

func validAliasSpelling(s string) bool {
	runes := []rune(s)
	if len(runes) == 1 && !unicode.IsLetter(runes[0]) && !unicode.IsDigit(runes[0]) && !unicode.IsSpace(runes[0]) {
		return true
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
