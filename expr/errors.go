package expr

import "fmt"

// LexError reports an unrecognized character or a malformed identifier
// encountered while tokenizing.
type LexError struct {
	Pos  int
	Char rune
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s %q", e.Pos, e.Msg, e.Char)
}

// ParseError reports a structurally invalid token sequence: unbalanced
// parentheses, a missing operand, an empty expression, or trailing tokens.
type ParseError struct {
	Pos   int
	Token Token
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s, got %s", e.Pos, e.Msg, e.Token)
}
