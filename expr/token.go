package expr

import "fmt"

// TokenType defines the kinds of tokens the lexer can produce.
type TokenType int

const (
	TokenIdentifier TokenType = iota // variable name
	TokenOperator                    // any operator spelling
	TokenLParen                      // '('
	TokenRParen                      // ')'
	TokenEquals                      // '='
	TokenEOF                         // end of input
)

func (t TokenType) String() string {
	switch t {
	case TokenIdentifier:
		return "identifier"
	case TokenOperator:
		return "operator"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenEquals:
		return "'='"
	case TokenEOF:
		return "end of input"
	default:
		return "?"
	}
}

// Token is a single lexical token with its type, literal value, and the
// starting byte offset in the original input.
type Token struct {
	Type     TokenType
	Value    string       // the literal text as written by the user
	Op       OperatorKind // set only when Type is TokenOperator
	Position int
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Value)
}
