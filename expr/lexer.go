package expr

import (
	"unicode"
)

// Lexer scans an input string and produces the token sequence for one
// expression (or one full equation, if the input contains '=').
type Lexer struct {
	input    string
	position int
	table    *AliasTable
	tokens   []Token
}

// NewLexer returns a Lexer over the given input using the default alias table.
func NewLexer(input string) *Lexer {
	return NewLexerWithTable(input, DefaultTable())
}

// NewLexerWithTable returns a Lexer that classifies operator spellings
// against the given table.
func NewLexerWithTable(input string, table *AliasTable) *Lexer {
	return &Lexer{
		input:  input,
		table:  table,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input and returns the token list, terminated
// by a TokenEOF. It fails with *LexError on the first unrecognized character.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		currentPos := l.position
		switch c := l.input[l.position]; {
		case isWhitespace(c):
			l.position++

		case c == '(':
			l.addToken(TokenLParen, "(", 0, currentPos)
			l.position++

		case c == ')':
			l.addToken(TokenRParen, ")", 0, currentPos)
			l.position++

		case c == '=':
			l.addToken(TokenEquals, "=", 0, currentPos)
			l.position++

		case isLetter(c):
			l.lexWord(currentPos)

		case isDigit(c):
			// identifiers must start with a letter
			return nil, &LexError{Pos: currentPos, Char: rune(c), Msg: "identifier cannot start with digit"}

		default:
			// single-character symbolic operator, no greedy combining
			if op, ok := l.table.Resolve(string(c)); ok {
				l.addToken(TokenOperator, string(c), op, currentPos)
				l.position++
				continue
			}
			return nil, &LexError{Pos: currentPos, Char: rune(c), Msg: "unrecognized character"}
		}
	}

	l.addToken(TokenEOF, "", 0, l.position)
	return l.tokens, nil
}

// lexWord consumes the maximal run of identifier characters and classifies
// the word against the alias table: word operators become TokenOperator,
// everything else is a TokenIdentifier.
func (l *Lexer) lexWord(startPos int) {
	start := l.position
	for l.position < len(l.input) && isIdentChar(l.input[l.position]) {
		l.position++
	}
	word := l.input[start:l.position]
	if op, ok := l.table.Resolve(word); ok {
		l.addToken(TokenOperator, word, op, startPos)
		return
	}
	l.addToken(TokenIdentifier, word, 0, startPos)
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string, op OperatorKind, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Op:       op,
		Position: pos,
	})
}

func isWhitespace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c)
}
