package expr

// Parser consumes tokens produced by the lexer and builds an Expr tree.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser over the given token sequence. The sequence
// is expected to end with a TokenEOF, as produced by Lexer.Tokenize.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

const lowestPrecedence = 1

// Parse builds the full expression tree. It fails with *ParseError when the
// input is empty, an operand or operator is missing, parentheses are
// unbalanced, or tokens remain after a complete expression.
func (p *Parser) Parse() (Expr, error) {
	if p.peek().Type == TokenEOF {
		return nil, &ParseError{Pos: p.peek().Position, Token: p.peek(), Msg: "expected expression"}
	}

	node, err := p.parseBinary(lowestPrecedence)
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, &ParseError{Pos: tok.Position, Token: tok, Msg: "unexpected trailing token"}
	}
	return node, nil
}

// parseBinary implements precedence climbing: parse one unary/primary term,
// then fold in binary operators of at least minPrec, left to right. Using
// prec+1 for the right-hand side keeps equal-precedence chains left-leaning.
func (p *Parser) parseBinary(minPrec int) (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.Type != TokenOperator || tok.Op == OpNot {
			break
		}
		prec := tok.Op.Precedence()
		if prec < minPrec {
			break
		}
		p.advance()

		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: tok.Op, Left: left, Right: right}
	}

	return left, nil
}

// parseUnary parses a primary term: an identifier, a parenthesized
// sub-expression (precedence resets inside the brackets), or a NOT applied
// to another unary term.
func (p *Parser) parseUnary() (Expr, error) {
	tok := p.peek()

	switch {
	case tok.Type == TokenIdentifier:
		p.advance()
		return VarExpr{Name: tok.Value}, nil

	case tok.Type == TokenOperator && tok.Op == OpNot:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return UnaryExpr{Op: OpNot, Operand: operand}, nil

	case tok.Type == TokenLParen:
		p.advance()
		inner, err := p.parseBinary(lowestPrecedence)
		if err != nil {
			return nil, err
		}
		closing := p.peek()
		if closing.Type != TokenRParen {
			return nil, &ParseError{Pos: closing.Position, Token: closing, Msg: "expected ')'"}
		}
		p.advance()
		return inner, nil

	default:
		return nil, &ParseError{Pos: tok.Position, Token: tok, Msg: "expected operand"}
	}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF, Position: -1}
	}
	return p.tokens[p.current]
}

func (p *Parser) advance() {
	p.current++
}
