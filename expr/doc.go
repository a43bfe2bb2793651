// Package expr implements the lexing, parsing, and canonical printing of
// boolean expressions.
//
// Input accepts the word operators NOT, AND, OR, XOR (upper or lower case),
// their symbolic aliases (~ ! for NOT, & * for AND, | + for OR, ^ for XOR),
// explicit parentheses, and arbitrary whitespace between tokens. Expressions
// are parsed into an Expr tree honoring the precedence
//
//	NOT > AND > XOR > OR
//
// with binary operators associating to the left. Canonical renders a tree
// back to its minimal textual form: symbolic operators only, no whitespace,
// and parentheses only where removing them would change the parse.
//
// A typical round trip:
//
//	tokens, err := expr.NewLexer("A AND (B OR C)").Tokenize()
//	node, err := expr.NewParser(tokens).Parse()
//	s := expr.Canonical(node) // "A&(B|C)"
//
// The lexer and parser never mutate shared state; every call operates on its
// own token slice and tree, so concurrent use requires no coordination.
package expr
