package expr

import "strings"

// Canonical renders the tree in its minimal textual form: canonical symbols,
// no whitespace, and parentheses only where removing them would change the
// re-parsed grouping. Any well-formed tree is printable.
func Canonical(e Expr) string {
	var b strings.Builder
	writeCanonical(&b, e)
	return b.String()
}

func writeCanonical(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case VarExpr:
		b.WriteString(n.Name)

	case UnaryExpr:
		b.WriteString(n.Op.String())
		// NOT binds tighter than any binary operator, so a bare binary
		// operand would regroup on re-parse.
		if _, ok := n.Operand.(BinaryExpr); ok {
			b.WriteByte('(')
			writeCanonical(b, n.Operand)
			b.WriteByte(')')
			return
		}
		writeCanonical(b, n.Operand)

	case BinaryExpr:
		writeOperand(b, n.Left, n.Op, false)
		b.WriteString(n.Op.String())
		writeOperand(b, n.Right, n.Op, true)
	}
}

func writeOperand(b *strings.Builder, side Expr, parent OperatorKind, isRight bool) {
	if needsParens(side, parent, isRight) {
		b.WriteByte('(')
		writeCanonical(b, side)
		b.WriteByte(')')
		return
	}
	writeCanonical(b, side)
}

// needsParens reports whether an operand of a binary operator must be
// bracketed to survive a re-parse: strictly lower precedence always, equal
// precedence only on the right (binary operators are left-associative, so an
// unbracketed right operand of equal precedence would regroup to the left).
func needsParens(side Expr, parent OperatorKind, isRight bool) bool {
	bin, ok := side.(BinaryExpr)
	if !ok {
		return false
	}
	if bin.Op.Precedence() < parent.Precedence() {
		return true
	}
	return isRight && bin.Op.Precedence() == parent.Precedence()
}
