package transform

import "github.com/beqtools/beq/expr"

// ToPrimitives rewrites the expression in terms of NOT, AND, and OR only,
// eliminating XOR:
//
//	A^B => (A&~B)|(~A&B)
func ToPrimitives(e expr.Expr) expr.Expr {
	switch n := e.(type) {
	case expr.UnaryExpr:
		return expr.UnaryExpr{Op: n.Op, Operand: ToPrimitives(n.Operand)}

	case expr.BinaryExpr:
		left := ToPrimitives(n.Left)
		right := ToPrimitives(n.Right)
		if n.Op == expr.OpXor {
			return expr.Or(
				expr.And(left, expr.Not(right)),
				expr.And(expr.Not(left), right),
			)
		}
		return expr.BinaryExpr{Op: n.Op, Left: left, Right: right}

	default:
		return e
	}
}
