package transform

import "github.com/beqtools/beq/expr"

// ApplyDeMorgans rewrites negated conjunctions and disjunctions in one pass:
//
//	~(A&B) => ~A|~B
//	~(A|B) => ~A&~B
//
// The pass works bottom-up, so a single application can leave fresh negated
// binaries behind when negations are nested; wrap with Repeat to rewrite to
// a fixpoint.
func ApplyDeMorgans(e expr.Expr) expr.Expr {
	switch n := e.(type) {
	case expr.VarExpr:
		return n

	case expr.UnaryExpr:
		operand := ApplyDeMorgans(n.Operand)
		if n.Op == expr.OpNot {
			if bin, ok := operand.(expr.BinaryExpr); ok {
				switch bin.Op {
				case expr.OpAnd:
					return expr.Or(expr.Not(bin.Left), expr.Not(bin.Right))
				case expr.OpOr:
					return expr.And(expr.Not(bin.Left), expr.Not(bin.Right))
				}
			}
		}
		return expr.UnaryExpr{Op: n.Op, Operand: operand}

	case expr.BinaryExpr:
		return expr.BinaryExpr{
			Op:    n.Op,
			Left:  ApplyDeMorgans(n.Left),
			Right: ApplyDeMorgans(n.Right),
		}

	default:
		return e
	}
}

// CollapseNegations removes doubled negations: ~~A => A.
func CollapseNegations(e expr.Expr) expr.Expr {
	switch n := e.(type) {
	case expr.UnaryExpr:
		operand := CollapseNegations(n.Operand)
		if n.Op == expr.OpNot {
			if inner, ok := operand.(expr.UnaryExpr); ok && inner.Op == expr.OpNot {
				return inner.Operand
			}
		}
		return expr.UnaryExpr{Op: n.Op, Operand: operand}

	case expr.BinaryExpr:
		return expr.BinaryExpr{
			Op:    n.Op,
			Left:  CollapseNegations(n.Left),
			Right: CollapseNegations(n.Right),
		}

	default:
		return e
	}
}
