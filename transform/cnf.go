package transform

import "github.com/beqtools/beq/expr"

// ToCNF converts the expression to conjunctive normal form: XOR is
// eliminated, negations are pushed down to variables, and disjunctions are
// distributed over conjunctions.
func ToCNF(e expr.Expr) expr.Expr {
	return distribute(toNNF(ToPrimitives(e)))
}

// toNNF pushes negations inward until they apply only to variables. The
// input must already be XOR-free.
func toNNF(e expr.Expr) expr.Expr {
	switch n := e.(type) {
	case expr.VarExpr:
		return n

	case expr.UnaryExpr:
		switch operand := n.Operand.(type) {
		case expr.VarExpr:
			return n
		case expr.UnaryExpr:
			// ~~A => A
			return toNNF(operand.Operand)
		case expr.BinaryExpr:
			if operand.Op == expr.OpAnd {
				return expr.Or(toNNF(expr.Not(operand.Left)), toNNF(expr.Not(operand.Right)))
			}
			return expr.And(toNNF(expr.Not(operand.Left)), toNNF(expr.Not(operand.Right)))
		default:
			return n
		}

	case expr.BinaryExpr:
		return expr.BinaryExpr{Op: n.Op, Left: toNNF(n.Left), Right: toNNF(n.Right)}

	default:
		return e
	}
}

// distribute applies (A&B)|C => (A|C)&(B|C) and its mirror until the tree is
// a conjunction of clauses. The input must be in negation normal form.
func distribute(e expr.Expr) expr.Expr {
	bin, ok := e.(expr.BinaryExpr)
	if !ok {
		return e
	}

	left := distribute(bin.Left)
	right := distribute(bin.Right)

	if bin.Op == expr.OpOr {
		if l, ok := left.(expr.BinaryExpr); ok && l.Op == expr.OpAnd {
			return expr.And(
				distribute(expr.Or(l.Left, right)),
				distribute(expr.Or(l.Right, right)),
			)
		}
		if r, ok := right.(expr.BinaryExpr); ok && r.Op == expr.OpAnd {
			return expr.And(
				distribute(expr.Or(left, r.Left)),
				distribute(expr.Or(left, r.Right)),
			)
		}
	}

	return expr.BinaryExpr{Op: bin.Op, Left: left, Right: right}
}

// IsCNF reports whether the expression is a conjunction of clauses, where a
// clause is a disjunction of literals.
func IsCNF(e expr.Expr) bool {
	if bin, ok := e.(expr.BinaryExpr); ok && bin.Op == expr.OpAnd {
		return IsCNF(bin.Left) && IsCNF(bin.Right)
	}
	return isClause(e, expr.OpOr)
}

// IsDNF reports whether the expression is a disjunction of terms, where a
// term is a conjunction of literals.
func IsDNF(e expr.Expr) bool {
	if bin, ok := e.(expr.BinaryExpr); ok && bin.Op == expr.OpOr {
		return IsDNF(bin.Left) && IsDNF(bin.Right)
	}
	return isClause(e, expr.OpAnd)
}

func isClause(e expr.Expr, op expr.OperatorKind) bool {
	if bin, ok := e.(expr.BinaryExpr); ok && bin.Op == op {
		return isClause(bin.Left, op) && isClause(bin.Right, op)
	}
	return isLiteral(e)
}

func isLiteral(e expr.Expr) bool {
	switch n := e.(type) {
	case expr.VarExpr:
		return true
	case expr.UnaryExpr:
		_, ok := n.Operand.(expr.VarExpr)
		return n.Op == expr.OpNot && ok
	default:
		return false
	}
}
