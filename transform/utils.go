package transform

import "github.com/beqtools/beq/expr"

// Transformation is a pure rewrite from one expression tree to another.
type Transformation func(expr.Expr) expr.Expr

// Compose chains transformations left to right: the first named runs first.
func Compose(ts ...Transformation) Transformation {
	return func(e expr.Expr) expr.Expr {
		for _, t := range ts {
			e = t(e)
		}
		return e
	}
}

const maxRepeatIterations = 1000

// Repeat applies the transformation until it no longer changes the tree.
// Rewrites here strictly shrink or locally reorder the tree, so a fixpoint
// is always reached; the iteration cap only guards a misbehaving caller-
// supplied transformation.
func Repeat(t Transformation) Transformation {
	return func(e expr.Expr) expr.Expr {
		for i := 0; i < maxRepeatIterations; i++ {
			next := t(e)
			if next.Equal(e) {
				return next
			}
			e = next
		}
		return e
	}
}
