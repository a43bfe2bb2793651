// Package transform provides explicit rewrites over boolean expression
// trees: De Morgan's laws, XOR elimination, double-negation collapsing, and
// conversion to conjunctive normal form. Canonicalization never applies
// these; callers opt in to each rewrite.
//
// Transformations are pure functions from tree to tree and compose:
//
//	toCNF := transform.Compose(transform.ToPrimitives, transform.ToCNF)
//	flat := transform.Repeat(transform.ApplyDeMorgans)(node)
package transform
