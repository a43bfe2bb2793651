package expr

import "sort"

// Expr represents a node in a parsed boolean expression tree.
type Expr interface {
	isExpr()
	String() string
	// Equal reports structural equality: same variant shape, same operator
	// kinds, same operand order, same variable names.
	Equal(other Expr) bool
}

var (
	_ Expr = VarExpr{}
	_ Expr = UnaryExpr{}
	_ Expr = BinaryExpr{}
)

// VarExpr is a leaf referencing a variable by its original spelling.
type VarExpr struct {
	Name string
}

func (VarExpr) isExpr() {}
func (e VarExpr) String() string {
	return e.Name
}

func (e VarExpr) Equal(other Expr) bool {
	if o, ok := other.(VarExpr); ok {
		return e.Name == o.Name
	}
	return false
}

// UnaryExpr is a prefix operator applied to a single operand.
type UnaryExpr struct {
	Op      OperatorKind
	Operand Expr
}

func (UnaryExpr) isExpr() {}
func (e UnaryExpr) String() string {
	return "(" + e.Op.String() + e.Operand.String() + ")"
}

func (e UnaryExpr) Equal(other Expr) bool {
	if o, ok := other.(UnaryExpr); ok {
		return e.Op == o.Op && e.Operand.Equal(o.Operand)
	}
	return false
}

// BinaryExpr is an infix operator applied to two operands.
type BinaryExpr struct {
	Op    OperatorKind
	Left  Expr
	Right Expr
}

func (BinaryExpr) isExpr() {}
func (e BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

func (e BinaryExpr) Equal(other Expr) bool {
	if o, ok := other.(BinaryExpr); ok {
		return e.Op == o.Op && e.Left.Equal(o.Left) && e.Right.Equal(o.Right)
	}
	return false
}

// Helper functions to construct AST nodes

// Var creates a variable reference.
func Var(name string) Expr {
	return VarExpr{Name: name}
}

// Not creates a logical not expression.
func Not(e Expr) Expr {
	return UnaryExpr{Op: OpNot, Operand: e}
}

// And creates a logical and expression.
func And(left, right Expr) Expr {
	return BinaryExpr{Op: OpAnd, Left: left, Right: right}
}

// Or creates a logical or expression.
func Or(left, right Expr) Expr {
	return BinaryExpr{Op: OpOr, Left: left, Right: right}
}

// Xor creates an exclusive-or expression.
func Xor(left, right Expr) Expr {
	return BinaryExpr{Op: OpXor, Left: left, Right: right}
}

// Binary creates a binary expression with an explicit operator kind.
func Binary(op OperatorKind, left, right Expr) Expr {
	return BinaryExpr{Op: op, Left: left, Right: right}
}

// Vars returns the distinct variable names referenced by the expression,
// sorted lexicographically. Downstream consumers (truth tables, evaluators)
// use this as the symbol list.
func Vars(e Expr) []string {
	seen := make(map[string]struct{})
	collectVars(e, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVars(e Expr, seen map[string]struct{}) {
	switch n := e.(type) {
	case VarExpr:
		seen[n.Name] = struct{}{}
	case UnaryExpr:
		collectVars(n.Operand, seen)
	case BinaryExpr:
		collectVars(n.Left, seen)
		collectVars(n.Right, seen)
	}
}
