package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		tree Expr
		want string
	}{
		{
			name: "leaf keeps original spelling",
			tree: Var("selA"),
			want: "selA",
		},
		{
			name: "unary not",
			tree: Not(Var("A")),
			want: "~A",
		},
		{
			name: "double negation preserved",
			tree: Not(Not(Var("A"))),
			want: "~~A",
		},
		{
			name: "not over binary needs parens",
			tree: Not(And(Var("A"), Var("B"))),
			want: "~(A&B)",
		},
		{
			name: "double negation over binary",
			tree: Not(Not(And(Var("A"), Var("B")))),
			want: "~~(A&B)",
		},
		{
			name: "higher-precedence operand needs no parens",
			tree: Or(And(Var("A"), Var("B")), Var("C")),
			want: "A&B|C",
		},
		{
			name: "lower-precedence right operand needs parens",
			tree: And(Var("A"), Or(Var("B"), Var("C"))),
			want: "A&(B|C)",
		},
		{
			name: "lower-precedence left operand needs parens",
			tree: And(Or(Var("A"), Var("B")), Var("C")),
			want: "(A|B)&C",
		},
		{
			name: "left-leaning chain needs no parens",
			tree: Or(Or(Var("A"), Var("B")), Var("C")),
			want: "A|B|C",
		},
		{
			name: "right-leaning chain keeps its grouping",
			tree: Or(Var("A"), Or(Var("B"), Var("C"))),
			want: "A|(B|C)",
		},
		{
			name: "xor between and and or",
			tree: Or(Xor(And(Var("A"), Var("B")), Var("C")), Var("D")),
			want: "A&B^C|D",
		},
		{
			name: "negated operands inside binary",
			tree: And(Not(Var("A")), Not(Var("B"))),
			want: "~A&~B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.tree))
		})
	}
}

// Canonical output must be a fixed point: printing, re-parsing, and printing
// again yields the same string.
func TestCanonical_Idempotent(t *testing.T) {
	inputs := []string{
		"NOT A",
		"A AND B OR C",
		"A AND (B OR C)",
		"~(A | B) ^ ~C",
		"A xor B xor C",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree, err := parseString(t, input)
			require.NoError(t, err)
			canonical := Canonical(tree)

			reparsed, err := parseString(t, canonical)
			require.NoError(t, err)
			assert.Equal(t, canonical, Canonical(reparsed))
		})
	}
}

// Stripping any one parenthesized group from canonical output must change
// the parse; otherwise the printer emitted a redundant pair.
func TestCanonical_MinimalParens(t *testing.T) {
	inputs := []string{
		"A AND (B OR C)",
		"NOT (A AND B)",
		"(A OR B) AND (C OR D)",
		"A OR (B OR C)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree, err := parseString(t, input)
			require.NoError(t, err)
			canonical := Canonical(tree)

			for _, stripped := range stripParenPairs(canonical) {
				other, err := parseString(t, stripped)
				if err != nil {
					continue
				}
				assert.False(t, other.Equal(tree),
					"removing parens (%q -> %q) did not change the parse", canonical, stripped)
			}
		})
	}
}

// stripParenPairs returns every variant of s with one matching pair of
// parentheses removed.
func stripParenPairs(s string) []string {
	var variants []string
	var stack []int
	for i, c := range s {
		switch c {
		case '(':
			stack = append(stack, i)
		case ')':
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			variants = append(variants, s[:open]+s[open+1:i]+s[i+1:])
		}
	}
	return variants
}
