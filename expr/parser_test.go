package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, input string) (Expr, error) {
	t.Helper()
	tokens, err := NewLexer(input).Tokenize()
	require.NoError(t, err)
	return NewParser(tokens).Parse()
}

func TestParser_Precedence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Expr
	}{
		{
			name:  "bare identifier",
			input: "A",
			want:  Var("A"),
		},
		{
			name:  "unary not",
			input: "NOT A",
			want:  Not(Var("A")),
		},
		{
			name:  "double negation is preserved",
			input: "~ ~ A",
			want:  Not(Not(Var("A"))),
		},
		{
			name:  "and binds tighter than or",
			input: "A | B & C",
			want:  Or(Var("A"), And(Var("B"), Var("C"))),
		},
		{
			name:  "xor sits between and and or",
			input: "A | B ^ C & D",
			want:  Or(Var("A"), Xor(Var("B"), And(Var("C"), Var("D")))),
		},
		{
			name:  "not binds tighter than and",
			input: "~A & B",
			want:  And(Not(Var("A")), Var("B")),
		},
		{
			name:  "left associativity",
			input: "A OR B OR C",
			want:  Or(Or(Var("A"), Var("B")), Var("C")),
		},
		{
			name:  "parentheses override precedence",
			input: "A AND (B OR C)",
			want:  And(Var("A"), Or(Var("B"), Var("C"))),
		},
		{
			name:  "redundant parentheses are transparent",
			input: "((A))",
			want:  Var("A"),
		},
		{
			name:  "not over parenthesized group",
			input: "NOT (A AND B)",
			want:  Not(And(Var("A"), Var("B"))),
		},
		{
			name:  "mixed aliases",
			input: "A and B + not C",
			want:  Or(And(Var("A"), Var("B")), Not(Var("C"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseString(t, tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "parsed %s, want %s", got, tt.want)
		})
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "only whitespace", input: "   "},
		{name: "leading binary operator", input: "AND A"},
		{name: "missing right operand", input: "A OR"},
		{name: "dangling not", input: "~"},
		{name: "unbalanced open paren", input: "(A | B"},
		{name: "unbalanced close paren", input: "A | B)"},
		{name: "empty parens", input: "()"},
		{name: "trailing identifier", input: "A B"},
		{name: "doubled operator", input: "A & & B"},
		{name: "stray equals", input: "A = B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseString(t, tt.input)
			require.Error(t, err)
			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr), "expected *ParseError, got %T", err)
		})
	}
}

func TestParser_ErrorPosition(t *testing.T) {
	_, err := parseString(t, "A & | B")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 4, parseErr.Pos)
}

func TestParser_RoundTrip(t *testing.T) {
	inputs := []string{
		"A",
		"~A",
		"~~A",
		"A & B | C",
		"A AND (B OR C)",
		"~(A | B) ^ C",
		"a1 * b2 + ~c3",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := parseString(t, input)
			require.NoError(t, err)

			second, err := parseString(t, Canonical(first))
			require.NoError(t, err)
			assert.True(t, first.Equal(second),
				"canonical %q re-parsed to a different tree", Canonical(first))
		})
	}
}
