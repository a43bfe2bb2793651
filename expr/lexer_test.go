package expr

import (
	"errors"
	"reflect"
	"testing"
)

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Token
		wantErr bool
	}{
		{
			name:  "word operator",
			input: "NOT A",
			want: []Token{
				{Type: TokenOperator, Value: "NOT", Op: OpNot, Position: 0},
				{Type: TokenIdentifier, Value: "A", Position: 4},
				{Type: TokenEOF, Position: 5},
			},
		},
		{
			name:  "symbolic operator without spaces",
			input: "A&B",
			want: []Token{
				{Type: TokenIdentifier, Value: "A", Position: 0},
				{Type: TokenOperator, Value: "&", Op: OpAnd, Position: 1},
				{Type: TokenIdentifier, Value: "B", Position: 2},
				{Type: TokenEOF, Position: 3},
			},
		},
		{
			name:  "full equation with parens",
			input: "F = (A or B)",
			want: []Token{
				{Type: TokenIdentifier, Value: "F", Position: 0},
				{Type: TokenEquals, Value: "=", Position: 2},
				{Type: TokenLParen, Value: "(", Position: 4},
				{Type: TokenIdentifier, Value: "A", Position: 5},
				{Type: TokenOperator, Value: "or", Op: OpOr, Position: 7},
				{Type: TokenIdentifier, Value: "B", Position: 10},
				{Type: TokenRParen, Value: ")", Position: 11},
				{Type: TokenEOF, Position: 12},
			},
		},
		{
			name:  "leading and trailing whitespace",
			input: "  !    A   ",
			want: []Token{
				{Type: TokenOperator, Value: "!", Op: OpNot, Position: 2},
				{Type: TokenIdentifier, Value: "A", Position: 7},
				{Type: TokenEOF, Position: 11},
			},
		},
		{
			name:  "multi-character identifier with digits",
			input: "sel2 + carry",
			want: []Token{
				{Type: TokenIdentifier, Value: "sel2", Position: 0},
				{Type: TokenOperator, Value: "+", Op: OpOr, Position: 5},
				{Type: TokenIdentifier, Value: "carry", Position: 7},
				{Type: TokenEOF, Position: 12},
			},
		},
		{
			name:  "mixed-case word is an identifier, not an operator",
			input: "Not",
			want: []Token{
				{Type: TokenIdentifier, Value: "Not", Position: 0},
				{Type: TokenEOF, Position: 3},
			},
		},
		{
			name:  "empty input",
			input: "",
			want: []Token{
				{Type: TokenEOF, Position: 0},
			},
		},
		{
			name:    "identifier starting with digit",
			input:   "2B | A",
			wantErr: true,
		},
		{
			name:    "unrecognized character",
			input:   "A @ B",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLexer(tt.input).Tokenize()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Tokenize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var lexErr *LexError
				if !errors.As(err, &lexErr) {
					t.Fatalf("expected *LexError, got %T", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexer_ErrorPositions(t *testing.T) {
	_, err := NewLexer("A & 5x").Tokenize()
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexError, got %v", err)
	}
	if lexErr.Pos != 4 {
		t.Errorf("Pos = %d, want 4", lexErr.Pos)
	}
	if lexErr.Char != '5' {
		t.Errorf("Char = %q, want '5'", lexErr.Char)
	}
}

func TestLexer_CustomTable(t *testing.T) {
	table := NewAliasTable()
	if err := table.Register("nand", OpAnd); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := table.Register(".", OpAnd); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tokens, err := NewLexerWithTable("A nand B . C", table).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	ops := 0
	for _, tok := range tokens {
		if tok.Type == TokenOperator {
			ops++
			if tok.Op != OpAnd {
				t.Errorf("token %q resolved to %v, want OpAnd", tok.Value, tok.Op)
			}
		}
	}
	if ops != 2 {
		t.Errorf("got %d operator tokens, want 2", ops)
	}

	// default table must stay untouched
	if _, ok := DefaultTable().Resolve("nand"); ok {
		t.Error("registration leaked into the default table")
	}
}
