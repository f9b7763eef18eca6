package token

import "testing"

func TestLookupIdent(t *testing.T) {
	testCases := []struct {
		ident    string
		expected TokenType
	}{
		{"class", CLASS},
		{"return", RETURN},
		{"None", NONE},
		{"True", TRUE},
		{"not", NOT},
		{"classy", IDENT},
		{"none", IDENT},
		{"true", IDENT},
		{"_x", IDENT},
	}
	for _, tc := range testCases {
		if got := LookupIdent(tc.ident); got != tc.expected {
			t.Errorf("LookupIdent(%q) = %v, want %v", tc.ident, got, tc.expected)
		}
	}
}

func TestEq(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Token
		expected bool
	}{
		{"same_keyword", Token{Type: CLASS}, Token{Type: CLASS}, true},
		{"different_types", Token{Type: CLASS}, Token{Type: DEF}, false},
		{"same_number", Token{Type: NUMBER, Literal: int64(5)}, Token{Type: NUMBER, Literal: int64(5)}, true},
		{"different_number", Token{Type: NUMBER, Literal: int64(5)}, Token{Type: NUMBER, Literal: int64(6)}, false},
		{"same_id", Token{Type: IDENT, Literal: "x"}, Token{Type: IDENT, Literal: "x"}, true},
		{"different_char", Token{Type: CHAR, Literal: byte('+')}, Token{Type: CHAR, Literal: byte('-')}, false},
		{"position_is_ignored", Token{Type: IDENT, Literal: "x", Line: 1}, Token{Type: IDENT, Literal: "x", Line: 9}, true},
	}
	for _, tc := range testCases {
		if got := Eq(tc.a, tc.b); got != tc.expected {
			t.Errorf("%s: Eq = %v, want %v", tc.name, got, tc.expected)
		}
	}
}

func TestString(t *testing.T) {
	testCases := []struct {
		tok      Token
		expected string
	}{
		{Token{Type: NUMBER, Literal: int64(42)}, "Number{42}"},
		{Token{Type: IDENT, Literal: "foo"}, "Id{foo}"},
		{Token{Type: STRING, Literal: "hi"}, "String{hi}"},
		{Token{Type: CHAR, Literal: byte('+')}, "Char{+}"},
		{Token{Type: NEWLINE}, "NEWLINE"},
		{Token{Type: EQ}, "=="},
	}
	for _, tc := range testCases {
		if got := tc.tok.String(); got != tc.expected {
			t.Errorf("String() = %q, want %q", got, tc.expected)
		}
	}
}
