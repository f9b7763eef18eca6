package lexer

import (
	"reflect"
	"testing"

	"github.com/funvibe/mython/internal/token"
)

func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	lx, err := New(input)
	if err != nil {
		t.Fatalf("lexer failed on %q: %v", input, err)
	}
	return lx.Tokens()
}

func types(tokens []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func num(v int64) token.Token  { return token.Token{Type: token.NUMBER, Literal: v} }
func id(s string) token.Token  { return token.Token{Type: token.IDENT, Literal: s} }
func str(s string) token.Token { return token.Token{Type: token.STRING, Literal: s} }
func ch(c byte) token.Token    { return token.Token{Type: token.CHAR, Literal: c} }
func bare(t token.TokenType) token.Token {
	return token.Token{Type: t}
}

func expectTokens(t *testing.T, input string, expected []token.Token) {
	t.Helper()
	got := tokenize(t, input)
	if len(got) != len(expected) {
		t.Fatalf("token count mismatch for %q:\ngot  %v\nwant %v", input, got, expected)
	}
	for i := range expected {
		if !token.Eq(got[i], expected[i]) {
			t.Errorf("token %d of %q = %v, want %v", i, input, got[i], expected[i])
		}
	}
}

func TestSimpleStatements(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			"print_sum",
			"print 1 + 2\n",
			[]token.Token{bare(token.PRINT), num(1), ch('+'), num(2), bare(token.NEWLINE), bare(token.EOF)},
		},
		{
			"assignment",
			"x = 42\n",
			[]token.Token{id("x"), ch('='), num(42), bare(token.NEWLINE), bare(token.EOF)},
		},
		{
			"dotted_call",
			"a.b.f(1, 'two')\n",
			[]token.Token{
				id("a"), ch('.'), id("b"), ch('.'), id("f"),
				ch('('), num(1), ch(','), str("two"), ch(')'),
				bare(token.NEWLINE), bare(token.EOF),
			},
		},
		{
			"keywords",
			"class return if else def print and or not None True False\n",
			[]token.Token{
				bare(token.CLASS), bare(token.RETURN), bare(token.IF), bare(token.ELSE),
				bare(token.DEF), bare(token.PRINT), bare(token.AND), bare(token.OR),
				bare(token.NOT), bare(token.NONE), bare(token.TRUE), bare(token.FALSE),
				bare(token.NEWLINE), bare(token.EOF),
			},
		},
		{
			"keyword_prefix_is_identifier",
			"classes returned iffy\n",
			[]token.Token{id("classes"), id("returned"), id("iffy"), bare(token.NEWLINE), bare(token.EOF)},
		},
		{
			"comparison_operators",
			"a == b != c <= d >= e < f > g\n",
			[]token.Token{
				id("a"), bare(token.EQ), id("b"), bare(token.NOT_EQ), id("c"),
				bare(token.LESS_EQ), id("d"), bare(token.GREATER_EQ), id("e"),
				ch('<'), id("f"), ch('>'), id("g"),
				bare(token.NEWLINE), bare(token.EOF),
			},
		},
		{
			"lone_bang_is_char",
			"a ! b\n",
			[]token.Token{id("a"), ch('!'), id("b"), bare(token.NEWLINE), bare(token.EOF)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expectTokens(t, tc.input, tc.expected)
		})
	}
}

func TestMissingTrailingNewlineIsSynthesized(t *testing.T) {
	expectTokens(t, "x = 1", []token.Token{
		id("x"), ch('='), num(1), bare(token.NEWLINE), bare(token.EOF),
	})
}

func TestEmptyInput(t *testing.T) {
	expectTokens(t, "", []token.Token{bare(token.EOF)})
	expectTokens(t, "   \n\n  \n", []token.Token{bare(token.EOF)})
}

func TestCommentsAreSkipped(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			"comment_only_file",
			"# nothing here\n",
			[]token.Token{bare(token.EOF)},
		},
		{
			"trailing_comment",
			"x = 1  # the answer\n",
			[]token.Token{id("x"), ch('='), num(1), bare(token.NEWLINE), bare(token.EOF)},
		},
		{
			"comment_between_statements",
			"x = 1\n# note\ny = 2\n",
			[]token.Token{
				id("x"), ch('='), num(1), bare(token.NEWLINE),
				id("y"), ch('='), num(2), bare(token.NEWLINE),
				bare(token.EOF),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expectTokens(t, tc.input, tc.expected)
		})
	}
}

func TestBlankLinesCollapse(t *testing.T) {
	expectTokens(t, "x = 1\n\n\n\ny = 2\n", []token.Token{
		id("x"), ch('='), num(1), bare(token.NEWLINE),
		id("y"), ch('='), num(2), bare(token.NEWLINE),
		bare(token.EOF),
	})
}

func TestIndentation(t *testing.T) {
	input := "if x:\n  y = 1\n  if z:\n    y = 2\nprint y\n"
	expectTokens(t, input, []token.Token{
		bare(token.IF), id("x"), ch(':'), bare(token.NEWLINE),
		bare(token.INDENT),
		id("y"), ch('='), num(1), bare(token.NEWLINE),
		bare(token.IF), id("z"), ch(':'), bare(token.NEWLINE),
		bare(token.INDENT),
		id("y"), ch('='), num(2), bare(token.NEWLINE),
		bare(token.DEDENT), bare(token.DEDENT),
		bare(token.PRINT), id("y"), bare(token.NEWLINE),
		bare(token.EOF),
	})
}

func TestDedentsEmittedBeforeEof(t *testing.T) {
	input := "if x:\n  if y:\n    print 1\n"
	tokens := tokenize(t, input)
	// The two open levels close right before EOF.
	n := len(tokens)
	if tokens[n-1].Type != token.EOF ||
		tokens[n-2].Type != token.DEDENT ||
		tokens[n-3].Type != token.DEDENT {
		t.Fatalf("expected ... DEDENT DEDENT EOF, got %v", types(tokens))
	}
}

func TestIndentDedentBalance(t *testing.T) {
	inputs := []string{
		"x = 1\n",
		"if x:\n  y = 1\n",
		"if x:\n  if y:\n    if z:\n      print 1\n",
		"class A:\n  def f():\n    return 1\nprint A\n",
		"if x:\n  y = 1\nelse:\n  y = 2\n",
	}
	for _, input := range inputs {
		indents, dedents := 0, 0
		for _, tok := range tokenize(t, input) {
			switch tok.Type {
			case token.INDENT:
				indents++
			case token.DEDENT:
				dedents++
			}
		}
		if indents != dedents {
			t.Errorf("unbalanced indentation for %q: %d INDENT vs %d DEDENT", input, indents, dedents)
		}
	}
}

func TestBlankLineDoesNotAdjustIndentation(t *testing.T) {
	input := "if x:\n  y = 1\n\n  y = 2\n"
	expectTokens(t, input, []token.Token{
		bare(token.IF), id("x"), ch(':'), bare(token.NEWLINE),
		bare(token.INDENT),
		id("y"), ch('='), num(1), bare(token.NEWLINE),
		id("y"), ch('='), num(2), bare(token.NEWLINE),
		bare(token.DEDENT),
		bare(token.EOF),
	})
}

func TestNoConsecutiveNewlines(t *testing.T) {
	inputs := []string{
		"x = 1\n\n\ny = 2\n",
		"if a:\n  b = 1\n\nc = 2\n",
		"# only comments\n\n# more\nx = 1\n",
	}
	for _, input := range inputs {
		tokens := tokenize(t, input)
		for i := 1; i < len(tokens); i++ {
			if tokens[i].Type == token.NEWLINE && tokens[i-1].Type == token.NEWLINE {
				t.Errorf("consecutive NEWLINE tokens in %q: %v", input, types(tokens))
			}
		}
		if tokens[0].Type == token.NEWLINE {
			t.Errorf("leading NEWLINE in %q", input)
		}
	}
}

func TestTokenizationIsDeterministic(t *testing.T) {
	input := "class A(B):\n  def f(x):\n    return x + 1\n\nprint A\n"
	first := tokenize(t, input)
	second := tokenize(t, input)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("re-tokenizing the same source produced a different stream")
	}
}

func TestStringLiterals(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"double_quoted", `x = "hello"` + "\n", "hello"},
		{"single_quoted", "x = 'hello'\n", "hello"},
		{"double_inside_single", `x = '"quoted"'` + "\n", `"quoted"`},
		{"escaped_newline", `x = "a\nb"` + "\n", "a\nb"},
		{"escaped_tab", `x = "a\tb"` + "\n", "a\tb"},
		{"escaped_quote", `x = "say \"hi\""` + "\n", `say "hi"`},
		{"escaped_single_quote", `x = 'it\'s'` + "\n", "it's"},
		{"empty", `x = ""` + "\n", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := tokenize(t, tc.input)
			if tokens[2].Type != token.STRING {
				t.Fatalf("expected STRING, got %v", tokens[2])
			}
			if got := tokens[2].Literal.(string); got != tc.expected {
				t.Errorf("string payload = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestLexerErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"unterminated_string", `x = "abc` + "\n"},
		{"unknown_escape", `x = "a\qb"` + "\n"},
		{"raw_newline_in_string", "x = \"a\nb\"\n"},
		{"odd_indentation", "if x:\n   y = 1\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.input); err == nil {
				t.Fatalf("expected lexer error for %q", tc.input)
			}
		})
	}
}

func TestCurrentAndNextToken(t *testing.T) {
	lx, err := New("x = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if got := lx.CurrentToken(); got.Type != token.IDENT {
		t.Fatalf("CurrentToken = %v, want IDENT", got)
	}
	// CurrentToken does not advance.
	if got := lx.CurrentToken(); got.Type != token.IDENT {
		t.Fatalf("CurrentToken advanced the stream: %v", got)
	}
	seq := []token.TokenType{token.CHAR, token.NUMBER, token.NEWLINE, token.EOF}
	for _, want := range seq {
		if got := lx.NextToken(); got.Type != want {
			t.Fatalf("NextToken = %v, want %v", got, want)
		}
	}
	// The stream stays on EOF once it is reached.
	for i := 0; i < 3; i++ {
		if got := lx.NextToken(); got.Type != token.EOF {
			t.Fatalf("NextToken after EOF = %v, want EOF", got)
		}
	}
}

func TestExpect(t *testing.T) {
	lx, err := New("x = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	tok, diag := lx.Expect(token.IDENT)
	if diag != nil {
		t.Fatalf("Expect(IDENT) failed: %v", diag)
	}
	if tok.Literal != "x" {
		t.Errorf("Expect payload = %v, want x", tok.Literal)
	}
	if _, diag := lx.Expect(token.NUMBER); diag == nil {
		t.Error("Expect(NUMBER) on an IDENT front should fail")
	}
	if _, diag := lx.ExpectNext(token.CHAR); diag != nil {
		t.Errorf("ExpectNext(CHAR) failed: %v", diag)
	}
	tok, diag = lx.ExpectNext(token.NUMBER)
	if diag != nil {
		t.Fatalf("ExpectNext(NUMBER) failed: %v", diag)
	}
	if tok.Literal != int64(1) {
		t.Errorf("number payload = %v, want 1", tok.Literal)
	}
}

func TestTokenPositions(t *testing.T) {
	lx, err := New("x = 1\ny = 2\n")
	if err != nil {
		t.Fatal(err)
	}
	tokens := lx.Tokens()
	if tokens[0].Line != 1 || tokens[0].Column != 1 {
		t.Errorf("first token at %d:%d, want 1:1", tokens[0].Line, tokens[0].Column)
	}
	// y starts the second line.
	var yTok token.Token
	for _, tok := range tokens {
		if tok.Type == token.IDENT && tok.Literal == "y" {
			yTok = tok
		}
	}
	if yTok.Line != 2 || yTok.Column != 1 {
		t.Errorf("y at %d:%d, want 2:1", yTok.Line, yTok.Column)
	}
}
