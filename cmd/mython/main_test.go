package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/funvibe/mython/internal/config"
)

func TestIsSourceFile(t *testing.T) {
	testCases := []struct {
		path     string
		expected bool
	}{
		{"prog.my", true},
		{"prog.mython", true},
		{"dir/prog.my", true},
		{"prog.txt", false},
		{"prog", false},
	}
	for _, tc := range testCases {
		if got := isSourceFile(tc.path); got != tc.expected {
			t.Errorf("isSourceFile(%q) = %v, want %v", tc.path, got, tc.expected)
		}
	}
}

func TestRunSource(t *testing.T) {
	var out bytes.Buffer
	err := runSource("print 1 + 2\n", "<test>", &out)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "3\n" {
		t.Errorf("output = %q, want %q", out.String(), "3\n")
	}
}

func TestRunSourceReportsLexerError(t *testing.T) {
	var out bytes.Buffer
	err := runSource("x = \"broken\n", "<test>", &out)
	if err == nil {
		t.Fatal("expected a lexer error")
	}
	if !strings.Contains(err.Error(), "L001") {
		t.Errorf("error %q does not carry the lexer code", err)
	}
}

func TestRunSourceReportsRuntimeError(t *testing.T) {
	var out bytes.Buffer
	err := runSource("print 1 / 0\n", "<test>", &out)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "cannot div by zero") {
		t.Errorf("error %q does not carry the diagnostic", err)
	}
}

func TestReplRunsBlocksAgainstPersistentEnv(t *testing.T) {
	opts := replTestOptions()
	repl, err := NewRepl(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer repl.Close()

	input := strings.Join([]string{
		"x = 2",
		"if x == 2:",
		"  x = x * 10",
		"",
		"print x",
		"",
	}, "\n")
	var out bytes.Buffer
	if err := repl.Run(strings.NewReader(input), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "20\n") {
		t.Errorf("repl output %q does not contain the printed value", out.String())
	}
}

func TestReplEchoesBareExpressions(t *testing.T) {
	opts := replTestOptions()
	repl, err := NewRepl(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer repl.Close()

	var out bytes.Buffer
	if err := repl.Run(strings.NewReader("x = 6\nx * 7\n"), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "42") {
		t.Errorf("repl output %q does not echo the expression value", out.String())
	}
}

func replTestOptions() *config.Options {
	opts := config.Default()
	opts.Repl.HistoryPath = "off"
	return opts
}
