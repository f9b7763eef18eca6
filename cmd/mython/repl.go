package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/mython/internal/ast"
	"github.com/funvibe/mython/internal/config"
	"github.com/funvibe/mython/internal/evaluator"
)

var (
	accentColor = lipgloss.Color("#3B82F6")
	errorColor  = lipgloss.Color("#EF4444")
	mutedColor  = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// Repl evaluates blocks of input against one persistent environment.
// Input accumulates while a block is open (a line ending in ':' opens
// one) and runs when a blank line closes it; plain statements run
// immediately. Completed inputs are recorded in the history store.
type Repl struct {
	opts    *config.Options
	eval    *evaluator.Evaluator
	env     *evaluator.Environment
	history *HistoryStore
	styled  bool
}

func NewRepl(opts *config.Options) (*Repl, error) {
	r := &Repl{
		opts:   opts,
		eval:   evaluator.New(),
		env:    evaluator.NewEnvironment(),
		styled: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
	if path := opts.Repl.HistoryPath; path != "" && path != "off" {
		history, err := OpenHistory(path)
		if err != nil {
			// History is a convenience; the session works without it.
			fmt.Fprintln(os.Stderr, "mython: history disabled:", err)
		} else {
			r.history = history
		}
	}
	return r, nil
}

func (r *Repl) Close() {
	if r.history != nil {
		r.history.Close()
	}
}

func (r *Repl) styleAs(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

func (r *Repl) Run(in io.Reader, out io.Writer) error {
	r.eval.Out = out
	fmt.Fprintln(out, r.styleAs(mutedStyle, "mython interactive session — empty line runs an open block, ctrl-d exits"))

	scanner := bufio.NewScanner(in)
	var block []string
	for {
		prompt := r.opts.Repl.Prompt
		if len(block) > 0 {
			prompt = r.opts.Repl.ContinuationPrompt
		}
		fmt.Fprint(out, r.styleAs(promptStyle, prompt))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()

		if len(block) > 0 {
			if strings.TrimSpace(line) != "" {
				block = append(block, line)
				continue
			}
			input := strings.Join(block, "\n") + "\n"
			block = nil
			r.run(input, out)
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasSuffix(strings.TrimRight(line, " "), ":") {
			block = []string{line}
			continue
		}
		r.run(line+"\n", out)
	}
}

func (r *Repl) run(input string, out io.Writer) {
	if r.history != nil {
		if err := r.history.Add(input); err != nil {
			fmt.Fprintln(os.Stderr, "mython: history write failed:", err)
		}
	}
	program, diags := buildProgram(input, "<repl>")
	if diags != nil {
		for _, d := range diags {
			fmt.Fprintln(out, r.styleAs(errorStyle, d.Error()))
		}
		return
	}
	result := r.eval.Eval(program, r.env)
	if errObj, ok := result.(*evaluator.Error); ok {
		fmt.Fprintln(out, r.styleAs(errorStyle, "runtime error: "+errObj.Message))
		return
	}
	r.showResult(program, result, out)
}

// showResult echoes the value of a trailing bare expression, the way an
// interactive session is expected to. Print output has already gone to
// the sink, so anything else stays silent.
func (r *Repl) showResult(program *ast.Program, result evaluator.Object, out io.Writer) {
	if len(program.Statements) == 0 {
		return
	}
	last := program.Statements[len(program.Statements)-1]
	if _, ok := last.(*ast.ExpressionStatement); !ok {
		return
	}
	if result == nil || result.Type() == evaluator.NONE_OBJ {
		return
	}
	text, errObj := r.eval.RenderValue(result)
	if errObj != nil {
		fmt.Fprintln(out, r.styleAs(errorStyle, "runtime error: "+errObj.Message))
		return
	}
	fmt.Fprintln(out, r.styleAs(mutedStyle, text))
}
