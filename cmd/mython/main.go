package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/mython/internal/ast"
	"github.com/funvibe/mython/internal/config"
	"github.com/funvibe/mython/internal/diagnostics"
	"github.com/funvibe/mython/internal/evaluator"
	"github.com/funvibe/mython/internal/lexer"
	"github.com/funvibe/mython/internal/parser"
	"github.com/funvibe/mython/internal/pipeline"
	"github.com/funvibe/mython/internal/prettyprinter"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		// No arguments: interactive on a terminal, stdin program otherwise.
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return replCommand()
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return runSource(string(source), "<stdin>", os.Stdout)
	}
	switch args[1] {
	case "run":
		if len(args) < 3 {
			return errors.New("mython run: file path required")
		}
		return runCommand(args[2])
	case "tokens":
		if len(args) < 3 {
			return errors.New("mython tokens: file path required")
		}
		return tokensCommand(args[2])
	case "ast":
		if len(args) < 3 {
			return errors.New("mython ast: file path required")
		}
		return astCommand(args[2])
	case "repl":
		return replCommand()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		// Bare file argument is a shortcut for run.
		if isSourceFile(args[1]) {
			return runCommand(args[1])
		}
		printUsage()
		return fmt.Errorf("mython: unknown command %q", args[1])
	}
}

func printUsage() {
	fmt.Println(`Usage:
  mython run <file>     execute a program
  mython tokens <file>  dump the token stream
  mython ast <file>     dump the syntax tree
  mython repl           start an interactive session
  mython help           show this help

With no arguments mython starts the REPL on a terminal and otherwise
reads a program from standard input.`)
}

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// buildProgram runs the lexer and parser stages over source.
func buildProgram(source, filePath string) (*ast.Program, []*diagnostics.Diagnostic) {
	ctx := &pipeline.PipelineContext{SourceCode: source, FilePath: filePath}
	p := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{})
	ctx = p.Run(ctx)
	if len(ctx.Errors) > 0 {
		return nil, ctx.Errors
	}
	return ctx.AstRoot.(*ast.Program), nil
}

func runSource(source, filePath string, out io.Writer) error {
	program, diags := buildProgram(source, filePath)
	if diags != nil {
		return diagError(diags)
	}
	eval := evaluator.New()
	eval.Out = out
	env := evaluator.NewEnvironment()
	result := eval.Eval(program, env)
	if errObj, ok := result.(*evaluator.Error); ok {
		return runtimeError(filePath, errObj)
	}
	return nil
}

func diagError(diags []*diagnostics.Diagnostic) error {
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, d.Error())
	}
	return errors.New(strings.Join(lines, "\n"))
}

func runtimeError(filePath string, errObj *evaluator.Error) error {
	if errObj.Line > 0 {
		return fmt.Errorf("%s:%d:%d: runtime error: %s", filePath, errObj.Line, errObj.Column, errObj.Message)
	}
	return fmt.Errorf("%s: runtime error: %s", filePath, errObj.Message)
}

func runCommand(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return runSource(string(source), path, os.Stdout)
}

func tokensCommand(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	lx, diag := lexer.New(string(source))
	if diag != nil {
		diag.File = path
		return errors.New(diag.Error())
	}
	for _, tok := range lx.Tokens() {
		fmt.Println(tok)
	}
	return nil
}

func astCommand(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	program, diags := buildProgram(string(source), path)
	if diags != nil {
		return diagError(diags)
	}
	printer := prettyprinter.NewTreePrinter()
	program.Accept(printer)
	fmt.Print(printer.String())
	return nil
}

func replCommand() error {
	opts, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load %s: %w", config.FileName, err)
	}
	repl, err := NewRepl(opts)
	if err != nil {
		return err
	}
	defer repl.Close()
	return repl.Run(os.Stdin, os.Stdout)
}
