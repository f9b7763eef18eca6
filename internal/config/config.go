// Package config holds interpreter constants and the mython.yaml loader.
//
// mython.yaml is host-side configuration only — it never changes program
// semantics. It currently controls the REPL: prompt text and where the
// command history database lives.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "mython.yaml"

// Options is the top-level mython.yaml configuration.
type Options struct {
	Repl ReplOptions `yaml:"repl,omitempty"`
}

// ReplOptions configures the interactive session.
type ReplOptions struct {
	// Prompt is printed before each input line. Defaults to ">>> ".
	Prompt string `yaml:"prompt,omitempty"`

	// ContinuationPrompt is printed for continuation lines inside an
	// open block. Defaults to "... ".
	ContinuationPrompt string `yaml:"continuation_prompt,omitempty"`

	// HistoryPath is the SQLite database holding command history.
	// Defaults to ~/.mython_history.db. Set to "off" to disable.
	HistoryPath string `yaml:"history_path,omitempty"`
}

// Default returns the options used when no mython.yaml is present.
func Default() *Options {
	home, err := os.UserHomeDir()
	historyPath := ""
	if err == nil {
		historyPath = filepath.Join(home, ".mython_history.db")
	}
	return &Options{
		Repl: ReplOptions{
			Prompt:             ">>> ",
			ContinuationPrompt: "... ",
			HistoryPath:        historyPath,
		},
	}
}

// Load reads mython.yaml from dir, filling unset fields with defaults.
// A missing file is not an error.
func Load(dir string) (*Options, error) {
	opts := Default()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return nil, err
	}
	loaded := &Options{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, err
	}
	if loaded.Repl.Prompt != "" {
		opts.Repl.Prompt = loaded.Repl.Prompt
	}
	if loaded.Repl.ContinuationPrompt != "" {
		opts.Repl.ContinuationPrompt = loaded.Repl.ContinuationPrompt
	}
	if loaded.Repl.HistoryPath != "" {
		opts.Repl.HistoryPath = loaded.Repl.HistoryPath
	}
	return opts, nil
}
