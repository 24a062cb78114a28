package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/dhamidi/javelin/parser"
)

var historyFile = filepath.Join(xdg.DataHome, "javelin", "history")

func newReplCmd() *cobra.Command {
	var grammarName string
	var exprMode bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse input lines and print their notification traces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar := parser.Java
			if grammarName != "" {
				var err error
				grammar, err = resolveGrammar("", grammarName)
				if err != nil {
					return err
				}
			}
			return runRepl(grammar, exprMode)
		},
	}

	cmd.Flags().StringVar(&grammarName, "grammar", "java", "source grammar: java or kotlin")
	cmd.Flags().BoolVar(&exprMode, "expr", false, "parse each line as an expression instead of a compilation unit")
	return cmd
}

func runRepl(grammar parser.Grammar, exprMode bool) error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(historyFile), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(historyFile); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(historyFile); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	for {
		input, err := line.Prompt("javelin> ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			return nil
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		rec := &parser.EventRecorder{}
		p := parser.NewFromString(input, grammar, rec, parser.WithFile("<repl>"))
		if exprMode {
			p.ParseExpression()
		} else {
			p.ParseCU()
		}
		fmt.Print(rec.String())
	}
}
