package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/javelin/parser"
)

func newTokensCmd() *cobra.Command {
	var grammarName string

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Lex a source file and print one token per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			grammar, err := resolveGrammar(filename, grammarName)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			lexer := parser.NewLexer(data, grammar, parser.WithLexerFile(filename))
			for {
				tok := lexer.NextToken()
				fmt.Printf("%d:%d-%d:%d\t%s\t%q\n",
					tok.Line(), tok.Column(), tok.EndLine(), tok.EndColumn(),
					tok.Kind, tok.Literal)
				if tok.Kind == parser.TokenEOF {
					return nil
				}
			}
		},
	}

	cmd.Flags().StringVar(&grammarName, "grammar", "", "source grammar: java or kotlin (default: by file extension)")
	return cmd
}
