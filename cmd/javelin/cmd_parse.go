package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/javelin/parser"
)

func newParseCmd() *cobra.Command {
	var grammarName string
	var errorsOnly bool
	var noComments bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print its notification trace",
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

			log := commonlog.GetLogger("javelin.parse")
			log.Debugf("parsing %s", filename)

			opts := []parser.Option{parser.WithFile(filename)}
			if noComments {
				opts = append(opts, parser.WithoutComments())
			}

			rec := &parser.EventRecorder{}
			p := parser.NewFromBytes(data, grammar, rec, opts...)
			p.ParseCU()

			errs := rec.Errors()
			log.Debugf("parsed %s: %d notifications, %d errors", filename, len(rec.Events), len(errs))

			if errorsOnly {
				for _, e := range errs {
					fmt.Println(e)
				}
			} else {
				fmt.Print(rec.String())
			}

			if len(errs) > 0 {
				return fmt.Errorf("%s: %d parse errors", filename, len(errs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&grammarName, "grammar", "", "source grammar: java or kotlin (default: by file extension)")
	cmd.Flags().BoolVar(&errorsOnly, "errors-only", false, "print only the diagnostics")
	cmd.Flags().BoolVar(&noComments, "no-comments", false, "drop comments instead of attaching them to tokens")
	return cmd
}
