package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/javelin/parser"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "javelin",
		Short: "A callback-driven Java and Kotlin source parser",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newReplCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveGrammar picks the grammar from an explicit flag value, or
// from the file extension when the flag is empty.
func resolveGrammar(filename, flagValue string) (parser.Grammar, error) {
	switch strings.ToLower(flagValue) {
	case "java":
		return parser.Java, nil
	case "kotlin":
		return parser.Kotlin, nil
	case "":
	default:
		return parser.Java, fmt.Errorf("unknown grammar: %s (expected java or kotlin)", flagValue)
	}

	switch filepath.Ext(filename) {
	case ".java":
		return parser.Java, nil
	case ".kt", ".kts":
		return parser.Kotlin, nil
	}
	return parser.Java, fmt.Errorf("cannot infer grammar from %s; use --grammar", filename)
}
