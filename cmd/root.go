package cmd

import (
	"fmt"
	"os"

	"github.com/clarete/lispinho/repl"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lispinho [file]",
	Short: "A tiny lisp",
	Long: `Evaluate a lisp program file, or start an interactive session when no
file is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			err := repl.Run(replPrompt)
			if err != nil {
				errln(err)
				os.Exit(1)
			}
			return
		}
		err := runFiles(cmd, args, false)
		if err != nil {
			errln(err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errln(err)
		os.Exit(1)
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
