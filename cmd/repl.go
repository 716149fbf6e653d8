package cmd

import (
	"os"

	"github.com/clarete/lispinho/repl"
	"github.com/spf13/cobra"
)

var replPrompt = "> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := repl.Run(replPrompt)
		if err != nil {
			errln(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", replPrompt,
		"Prompt printed before each line of input")
}
