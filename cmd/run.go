package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/clarete/lispinho/pkg/eval"
	"github.com/clarete/lispinho/pkg/lisp"
	"github.com/clarete/lispinho/pkg/reader"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] file...",
	Short: "Run lisp code",
	Long: `Run lisp code supplied via the command line or a file.  Each file is read
as a single program and all programs are evaluated in one environment.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		if runExpression {
			err = runSources(cmd.OutOrStdout(), runExpressions(args), runPrint)
		} else {
			err = runFiles(cmd, args, runPrint)
		}
		if err != nil {
			errln(err)
			os.Exit(1)
		}
	},
}

type source struct {
	name string
	text string
}

func runExpressions(args []string) []source {
	sources := make([]source, len(args))
	for i := range args {
		sources[i] = source{fmt.Sprintf("expression %d", i+1), args[i]}
	}
	return sources
}

func runReadFiles(paths []string) ([]source, error) {
	sources := make([]source, len(paths))
	for i, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = source{path, string(b)}
	}
	return sources, nil
}

func runFiles(cmd *cobra.Command, paths []string, print bool) error {
	sources, err := runReadFiles(paths)
	if err != nil {
		return err
	}
	return runSources(cmd.OutOrStdout(), sources, print)
}

// runSources reads and evaluates each source in order in one default
// environment.  The first error stops the run.
func runSources(w io.Writer, sources []source, print bool) error {
	rt := eval.New(eval.WithStdout(w))
	rd := reader.New(rt.Table)
	env := rt.DefaultEnv()
	for _, src := range sources {
		prog, err := rd.Read(src.text)
		if err != nil {
			return fmt.Errorf("%s: %w", src.name, err)
		}
		v, err := rt.Eval(prog, env)
		if err != nil {
			return fmt.Errorf("%s: %w", src.name, err)
		}
		if print && !lisp.IsNil(v) {
			fmt.Fprintln(w, rt.Sprint(v))
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print program values to stdout")
}
