package cmd

import (
	"fmt"
	"os"

	"github.com/bolthur/bosl-go/internal/interp/builtins"
	"github.com/bolthur/bosl-go/pkg/bosl"
	"github.com/spf13/cobra"
)

var (
	evalExpr     string
	noExampleFns bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a bosl script",
	Long: `Execute a bosl program from a file or inline source.

Examples:
  # Run a script file
  bosl run script.bosl

  # Evaluate inline source
  bosl run -e 'print(1 + 2);'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of reading from a file")
	runCmd.Flags().BoolVar(&noExampleFns, "no-example-bindings", false, "do not register the illustrative example native bindings")
}

func runScript(_ *cobra.Command, args []string) error {
	engine := bosl.New()

	if !noExampleFns {
		if err := builtins.Register(engine); err != nil {
			return fmt.Errorf("failed to register example bindings: %w", err)
		}
	}

	if evalExpr != "" {
		if verbose {
			fmt.Fprintln(os.Stderr, "running inline source")
		}
		return engine.Run(evalExpr)
	}
	if len(args) != 1 {
		return fmt.Errorf("either provide a file path or use -e for inline source")
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "running %s\n", args[0])
	}
	return engine.RunFile(args[0])
}
