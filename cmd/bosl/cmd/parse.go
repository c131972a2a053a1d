package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bolthur/bosl-go/internal/diag"
	"github.com/bolthur/bosl-go/internal/lexer"
	"github.com/bolthur/bosl-go/internal/parser"
	"github.com/bolthur/bosl-go/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	parseExpr  string
	printStyle string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse bosl source and print its AST",
	Long: `Parse bosl source code and display its Abstract Syntax Tree.

If no file is provided, reads from stdin. Use -e to parse a single
inline source string instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline source instead of a file")
	parseCmd.Flags().StringVar(&printStyle, "style", "detailed", "AST dump style: detailed or compact")
}

func runParse(_ *cobra.Command, args []string) error {
	input, err := parseInput(args)
	if err != nil {
		return err
	}

	var diagBuf strings.Builder
	p := parser.New(lexer.New(input), diag.New(&diagBuf))
	program := p.ParseProgram()
	if p.HadError() {
		fmt.Fprint(os.Stderr, diagBuf.String())
		return fmt.Errorf("parsing failed")
	}

	opts := printer.DefaultOptions()
	switch strings.ToLower(printStyle) {
	case "detailed":
		opts.Style = printer.StyleDetailed
	case "compact":
		opts.Style = printer.StyleCompact
	default:
		return fmt.Errorf("unknown style: %s (use detailed or compact)", printStyle)
	}

	fmt.Print(printer.New(opts).Print(program))
	return nil
}

func parseInput(args []string) (string, error) {
	if parseExpr != "" {
		return parseExpr, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
