package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"passfort-hq/passfort/pkg/cli"
	"passfort-hq/passfort/pkg/config"
)

var analyzeFlags struct {
	stdin  bool
	format string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [password]",
	Short: "Analyze the strength of a single password",
	Long: `Analyze a password and print its strength report.

The password can be passed as an argument or, to keep it out of shell
history, piped on stdin with --stdin.

Examples:
  # Analyze a password
  passfort analyze 'MyP@ssw0rd!'

  # Read the password from stdin
  echo 'MyP@ssw0rd!' | passfort analyze --stdin

  # Machine-readable output
  passfort analyze 'MyP@ssw0rd!' --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeFlags.stdin, "stdin", false, "read the password from stdin")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.format, "format", "f", "", "output format (text, json)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	password, err := analyzeInput(args)
	if err != nil {
		return cli.NewCommandError("analyze", err)
	}

	engine, err := buildAnalyzer(cfg)
	if err != nil {
		return cli.NewCommandError("analyze", err)
	}
	result := engine.Analyze(password)

	format := cli.OutputFormat(analyzeFlags.format)
	if format == "" {
		format = cli.OutputFormat(cfg.Output.Format)
	}
	if format == cli.FormatJSON {
		formatter := &cli.JSONFormatter{Indent: cfg.Output.Pretty}
		return formatter.FormatTo(os.Stdout, result)
	}

	renderResult(os.Stdout, result)
	return nil
}

func analyzeInput(args []string) (string, error) {
	if analyzeFlags.stdin {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read stdin: %w", err)
			}
			return "", fmt.Errorf("no password on stdin")
		}
		return strings.TrimRight(scanner.Text(), "\r"), nil
	}
	if len(args) != 1 {
		return "", fmt.Errorf("pass the password as an argument or use --stdin")
	}
	return args[0], nil
}
