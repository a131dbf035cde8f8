package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"passfort-hq/passfort/pkg/batch"
	"passfort-hq/passfort/pkg/cli"
	"passfort-hq/passfort/pkg/config"
	"passfort-hq/passfort/pkg/export"
	"passfort-hq/passfort/pkg/telemetry/logging"
)

var batchFlags struct {
	output  string
	format  string
	workers int
}

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze passwords from a file, one per line",
	Long: `Analyze every password in a file and print aggregate statistics.

Blank lines are skipped. Results keep the input order regardless of the
worker count.

Examples:
  # Summarize a password list
  passfort batch passwords.txt

  # Full report as JSON
  passfort batch passwords.txt --format json --output report.json

  # CSV report with 8 workers
  passfort batch passwords.txt --format csv --output report.csv --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFlags.output, "output", "o", "", "write the report to a file instead of stdout")
	batchCmd.Flags().StringVarP(&batchFlags.format, "format", "f", "", "report format (text, json, csv)")
	batchCmd.Flags().IntVarP(&batchFlags.workers, "workers", "w", 0, "analysis workers (0 = number of CPUs)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	passwords, err := readPasswordFile(args[0])
	if err != nil {
		return cli.NewCommandError("batch", err)
	}
	if len(passwords) == 0 {
		return cli.NewCommandError("batch", fmt.Errorf("no passwords in %q", args[0]))
	}

	engine, err := buildAnalyzer(cfg)
	if err != nil {
		return cli.NewCommandError("batch", err)
	}

	workers := batchFlags.workers
	if workers == 0 {
		workers = cfg.Batch.Workers
	}
	runner := batch.NewRunner(engine, workers, logging.Component("batch"))

	report, err := runner.Run(cmd.Context(), passwords)
	if err != nil {
		return cli.NewCommandError("batch", err)
	}

	format := batchFlags.format
	if format == "" {
		format = cfg.Output.Format
	}

	out, closeOut, err := batchOutput()
	if err != nil {
		return cli.NewCommandError("batch", err)
	}
	defer closeOut()

	switch cli.OutputFormat(format) {
	case cli.FormatJSON, cli.FormatCSV:
		exporter, err := export.NewExporter(format, cfg.Output.Pretty)
		if err != nil {
			return cli.NewCommandError("batch", err)
		}
		if err := exporter.Export(report, out); err != nil {
			return cli.NewCommandError("batch", err)
		}
	default:
		renderStats(out, report.Stats)
		if verbose {
			for _, item := range report.Results {
				fmt.Fprintf(out, "\n--- password %d ---\n", item.Index+1)
				renderResult(out, item.Result)
			}
		}
	}

	if batchFlags.output != "" {
		fmt.Printf("Report written to %s\n", batchFlags.output)
	}
	return nil
}

func batchOutput() (io.Writer, func(), error) {
	if batchFlags.output == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(batchFlags.output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// readPasswordFile reads one password per line, skipping blank lines.
func readPasswordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open password file: %w", err)
	}
	defer f.Close()

	var passwords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		passwords = append(passwords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read password file: %w", err)
	}
	return passwords, nil
}
