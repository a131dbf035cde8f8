package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"passfort-hq/passfort/pkg/analyzer"
	"passfort-hq/passfort/pkg/cli"
	"passfort-hq/passfort/pkg/config"
	"passfort-hq/passfort/pkg/history"
	"passfort-hq/passfort/pkg/telemetry/logging"
)

var historyFlags struct {
	limit  int
	format string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded analysis history",
	Long: `Inspect the analysis history database.

History stores only metadata (length, strength, score, entropy); the
analyzed passwords themselves are never persisted. Recording happens in
serve mode when history.enabled is set.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent analysis records, newest first",
	RunE:  runHistoryList,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize all recorded analyses",
	RunE:  runHistoryStats,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete records past the configured retention",
	RunE:  runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyListCmd.Flags().IntVarP(&historyFlags.limit, "limit", "n", 20, "maximum records to list")
	historyListCmd.Flags().StringVarP(&historyFlags.format, "format", "f", "", "output format (text, json)")
	historyStatsCmd.Flags().StringVarP(&historyFlags.format, "format", "f", "", "output format (text, json)")
}

func openHistoryStore() (*history.Store, *config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, nil, cli.NewConfigError("", err.Error())
	}
	if cfg.History.DBPath == "" {
		return nil, nil, cli.NewConfigError("history.db_path", "no history database configured")
	}
	store, err := history.Open(cfg.History.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, cfg, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(cmd.Context(), historyFlags.limit)
	if err != nil {
		return cli.NewCommandError("history list", err)
	}

	if outputFormat(cfg) == cli.FormatJSON {
		formatter := &cli.JSONFormatter{Indent: cfg.Output.Pretty}
		return formatter.FormatTo(os.Stdout, records)
	}

	if len(records) == 0 {
		fmt.Println("No records.")
		return nil
	}
	fmt.Printf("%-25s %-8s %-10s %7s %8s %7s\n",
		"CREATED", "SOURCE", "STRENGTH", "SCORE", "ENTROPY", "LENGTH")
	for _, r := range records {
		fmt.Printf("%-25s %-8s %-10s %7.1f %8.1f %7d\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.Source, r.Strength,
			r.Score, r.EntropyBits, r.Length)
	}
	return nil
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	store, cfg, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Aggregate(cmd.Context())
	if err != nil {
		return cli.NewCommandError("history stats", err)
	}

	if outputFormat(cfg) == cli.FormatJSON {
		formatter := &cli.JSONFormatter{Indent: cfg.Output.Pretty}
		return formatter.FormatTo(os.Stdout, stats)
	}

	fmt.Printf("Total analyses:    %d\n", stats.Total)
	fmt.Printf("Average score:     %.1f/%d\n", stats.AverageScore, analyzer.MaxTotalScore)
	fmt.Printf("Average entropy:   %.1f bits\n", stats.AverageEntropy)
	fmt.Printf("Common passwords:  %d\n", stats.CommonCount)
	fmt.Println("\nStrength distribution:")
	for _, level := range analyzer.StrengthLevels {
		fmt.Printf("  %-10s %d\n", level, stats.ByStrength[level])
	}
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	store, cfg, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	pruner := history.NewPruner(store, cfg.History.RetentionDays, cfg.History.MaxRecords,
		logging.Component("history"))
	deleted, err := pruner.Prune(cmd.Context())
	if err != nil {
		return cli.NewCommandError("history prune", err)
	}
	fmt.Printf("Deleted %d records.\n", deleted)
	return nil
}

func outputFormat(cfg *config.Config) cli.OutputFormat {
	if historyFlags.format != "" {
		return cli.OutputFormat(historyFlags.format)
	}
	return cli.OutputFormat(cfg.Output.Format)
}
