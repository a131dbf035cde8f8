package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"passfort-hq/passfort/pkg/cli"
	"passfort-hq/passfort/pkg/config"
	"passfort-hq/passfort/pkg/generator"
	"passfort-hq/passfort/pkg/history"
	"passfort-hq/passfort/pkg/server"
	"passfort-hq/passfort/pkg/telemetry/logging"
	"passfort-hq/passfort/pkg/telemetry/metrics"
)

var serveFlags struct {
	listenAddress string
	logLevel      string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the passfort HTTP API server",
	Long: `Run the HTTP API server.

The server exposes analysis and generation endpoints and, when enabled,
Prometheus metrics and sqlite-backed analysis history. Submitted
passwords are processed in memory only.

Examples:
  # Start with default config
  passfort serve

  # Start with custom config
  passfort serve --config /etc/passfort/config.yaml

  # Override listen address
  passfort serve --listen 0.0.0.0:8377`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	// Apply flag overrides
	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = serveFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	logger, err := logging.Setup(cfg.Telemetry.Logging, os.Stdout)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	engine, err := buildAnalyzer(cfg)
	if err != nil {
		return cli.NewCommandError("serve", err)
	}

	var words []string
	if cfg.Wordlist.Path != "" {
		words, err = generator.LoadWordListFile(cfg.Wordlist.Path)
		if err != nil {
			return cli.NewConfigError("wordlist.path", err.Error())
		}
	}

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Telemetry.Metrics)
		collector.SetDictionaryEntries(engine.Dictionary().Len())
	}

	ctx := cli.SetupSignalHandler()

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.DBPath)
		if err != nil {
			return cli.NewCommandError("serve", err)
		}
		defer store.Close()

		pruner := history.NewPruner(store, cfg.History.RetentionDays, cfg.History.MaxRecords,
			logging.Component("history"))
		scheduler := history.NewScheduler(pruner, cfg.History.PruneSchedule, logging.Component("history"))
		if err := scheduler.Start(ctx); err != nil {
			logger.Warn("failed to start retention scheduler", "error", err)
		} else {
			defer scheduler.Stop()
		}
		logger.Info("history recording enabled", "db_path", cfg.History.DBPath)
	}

	srv := server.NewServer(&cfg.Server, server.Options{
		Analyzer:  engine,
		Words:     words,
		Collector: collector,
		Store:     store,
		Logger:    logging.Component("server"),
	})

	if cfg.Dictionary.Watch && cfg.Dictionary.Path != "" {
		watcher, err := server.NewDictionaryWatcher(cfg.Dictionary.Path, srv, collector,
			logging.Component("watcher"))
		if err != nil {
			return cli.NewCommandError("serve", err)
		}
		go func() {
			if err := watcher.Watch(ctx); err != nil {
				logger.Error("dictionary watcher failed", "error", err)
			}
		}()
	}

	fmt.Printf("Passfort %s listening on %s\n", Version, cfg.Server.ListenAddress)
	fmt.Println("Press Ctrl+C to stop")

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}
	return nil
}
