package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "passfort",
	Short: "Passfort - password strength analysis and generation toolkit",
	Long: `Passfort analyzes password strength and generates secure credentials.

Analysis scores each password out of 100 across six components:
  - Length and character diversity
  - Entropy (estimated brute-force search space)
  - Common-password dictionary matches
  - Predictable patterns (keyboard walks, sequences, repetition)
  - Character uniqueness

Generation uses crypto/rand exclusively and guarantees at least one
character from every enabled class.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
