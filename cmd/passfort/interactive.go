package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"passfort-hq/passfort/pkg/cli"
	"passfort-hq/passfort/pkg/config"
	"passfort-hq/passfort/pkg/generator"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Analyze passwords in an interactive session",
	Long: `Start a read-eval-print loop that analyzes each entered password.

Commands inside the session:
  generate    generate a password and analyze it
  passphrase  generate a passphrase and analyze it
  quit        leave the session

Anything else is analyzed as a password.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	engine, err := buildAnalyzer(cfg)
	if err != nil {
		return cli.NewCommandError("interactive", err)
	}

	fmt.Println("Passfort interactive session. Type a password to analyze it,")
	fmt.Println("'generate', 'passphrase', or 'quit'.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimRight(scanner.Text(), "\r")

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit", "exit", "q":
			return scanner.Err()
		case "":
			continue
		case "generate":
			password, err := generator.Generate(generator.DefaultConfig())
			if err != nil {
				fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
				continue
			}
			fmt.Printf("Generated: %s\n\n", password)
			renderResult(os.Stdout, engine.Analyze(password))
		case "passphrase":
			passphrase, err := generator.GeneratePassphrase(generator.DefaultConfig())
			if err != nil {
				fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
				continue
			}
			fmt.Printf("Generated: %s\n\n", passphrase)
			renderResult(os.Stdout, engine.Analyze(passphrase))
		default:
			renderResult(os.Stdout, engine.Analyze(line))
		}
	}
	return scanner.Err()
}
