package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"passfort-hq/passfort/pkg/cli"
	"passfort-hq/passfort/pkg/config"
	"passfort-hq/passfort/pkg/generator"
)

var passphraseFlags struct {
	words     int
	separator string
	count     int
}

var passphraseCmd = &cobra.Command{
	Use:   "passphrase",
	Short: "Generate random passphrases",
	Long: `Generate word-based passphrases using crypto/rand.

The built-in word list is used unless wordlist.path is configured.

Examples:
  # A four-word passphrase
  passfort passphrase

  # Five words joined with dots
  passfort passphrase --words 5 --separator .`,
	RunE: runPassphrase,
}

func init() {
	rootCmd.AddCommand(passphraseCmd)

	passphraseCmd.Flags().IntVarP(&passphraseFlags.words, "words", "w", 4, "words per passphrase")
	passphraseCmd.Flags().StringVarP(&passphraseFlags.separator, "separator", "s", "-", "word separator")
	passphraseCmd.Flags().IntVarP(&passphraseFlags.count, "count", "n", 1, "number of passphrases")
}

func runPassphrase(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	genCfg := generator.DefaultConfig()
	genCfg.WordCount = passphraseFlags.words
	genCfg.Separator = passphraseFlags.separator

	var words []string
	if cfg.Wordlist.Path != "" {
		words, err = generator.LoadWordListFile(cfg.Wordlist.Path)
		if err != nil {
			return cli.NewConfigError("wordlist.path", err.Error())
		}
	}

	for i := 0; i < passphraseFlags.count; i++ {
		var passphrase string
		if len(words) > 0 {
			passphrase, err = generator.GeneratePassphraseFromList(genCfg, words)
		} else {
			passphrase, err = generator.GeneratePassphrase(genCfg)
		}
		if err != nil {
			if generator.IsConfigError(err) {
				return cli.NewConfigError("", err.Error())
			}
			return cli.NewCommandError("passphrase", err)
		}
		fmt.Fprintln(os.Stdout, passphrase)
	}
	return nil
}
