// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airgaptools/bip39/internal/analysis"
	"github.com/airgaptools/bip39/internal/logging"
	"github.com/airgaptools/bip39/internal/mnemonic"
	"github.com/airgaptools/bip39/internal/seed"
	"github.com/airgaptools/bip39/internal/wordlist"
)

var (
	generateWords            int
	generateLanguage         string
	generateShowEntropy      bool
	generateShowSeed         bool
	generatePassphrase       string
	generateSecurePassphrase bool
	generateAnalyzeEntropy   bool
	generateQuiet            bool
)

// generateCmd creates a new mnemonic from fresh OS entropy.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new mnemonic phrase",
	Long: `Generates fresh entropy from the operating system's secure random source
and encodes it as a BIP-39 mnemonic. Fails outright if the secure source is
unavailable; there is no weaker fallback.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := wordlist.Parse(configuredLanguage(generateLanguage))
		if err != nil {
			return err
		}
		quiet := configuredQuiet(cmd, generateQuiet)
		out := cmd.OutOrStdout()

		phrase, entropy, err := mnemonic.Generate(generateWords, lang)
		if err != nil {
			return err
		}
		defer entropy.Wipe()
		logging.Debugf("generated %d-word mnemonic in %s", generateWords, lang)

		printHeader(out, quiet, "Generated Mnemonic")
		printField(out, quiet, "Words", generateWords)
		printField(out, quiet, "Entropy", fmt.Sprintf("%d bits", len(entropy)*8))
		printField(out, quiet, "Language", lang)
		blankLine(out, quiet)
		fmt.Fprintln(out, phrase)

		if generateShowEntropy {
			blankLine(out, quiet)
			printHeader(out, quiet, "Raw Entropy")
			fmt.Fprintln(out, hex.EncodeToString(entropy))
		}

		if generateShowSeed {
			passphrase := generatePassphrase
			if generateSecurePassphrase {
				buf, err := readSecret("Passphrase:")
				if err != nil {
					return err
				}
				defer buf.Wipe()
				passphrase = string(buf.Bytes())
			}
			derived := seed.Derive(phrase, passphrase)
			defer derived.Wipe()

			blankLine(out, quiet)
			printHeader(out, quiet, "Derived Seed")
			printField(out, quiet, "Length", "512 bits (64 bytes)")
			printField(out, quiet, "Passphrase", usedOrNone(passphrase))
			fmt.Fprintln(out, hex.EncodeToString(derived))
		}

		if generateAnalyzeEntropy && !quiet {
			printEntropyReport(out, analysis.AnalyzeEntropy(entropy))
		}
		return nil
	},
}

func usedOrNone(passphrase string) string {
	if passphrase == "" {
		return "none"
	}
	return "used"
}

func init() {
	generateCmd.Flags().IntVarP(&generateWords, "words", "w", 24, "number of words (12, 15, 18, 21 or 24)")
	languageFlag(generateCmd, &generateLanguage)
	generateCmd.Flags().BoolVar(&generateShowEntropy, "show-entropy", false, "print the entropy behind the mnemonic as hex")
	generateCmd.Flags().BoolVar(&generateShowSeed, "show-seed", false, "print the derived seed as hex")
	generateCmd.Flags().StringVar(&generatePassphrase, "passphrase", "", "passphrase for seed derivation (only with --show-seed)")
	generateCmd.Flags().BoolVar(&generateSecurePassphrase, "secure-passphrase", false, "prompt for the passphrase without echo")
	generateCmd.Flags().BoolVar(&generateAnalyzeEntropy, "analyze-entropy", false, "print an entropy quality assessment")
	quietFlag(generateCmd, &generateQuiet)
}
