// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airgaptools/bip39/internal/analysis"
	"github.com/airgaptools/bip39/internal/mnemonic"
	"github.com/airgaptools/bip39/internal/seed"
	"github.com/airgaptools/bip39/internal/wordlist"
)

var (
	seedPassphrase        string
	seedLanguage          string
	seedSecureInput       bool
	seedAnalyzePassphrase bool
	seedQuiet             bool
)

// seedCmd derives the 64-byte seed from a mnemonic and passphrase.
var seedCmd = &cobra.Command{
	Use:   "seed [mnemonic]",
	Short: "Derive the 512-bit seed from a mnemonic",
	Long: `Derives the 64-byte seed via PBKDF2-HMAC-SHA512 (2048 iterations) from
the mnemonic and an optional passphrase. The mnemonic is validated against
the selected language first; seed derivation itself follows the standard's
permissive definition and works on any word sequence.

With --secure-input both the mnemonic and the passphrase are read from the
terminal without echo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := wordlist.Parse(configuredLanguage(seedLanguage))
		if err != nil {
			return err
		}
		quiet := configuredQuiet(cmd, seedQuiet)
		out := cmd.OutOrStdout()

		phrase, cleanup, err := phraseFromArgsOrPrompt(args, seedSecureInput, "Mnemonic:")
		if err != nil {
			return err
		}
		defer cleanup()

		if err := mnemonic.Validate(phrase, lang); err != nil {
			return err
		}

		passphrase := seedPassphrase
		if seedSecureInput {
			buf, err := readSecret("Passphrase (empty for none):")
			if err != nil {
				return err
			}
			defer buf.Wipe()
			passphrase = string(buf.Bytes())
		}

		derived := seed.Derive(phrase, passphrase)
		defer derived.Wipe()

		printHeader(out, quiet, "Derived Seed")
		printField(out, quiet, "Length", "512 bits (64 bytes)")
		printField(out, quiet, "Passphrase", usedOrNone(passphrase))
		blankLine(out, quiet)
		fmt.Fprintln(out, hex.EncodeToString(derived))

		if seedAnalyzePassphrase && !quiet {
			printPassphraseReport(out, analysis.AnalyzePassphrase(passphrase))
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedPassphrase, "passphrase", "p", "", "passphrase for seed derivation")
	languageFlag(seedCmd, &seedLanguage)
	seedCmd.Flags().BoolVar(&seedSecureInput, "secure-input", false, "read mnemonic and passphrase from the terminal without echo")
	seedCmd.Flags().BoolVar(&seedAnalyzePassphrase, "analyze-passphrase", false, "print a passphrase strength assessment")
	quietFlag(seedCmd, &seedQuiet)
}
