// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airgaptools/bip39/internal/mnemonic"
	"github.com/airgaptools/bip39/internal/wordlist"
)

var (
	fromEntropyLanguage string
	fromEntropyQuiet    bool
	entropyLanguage     string
	entropyQuiet        bool
)

// fromEntropyCmd encodes caller-supplied hex entropy as a mnemonic.
var fromEntropyCmd = &cobra.Command{
	Use:   "from-entropy <hex>",
	Short: "Encode provided entropy as a mnemonic",
	Long: `Encodes a caller-supplied entropy value as a mnemonic. The argument must
be 32, 40, 48, 56 or 64 hex characters (16 to 32 bytes) for 12 to 24 words.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := wordlist.Parse(configuredLanguage(fromEntropyLanguage))
		if err != nil {
			return err
		}
		quiet := configuredQuiet(cmd, fromEntropyQuiet)
		out := cmd.OutOrStdout()

		entropy, err := mnemonic.EntropyFromHex(args[0])
		if err != nil {
			return err
		}
		defer entropy.Wipe()

		phrase, err := mnemonic.EntropyToPhrase(entropy, lang)
		if err != nil {
			return err
		}

		words, _ := mnemonic.WordsForEntropyBytes(len(entropy))
		printHeader(out, quiet, "Mnemonic From Entropy")
		printField(out, quiet, "Words", words)
		printField(out, quiet, "Entropy", fmt.Sprintf("%d bits", len(entropy)*8))
		printField(out, quiet, "Language", lang)
		blankLine(out, quiet)
		fmt.Fprintln(out, phrase)
		return nil
	},
}

// entropyCmd recovers the entropy encoded by a mnemonic.
var entropyCmd = &cobra.Command{
	Use:   "entropy <mnemonic>",
	Short: "Recover the entropy behind a mnemonic",
	Long: `Decodes a mnemonic back to the entropy it encodes, after validating its
words and checksum against the selected language.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := wordlist.Parse(configuredLanguage(entropyLanguage))
		if err != nil {
			return err
		}
		quiet := configuredQuiet(cmd, entropyQuiet)
		out := cmd.OutOrStdout()

		entropy, err := mnemonic.PhraseToEntropy(args[0], lang)
		if err != nil {
			return err
		}
		defer entropy.Wipe()

		printHeader(out, quiet, "Recovered Entropy")
		printField(out, quiet, "Bits", len(entropy)*8)
		printField(out, quiet, "Bytes", len(entropy))
		blankLine(out, quiet)
		fmt.Fprintln(out, hex.EncodeToString(entropy))
		return nil
	},
}

func init() {
	languageFlag(fromEntropyCmd, &fromEntropyLanguage)
	quietFlag(fromEntropyCmd, &fromEntropyQuiet)
	languageFlag(entropyCmd, &entropyLanguage)
	quietFlag(entropyCmd, &entropyQuiet)
}
