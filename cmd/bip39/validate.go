// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airgaptools/bip39/internal/mnemonic"
	"github.com/airgaptools/bip39/internal/wordlist"
)

var (
	validateLanguage    string
	validateSecureInput bool
	validateQuiet       bool
)

// validateCmd checks a mnemonic's word count, vocabulary and checksum.
var validateCmd = &cobra.Command{
	Use:   "validate [mnemonic]",
	Short: "Validate a mnemonic phrase",
	Long: `Checks a mnemonic phrase against the selected language's wordlist and
verifies its checksum. With --secure-input the phrase is read from the
terminal without echo instead of the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := wordlist.Parse(configuredLanguage(validateLanguage))
		if err != nil {
			return err
		}
		quiet := configuredQuiet(cmd, validateQuiet)
		out := cmd.OutOrStdout()

		phrase, cleanup, err := phraseFromArgsOrPrompt(args, validateSecureInput, "Mnemonic:")
		if err != nil {
			return err
		}
		defer cleanup()

		if err := mnemonic.Validate(phrase, lang); err != nil {
			if quiet {
				fmt.Fprintln(out, "invalid")
			}
			return err
		}

		if quiet {
			fmt.Fprintln(out, "valid")
			return nil
		}
		printHeader(out, false, "Validation")
		printField(out, false, "Language", lang)
		fmt.Fprintln(out, goodStyle.Render("mnemonic is valid"))
		return nil
	},
}

// phraseFromArgsOrPrompt returns the mnemonic phrase either from the
// positional argument or, with secure input, from a no-echo terminal
// prompt. The cleanup func wipes any sensitive buffer created here and
// must run before the command returns.
func phraseFromArgsOrPrompt(args []string, secure bool, prompt string) (string, func(), error) {
	if secure {
		buf, err := readSecret(prompt)
		if err != nil {
			return "", nil, err
		}
		return string(buf.Bytes()), func() { buf.Wipe() }, nil
	}
	if len(args) == 0 {
		return "", nil, fmt.Errorf("mnemonic argument required (or use --secure-input)")
	}
	return args[0], func() {}, nil
}

func init() {
	languageFlag(validateCmd, &validateLanguage)
	validateCmd.Flags().BoolVar(&validateSecureInput, "secure-input", false, "read the mnemonic from the terminal without echo")
	quietFlag(validateCmd, &validateQuiet)
}
