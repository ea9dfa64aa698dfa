// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for the bip39 tool using the
// Cobra library. It defines the root command, the subcommands (generate,
// validate, seed, from-entropy, entropy), global flags, and the entry
// point for execution. Shell completions come from cobra's generated
// `completion` subcommand.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/airgaptools/bip39/buildvars"
	"github.com/airgaptools/bip39/internal/config"
	"github.com/airgaptools/bip39/internal/logging"
)

var (
	cfgFile       string
	secureMode    bool
	securityCheck bool
	debugMode     bool
)

// main is the entry point of the application.
func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func init() {
	cobra.OnInitialize(func() {
		logging.SetDebug(debugMode)
		config.Init(cfgFile)
	})
	rootCmd = newRootCmd()
}

// newRootCmd creates and configures the root cobra command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bip39",
		Short: "BIP-39 mnemonic operations for air-gapped machines",
		Long: `bip39 generates, validates and analyzes BIP-39 mnemonic phrases and
derives binary seeds from them. It is built for offline use: nothing is
written to disk, secure input never echoes, and every buffer holding
entropy, mnemonic words, passphrases or seeds is wiped before release.

Running without a subcommand prints this help. Use "bip39 completion" to
generate shell completion scripts.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if secureMode || securityCheck {
				printSecurityWarnings(cmd.ErrOrStderr())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if securityCheck {
				printAirGapReport(cmd.OutOrStdout())
				return nil
			}
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(generateCmd)
	cmd.AddCommand(validateCmd)
	cmd.AddCommand(seedCmd)
	cmd.AddCommand(fromEntropyCmd)
	cmd.AddCommand(entropyCmd)

	cmd.Version = buildvars.Describe("dev")

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bip39.yaml or ./.bip39.yaml)")
	cmd.PersistentFlags().BoolVar(&secureMode, "secure", false, "print security recommendations before running")
	cmd.PersistentFlags().BoolVar(&securityCheck, "security-check", false, "print security recommendations and the air-gap environment check")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging on stderr")

	return cmd
}

// languageFlag registers the shared --language flag on a subcommand. The
// default comes from configuration so operators working in one language
// can set it once in .bip39.yaml or BIP39_LANGUAGE.
func languageFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "language", "l", "", "wordlist language (default from config, normally english)")
}

// quietFlag registers the shared --quiet flag on a subcommand.
func quietFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVarP(target, "quiet", "q", false, "raw output only, no headers (useful for piping)")
}

// configuredLanguage resolves a --language flag value against the
// configured default.
func configuredLanguage(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.Language()
}

// configuredQuiet resolves a --quiet flag against the configured default.
func configuredQuiet(cmd *cobra.Command, flagValue bool) bool {
	if cmd.Flags().Changed("quiet") {
		return flagValue
	}
	return config.Quiet()
}
