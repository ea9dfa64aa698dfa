// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config wires viper into the CLI: an optional .bip39.yaml in the
// home or current directory plus BIP39_* environment variables supply
// defaults for presentation settings. Nothing sensitive is ever read from
// or written to configuration.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/airgaptools/bip39/internal/logging"
)

// Defaults applied when neither file, environment, nor flag overrides them.
const (
	DefaultLanguage = "english"
)

// Init reads the optional config file and environment. cfgFile, when
// non-empty, names an explicit config file from the --config flag. A
// missing file is not an error; any other read failure is logged and
// ignored, since configuration only carries cosmetic defaults.
func Init(cfgFile string) {
	viper.SetDefault("language", DefaultLanguage)
	viper.SetDefault("quiet", false)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bip39")
	}

	viper.SetEnvPrefix("BIP39")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logging.Warnf("config file ignored: %v", err)
		}
	} else {
		logging.Debugf("using config file %s", viper.ConfigFileUsed())
	}
}

// Language returns the configured default language identifier.
func Language() string { return viper.GetString("language") }

// Quiet returns the configured default for quiet output.
func Quiet() bool { return viper.GetBool("quiet") }
