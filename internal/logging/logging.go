// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging provides diagnostic logging for the CLI. Output goes to
// stderr so it never mixes with piped command output, and nothing logged
// here may contain mnemonic words, entropy, passphrases or seeds.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = newLogger(os.Stderr, zerolog.WarnLevel)

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// SetDebug switches the logger between warn-and-above and full debug
// output.
func SetDebug(enabled bool) {
	if enabled {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.WarnLevel)
	}
}

// Debugf logs a formatted debug message; a no-op unless debug is enabled.
func Debugf(format string, v ...any) {
	logger.Debug().Msgf(format, v...)
}

// Warnf logs a formatted warning.
func Warnf(format string, v ...any) {
	logger.Warn().Msgf(format, v...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...any) {
	logger.Error().Msgf(format, v...)
}
