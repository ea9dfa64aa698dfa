// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package mnemonic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrChecksumMismatch reports that the trailing checksum bits of a mnemonic
// do not match the checksum recomputed from its entropy bits.
var ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")

// UnknownWordError reports a word that is not in the selected language's
// vocabulary. Position is 1-based. Suggestions holds up to three
// nearest-match words from the same vocabulary; it may be empty.
type UnknownWordError struct {
	Word        string
	Position    int
	Suggestions []string
}

func (e *UnknownWordError) Error() string {
	msg := fmt.Sprintf("unknown word %q at position %d", e.Word, e.Position)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// InvalidWordCountError reports a mnemonic whose word count is not one of
// 12, 15, 18, 21 or 24.
type InvalidWordCountError struct {
	Count int
}

func (e *InvalidWordCountError) Error() string {
	return fmt.Sprintf("invalid word count %d (expected 12, 15, 18, 21 or 24)", e.Count)
}

// InvalidHexLengthError reports a hex entropy string whose character count
// is not one of 32, 40, 48, 56 or 64.
type InvalidHexLengthError struct {
	Length int
}

func (e *InvalidHexLengthError) Error() string {
	return fmt.Sprintf("invalid entropy length %d hex characters (expected 32, 40, 48, 56 or 64)", e.Length)
}

// InvalidHexError reports a malformed hex entropy string. Position is the
// 0-based offset of the first invalid character.
type InvalidHexError struct {
	Position int
	Char     rune
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("invalid hex character %q at position %d (use 0-9, a-f, A-F)", e.Char, e.Position)
}
