// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package mnemonic

import (
	"encoding/hex"

	"github.com/airgaptools/bip39/internal/security"
)

// EntropyFromHex parses caller-supplied hex entropy. The string must decode
// to 16, 20, 24, 28 or 32 bytes; the length is checked before the content
// so the error names the actual problem. The returned buffer is owned by
// the caller, who must Wipe it.
func EntropyFromHex(s string) (security.Buffer, error) {
	switch len(s) {
	case 32, 40, 48, 56, 64:
	default:
		return nil, &InvalidHexLengthError{Length: len(s)}
	}

	for i, c := range s {
		if !isHexDigit(c) {
			return nil, &InvalidHexError{Position: i, Char: c}
		}
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		// Unreachable after the scan above, but fail safe.
		return nil, &InvalidHexError{Position: 0, Char: '?'}
	}
	entropy := security.FromBytes(raw)
	security.Zero(raw)
	return entropy, nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
