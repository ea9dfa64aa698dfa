// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package mnemonic

import (
	"github.com/airgaptools/bip39/internal/security"
	"github.com/airgaptools/bip39/internal/wordlist"
)

// Generate draws fresh entropy from the operating system's secure random
// source and encodes it as a mnemonic in the given language. It fails
// closed with security.ErrRandomSourceUnavailable when the source is not
// usable; there is no weaker fallback.
//
// The returned entropy buffer is owned by the caller, who must Wipe it.
func Generate(words int, lang wordlist.Language) (string, security.Buffer, error) {
	entropyLen, ok := EntropyBytesForWords(words)
	if !ok {
		return "", nil, &InvalidWordCountError{Count: words}
	}

	entropy, err := security.RandomBuffer(entropyLen)
	if err != nil {
		return "", nil, err
	}

	phrase, err := EntropyToPhrase(entropy, lang)
	if err != nil {
		entropy.Wipe()
		return "", nil, err
	}
	return phrase, entropy, nil
}
