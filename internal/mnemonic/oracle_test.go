// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package mnemonic

import (
	"bytes"
	"testing"

	bip39 "github.com/tyler-smith/go-bip39"

	"github.com/airgaptools/bip39/internal/wordlist"
)

// Cross-checks the codec against the widely deployed go-bip39
// implementation for English, which both sides treat as their default
// vocabulary.

func TestEncodeMatchesReferenceImplementation(t *testing.T) {
	for _, size := range []int{16, 20, 24, 28, 32} {
		entropy := make([]byte, size)
		for i := range entropy {
			entropy[i] = byte(i*53 + 7)
		}

		ours, err := EntropyToPhrase(entropy, wordlist.English)
		if err != nil {
			t.Fatalf("size %d: encode error: %v", size, err)
		}
		theirs, err := bip39.NewMnemonic(entropy)
		if err != nil {
			t.Fatalf("size %d: reference encode error: %v", size, err)
		}
		if ours != theirs {
			t.Errorf("size %d:\n ours   %q\n theirs %q", size, ours, theirs)
		}
	}
}

func TestDecodeMatchesReferenceImplementation(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		entropy := make([]byte, size)
		for i := range entropy {
			entropy[i] = byte(200 - i*3)
		}
		phrase, err := bip39.NewMnemonic(entropy)
		if err != nil {
			t.Fatalf("size %d: reference encode error: %v", size, err)
		}

		ours, err := PhraseToEntropy(phrase, wordlist.English)
		if err != nil {
			t.Fatalf("size %d: decode error: %v", size, err)
		}
		defer ours.Wipe()
		theirs, err := bip39.EntropyFromMnemonic(phrase)
		if err != nil {
			t.Fatalf("size %d: reference decode error: %v", size, err)
		}
		if !bytes.Equal(ours, theirs) || !bytes.Equal(ours, entropy) {
			t.Errorf("size %d: decoded entropy mismatch", size)
		}
	}
}
