// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

// Package mnemonic implements the BIP-39 entropy codec: checksummed
// encoding of raw entropy into word sequences and the inverse decoding with
// full validation. All intermediate buffers holding entropy or derived bits
// are wiped before return on every path.
package mnemonic

import (
	"crypto/sha256"
	"strings"

	"github.com/airgaptools/bip39/internal/security"
	"github.com/airgaptools/bip39/internal/wordlist"
)

// wordBits is the number of entropy+checksum bits each word encodes.
const wordBits = 11

// maxSuggestions bounds the nearest-word suggestions attached to an
// UnknownWordError.
const maxSuggestions = 3

// WordCounts lists the supported mnemonic lengths in ascending order.
var WordCounts = []int{12, 15, 18, 21, 24}

// EntropyBytesForWords returns the entropy byte length for a word count,
// or false for unsupported counts. 12 words carry 16 bytes, 15 carry 20,
// up to 24 words carrying 32 bytes.
func EntropyBytesForWords(words int) (int, bool) {
	switch words {
	case 12, 15, 18, 21, 24:
		return words * 4 / 3, true
	}
	return 0, false
}

// WordsForEntropyBytes returns the word count for an entropy byte length,
// or false for unsupported lengths.
func WordsForEntropyBytes(n int) (int, bool) {
	switch n {
	case 16, 20, 24, 28, 32:
		return n * 3 / 4, true
	}
	return 0, false
}

// checksumBits returns the checksum bit count for an entropy byte length:
// one bit per 4 bytes of entropy.
func checksumBits(entropyLen int) int { return entropyLen / 4 }

// EntropyToPhrase encodes an entropy buffer as a mnemonic phrase in the
// given language. The entropy length must be 16, 20, 24, 28 or 32 bytes.
// Deterministic: identical entropy and language always produce the same
// phrase. The caller keeps ownership of the entropy buffer.
func EntropyToPhrase(entropy []byte, lang wordlist.Language) (string, error) {
	words, ok := WordsForEntropyBytes(len(entropy))
	if !ok {
		return "", &InvalidHexLengthError{Length: len(entropy) * 2}
	}

	digest := sha256.Sum256(entropy)
	defer security.Zero(digest[:])

	// Entropy bits followed by the leading checksum bits of the digest,
	// consumed 11 at a time.
	stream := make([]byte, 0, len(entropy)+sha256.Size)
	stream = append(stream, entropy...)
	stream = append(stream, digest[:]...)
	defer security.Zero(stream)

	registry := wordlist.For(lang)
	parts := make([]string, words)
	for i := 0; i < words; i++ {
		idx := readBits(stream, i*wordBits, wordBits)
		word, err := registry.Word(idx)
		if err != nil {
			return "", err
		}
		parts[i] = word
	}
	return strings.Join(parts, lang.Separator()), nil
}

// PhraseToEntropy decodes and validates a mnemonic phrase, returning the
// entropy it encodes. Whitespace between words (including the Japanese
// ideographic space) is collapsed; word matching itself is exact, so
// a word in the wrong case is an unknown word, not silently folded.
// The returned buffer is owned by the caller, who must Wipe it.
func PhraseToEntropy(phrase string, lang wordlist.Language) (security.Buffer, error) {
	words := strings.Fields(phrase)
	entropyLen, ok := EntropyBytesForWords(len(words))
	if !ok {
		return nil, &InvalidWordCountError{Count: len(words)}
	}

	registry := wordlist.For(lang)
	indices := make([]int, len(words))
	defer zeroInts(indices)
	for i, w := range words {
		idx, found := registry.Index(w)
		if !found {
			return nil, &UnknownWordError{
				Word:        w,
				Position:    i + 1,
				Suggestions: registry.Suggest(w, maxSuggestions),
			}
		}
		indices[i] = idx
	}

	// Repack the 11-bit groups into a contiguous bit stream:
	// entropy bits first, then the checksum bits.
	stream := make([]byte, (len(words)*wordBits+7)/8)
	defer security.Zero(stream)
	for i, idx := range indices {
		writeBits(stream, i*wordBits, wordBits, idx)
	}

	entropy := security.FromBytes(stream[:entropyLen])
	digest := sha256.Sum256(entropy)
	defer security.Zero(digest[:])

	csBits := checksumBits(entropyLen)
	got := readBits(stream, entropyLen*8, csBits)
	want := readBits(digest[:], 0, csBits)
	if got != want {
		entropy.Wipe()
		return nil, ErrChecksumMismatch
	}
	return entropy, nil
}

// Validate checks a mnemonic phrase for word count, vocabulary membership
// and checksum, discarding the decoded entropy.
func Validate(phrase string, lang wordlist.Language) error {
	entropy, err := PhraseToEntropy(phrase, lang)
	if err != nil {
		return err
	}
	entropy.Wipe()
	return nil
}

// readBits extracts n (<= 16) bits starting at bit offset off from a
// big-endian bit stream.
func readBits(stream []byte, off, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		bit := off + i
		v <<= 1
		if stream[bit/8]&(1<<(7-bit%8)) != 0 {
			v |= 1
		}
	}
	return v
}

// writeBits stores the low n bits of v starting at bit offset off in a
// big-endian bit stream.
func writeBits(stream []byte, off, n, v int) {
	for i := 0; i < n; i++ {
		bit := off + i
		if v&(1<<(n-1-i)) != 0 {
			stream[bit/8] |= 1 << (7 - bit%8)
		}
	}
}

func zeroInts(p []int) {
	for i := range p {
		p[i] = 0
	}
}
