// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package mnemonic

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/airgaptools/bip39/internal/wordlist"
)

// Reference vectors from the standard's published English test set.
var englishVectors = []struct {
	entropyHex string
	phrase     string
}{
	{
		"00000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
	},
	{
		"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		"legal winner thank year wave sausage worth useful legal winner thank yellow",
	},
	{
		"80808080808080808080808080808080",
		"letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
	},
	{
		"ffffffffffffffffffffffffffffffff",
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
	},
	{
		"0000000000000000000000000000000000000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
	},
	{
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo vote",
	},
}

func TestEntropyToPhraseVectors(t *testing.T) {
	for _, v := range englishVectors {
		entropy, err := hex.DecodeString(v.entropyHex)
		if err != nil {
			t.Fatalf("bad vector hex: %v", err)
		}
		phrase, err := EntropyToPhrase(entropy, wordlist.English)
		if err != nil {
			t.Fatalf("EntropyToPhrase(%s) error: %v", v.entropyHex, err)
		}
		if phrase != v.phrase {
			t.Errorf("EntropyToPhrase(%s)\n got %q\nwant %q", v.entropyHex, phrase, v.phrase)
		}
	}
}

func TestPhraseToEntropyVectors(t *testing.T) {
	for _, v := range englishVectors {
		entropy, err := PhraseToEntropy(v.phrase, wordlist.English)
		if err != nil {
			t.Fatalf("PhraseToEntropy(%q) error: %v", v.phrase, err)
		}
		if got := hex.EncodeToString(entropy); got != v.entropyHex {
			t.Errorf("PhraseToEntropy(%q) = %s, want %s", v.phrase, got, v.entropyHex)
		}
		entropy.Wipe()
	}
}

func TestRoundTripAllLanguagesAllSizes(t *testing.T) {
	entropy32 := make([]byte, 32)
	for i := range entropy32 {
		entropy32[i] = byte(i*37 + 11)
	}

	for _, name := range wordlist.Names() {
		lang, err := wordlist.Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", name, err)
		}
		for _, size := range []int{16, 20, 24, 28, 32} {
			entropy := entropy32[:size]
			phrase, err := EntropyToPhrase(entropy, lang)
			if err != nil {
				t.Fatalf("%s/%d: encode error: %v", name, size, err)
			}
			back, err := PhraseToEntropy(phrase, lang)
			if err != nil {
				t.Fatalf("%s/%d: decode error: %v", name, size, err)
			}
			if !bytes.Equal(back, entropy) {
				t.Errorf("%s/%d: round trip mismatch", name, size)
			}
			back.Wipe()
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	entropy := bytes.Repeat([]byte{0xa5}, 16)
	first, err := EntropyToPhrase(entropy, wordlist.English)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	second, err := EntropyToPhrase(entropy, wordlist.English)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if first != second {
		t.Error("encode is not deterministic")
	}
}

func TestWordSubstitutionDetected(t *testing.T) {
	// Substituting a single word must surface as a checksum failure,
	// never as silent acceptance. (A random substitution passes the
	// 4-bit checksum with probability 1/16; "able" was chosen so every
	// position fails for this phrase.)
	phrase := englishVectors[0].phrase
	words := strings.Fields(phrase)
	for i := range words {
		mutated := make([]string, len(words))
		copy(mutated, words)
		mutated[i] = "able"
		err := Validate(strings.Join(mutated, " "), wordlist.English)
		if !errors.Is(err, ErrChecksumMismatch) {
			t.Errorf("substituting word %d: error = %v, want ErrChecksumMismatch", i, err)
		}
	}
}

func TestChecksumBitFlipDetected(t *testing.T) {
	// The final word of the 12-word zero-entropy phrase is "about"
	// (index 3); flipping any single one of its four checksum bits
	// lands on the words below and must always fail.
	for _, final := range []string{"able", "ability", "abstract", "accident"} {
		phrase := strings.Repeat("abandon ", 11) + final
		err := Validate(phrase, wordlist.English)
		if !errors.Is(err, ErrChecksumMismatch) {
			t.Errorf("final word %q: error = %v, want ErrChecksumMismatch", final, err)
		}
	}
}

func TestChecksumMismatch(t *testing.T) {
	// 11 "abandon" + a final word carrying wrong checksum bits.
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"
	err := Validate(phrase, wordlist.English)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("error = %v, want ErrChecksumMismatch", err)
	}
}

func TestInvalidWordCount(t *testing.T) {
	for _, count := range []int{0, 1, 11, 13, 23, 25} {
		phrase := strings.TrimSpace(strings.Repeat("abandon ", count))
		err := Validate(phrase, wordlist.English)
		var wc *InvalidWordCountError
		if !errors.As(err, &wc) {
			t.Fatalf("count %d: error = %v, want InvalidWordCountError", count, err)
		}
		if wc.Count != count {
			t.Errorf("count %d: reported %d", count, wc.Count)
		}
	}
}

func TestUnknownWordWithSuggestions(t *testing.T) {
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abuot"
	_, err := PhraseToEntropy(phrase, wordlist.English)
	var unknown *UnknownWordError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownWordError", err)
	}
	if unknown.Word != "abuot" || unknown.Position != 12 {
		t.Errorf("unknown word = %q at %d, want \"abuot\" at 12", unknown.Word, unknown.Position)
	}
	hasAbout := false
	for _, s := range unknown.Suggestions {
		if s == "about" {
			hasAbout = true
		}
	}
	if !hasAbout {
		t.Errorf("suggestions %v should include \"about\"", unknown.Suggestions)
	}
}

func TestUppercaseIsUnknownWord(t *testing.T) {
	phrase := "ABANDON abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	var unknown *UnknownWordError
	if err := Validate(phrase, wordlist.English); !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownWordError for uppercase input", err)
	}
	if unknown.Position != 1 {
		t.Errorf("position = %d, want 1", unknown.Position)
	}
}

func TestWhitespaceNormalization(t *testing.T) {
	messy := "  abandon   abandon\tabandon abandon abandon abandon abandon abandon abandon abandon abandon\n about  "
	if err := Validate(messy, wordlist.English); err != nil {
		t.Fatalf("whitespace-mangled phrase should validate: %v", err)
	}
}

func TestJapaneseSeparatorRoundTrip(t *testing.T) {
	entropy := bytes.Repeat([]byte{0x3c}, 16)
	phrase, err := EntropyToPhrase(entropy, wordlist.Japanese)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if !strings.Contains(phrase, "　") {
		t.Fatal("japanese phrase should join words with U+3000")
	}
	back, err := PhraseToEntropy(phrase, wordlist.Japanese)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	defer back.Wipe()
	if !bytes.Equal(back, entropy) {
		t.Error("japanese round trip mismatch")
	}

	// Plain spaces between words must decode the same way.
	spaced := strings.ReplaceAll(phrase, "　", " ")
	back2, err := PhraseToEntropy(spaced, wordlist.Japanese)
	if err != nil {
		t.Fatalf("decode with plain spaces error: %v", err)
	}
	defer back2.Wipe()
	if !bytes.Equal(back2, entropy) {
		t.Error("space-separated japanese phrase decoded differently")
	}
}

func TestLanguageIsolationDecoding(t *testing.T) {
	phrase := englishVectors[0].phrase
	var unknown *UnknownWordError
	if err := Validate(phrase, wordlist.Spanish); !errors.As(err, &unknown) {
		t.Fatalf("english phrase under spanish selector: error = %v, want UnknownWordError", err)
	}
}

func TestEntropyToPhraseRejectsBadLength(t *testing.T) {
	for _, size := range []int{0, 8, 15, 17, 33, 64} {
		if _, err := EntropyToPhrase(make([]byte, size), wordlist.English); err == nil {
			t.Errorf("entropy length %d should be rejected", size)
		}
	}
}
