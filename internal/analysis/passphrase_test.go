// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package analysis

import (
	"strings"
	"testing"
)

func TestAnalyzePassphraseVerdicts(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		want       Strength
	}{
		{"empty", "", StrengthWeak},
		{"single char", "a", StrengthWeak},
		{"single digit", "7", StrengthWeak},
		{"short lowercase", "abcdefg", StrengthWeak},
		{"dictionary word", "password123", StrengthWeak},
		{"qwerty run", "qwerty12345", StrengthWeak},
		{"medium two classes", "summertime42", StrengthModerate},
		{"long four classes", "Tr0ubädor&3.hors-Stapler!", StrengthStrong},
		{"long diceware style", "Velvet-Otter-Plasma-9-Quartz!", StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := AnalyzePassphrase(tt.passphrase)
			if report.Verdict != tt.want {
				t.Errorf("verdict %q (score %.2f, issues %v), want %q",
					report.Verdict, report.Score, report.Issues, tt.want)
			}
		})
	}
}

func TestAnalyzePassphraseCharacterClasses(t *testing.T) {
	report := AnalyzePassphrase("aB3!aB3!")
	if report.Lowercase != 2 || report.Uppercase != 2 || report.Digits != 2 || report.Symbols != 2 {
		t.Errorf("class counts = %d/%d/%d/%d, want 2/2/2/2",
			report.Lowercase, report.Uppercase, report.Digits, report.Symbols)
	}
	if report.Length != 8 {
		t.Errorf("length = %d, want 8", report.Length)
	}
}

func TestAnalyzePassphraseLengthCountsRunes(t *testing.T) {
	report := AnalyzePassphrase("überüber")
	if report.Length != 8 {
		t.Errorf("length = %d, want 8 runes", report.Length)
	}
}

func TestAnalyzePassphraseWeakPatternDetected(t *testing.T) {
	report := AnalyzePassphrase("MySuperPASSWORDIsLong!99")
	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "dictionary pattern") {
			found = true
		}
	}
	if !found {
		t.Errorf("no dictionary-pattern issue reported: %v", report.Issues)
	}
}

func TestAnalyzePassphraseEmptyGetsSuggestion(t *testing.T) {
	report := AnalyzePassphrase("")
	if len(report.Suggestions) == 0 {
		t.Fatal("empty passphrase produced no suggestions")
	}
}

func TestAnalyzePassphraseNeverEchoesInput(t *testing.T) {
	const secret = "hunter2hunter2hunter2"
	report := AnalyzePassphrase(secret)
	for _, s := range append(report.Issues, report.Suggestions...) {
		if strings.Contains(s, secret) {
			t.Errorf("report text echoes the passphrase: %q", s)
		}
	}
}

func TestAnalyzePassphraseEntropyEstimate(t *testing.T) {
	// 10 lowercase letters draw from a 26-symbol alphabet: 10*log2(26).
	report := AnalyzePassphrase("kwfjzmrqpx")
	if report.EntropyBits < 46 || report.EntropyBits > 48 {
		t.Errorf("entropy estimate %.2f, want about 47 bits", report.EntropyBits)
	}
}
