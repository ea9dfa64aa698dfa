// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package analysis

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Strength is the qualitative passphrase verdict.
type Strength string

const (
	StrengthWeak     Strength = "weak"
	StrengthModerate Strength = "moderate"
	StrengthStrong   Strength = "strong"
)

// PassphraseReport describes a passphrase's estimated strength. It carries
// counts and scores only, never the passphrase itself.
type PassphraseReport struct {
	Length      int
	Lowercase   int
	Uppercase   int
	Digits      int
	Symbols     int
	EntropyBits float64
	Score       float64
	Verdict     Strength
	Issues      []string
	Suggestions []string
}

// weakPatterns are substrings that mark a passphrase as predictable.
// Matched case-insensitively.
var weakPatterns = []string{
	"password", "passphrase", "123456", "qwerty", "abc123", "admin",
	"letmein", "welcome", "monkey", "dragon", "master", "shadow",
	"12345678", "football", "baseball", "superman", "batman", "abcd",
	"1234", "qwer",
}

// AnalyzePassphrase scores a passphrase on length, character-class
// diversity, dictionary-pattern avoidance and estimated entropy. Purely
// advisory; it never rejects input.
func AnalyzePassphrase(passphrase string) PassphraseReport {
	report := PassphraseReport{Length: len([]rune(passphrase))}

	for _, r := range passphrase {
		switch {
		case unicode.IsLower(r):
			report.Lowercase++
		case unicode.IsUpper(r):
			report.Uppercase++
		case unicode.IsDigit(r):
			report.Digits++
		default:
			report.Symbols++
		}
	}

	classes := 0
	for _, n := range []int{report.Lowercase, report.Uppercase, report.Digits, report.Symbols} {
		if n > 0 {
			classes++
		}
	}

	score := 0.0
	switch {
	case report.Length < 8:
		report.Issues = append(report.Issues, "too short (8 characters minimum recommended)")
	case report.Length < 12:
		score += 0.2
		report.Suggestions = append(report.Suggestions, "use 12 or more characters")
	case report.Length < 20:
		score += 0.4
	default:
		score += 0.6
	}

	score += float64(classes) / 4.0 * 0.3
	if classes < 3 && report.Length > 0 {
		report.Suggestions = append(report.Suggestions,
			"mix uppercase, lowercase, digits and symbols")
	}
	if classes == 1 && report.Length >= 8 {
		report.Issues = append(report.Issues, "only one character class in use")
	}

	if containsWeakPattern(passphrase) {
		report.Issues = append(report.Issues, "contains a common dictionary pattern")
		score *= 0.5
	}

	report.EntropyBits = estimateEntropyBits(report)
	if report.Length > 0 && report.EntropyBits < 50 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("estimated entropy is low: %.1f bits", report.EntropyBits))
		score *= 0.7
	} else if report.EntropyBits > 80 {
		score += 0.1
	}

	report.Score = math.Min(score, 1.0)
	switch {
	case report.Length <= 1 || report.Score < 0.3:
		report.Verdict = StrengthWeak
	case report.Score < 0.6:
		report.Verdict = StrengthModerate
	default:
		report.Verdict = StrengthStrong
	}

	if report.Length == 0 {
		report.Suggestions = append(report.Suggestions,
			"an empty passphrase adds no protection beyond the mnemonic itself")
	}
	return report
}

func containsWeakPattern(passphrase string) bool {
	lower := strings.ToLower(passphrase)
	for _, p := range weakPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// estimateEntropyBits models the passphrase as uniform draws from the
// union of the character classes in use: length × log2(alphabet).
func estimateEntropyBits(report PassphraseReport) float64 {
	alphabet := 0
	if report.Lowercase > 0 {
		alphabet += 26
	}
	if report.Uppercase > 0 {
		alphabet += 26
	}
	if report.Digits > 0 {
		alphabet += 10
	}
	if report.Symbols > 0 {
		alphabet += 32
	}
	if alphabet == 0 {
		return 0
	}
	return float64(report.Length) * math.Log2(float64(alphabet))
}
