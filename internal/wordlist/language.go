// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

// Package wordlist exposes the ten reference BIP-39 vocabularies and the
// word/index lookups over them. Lists are static data loaded once per
// process and never mutated, so registries are safe to share across
// goroutines without locks.
package wordlist

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Language selects one of the ten published BIP-39 wordlists.
type Language int

const (
	English Language = iota
	Japanese
	Korean
	Spanish
	ChineseSimplified
	ChineseTraditional
	French
	Italian
	Czech
	Portuguese

	languageCount
)

// UnsupportedLanguageError reports a language identifier outside the fixed
// set of ten.
type UnsupportedLanguageError struct {
	Name string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q (supported: %s)", e.Name, strings.Join(Names(), ", "))
}

var languageNames = [languageCount]string{
	English:            "english",
	Japanese:           "japanese",
	Korean:             "korean",
	Spanish:            "spanish",
	ChineseSimplified:  "chinese-simplified",
	ChineseTraditional: "chinese-traditional",
	French:             "french",
	Italian:            "italian",
	Czech:              "czech",
	Portuguese:         "portuguese",
}

// Parse maps an external language identifier to a Language.
func Parse(name string) (Language, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for lang, n := range languageNames {
		if n == normalized {
			return Language(lang), nil
		}
	}
	return 0, &UnsupportedLanguageError{Name: name}
}

// String returns the external identifier for the language.
func (l Language) String() string {
	if l < 0 || l >= languageCount {
		return fmt.Sprintf("language(%d)", int(l))
	}
	return languageNames[l]
}

// Separator returns the canonical word separator for mnemonics in this
// language. Japanese phrases join words with U+3000 (ideographic space) per
// the reference lists; everything else uses a plain space.
func (l Language) Separator() string {
	if l == Japanese {
		return "　"
	}
	return " "
}

// Names lists the supported external language identifiers in declaration
// order.
func Names() []string {
	names := make([]string, languageCount)
	copy(names, languageNames[:])
	return names
}

// words returns the raw vocabulary for the language. Nine lists come from
// the go-bip39 wordlists package; Portuguese is embedded locally because
// upstream does not publish it.
func (l Language) words() []string {
	switch l {
	case English:
		return wordlists.English
	case Japanese:
		return wordlists.Japanese
	case Korean:
		return wordlists.Korean
	case Spanish:
		return wordlists.Spanish
	case ChineseSimplified:
		return wordlists.ChineseSimplified
	case ChineseTraditional:
		return wordlists.ChineseTraditional
	case French:
		return wordlists.French
	case Italian:
		return wordlists.Italian
	case Czech:
		return wordlists.Czech
	case Portuguese:
		return portugueseWords()
	}
	return nil
}
