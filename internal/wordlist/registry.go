// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package wordlist

import (
	"fmt"
	"sync"
)

// ListSize is the fixed number of words in every BIP-39 vocabulary.
const ListSize = 2048

// Registry is an immutable word/index lookup for one language. Build it via
// For; after initialization it is never written, so concurrent readers need
// no synchronization.
type Registry struct {
	lang  Language
	words []string
	index map[string]int
}

// IndexOutOfRangeError reports a word index outside [0, ListSize).
type IndexOutOfRangeError struct {
	Index int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("word index %d out of range [0,%d)", e.Index, ListSize)
}

var (
	registries [languageCount]*Registry
	buildOnce  [languageCount]sync.Once
)

// For returns the registry for the given language, building it on first
// use. Panics on an out-of-range Language value; callers go through Parse,
// which only produces valid ones.
func For(lang Language) *Registry {
	if lang < 0 || lang >= languageCount {
		panic(fmt.Sprintf("wordlist: invalid language %d", int(lang)))
	}
	buildOnce[lang].Do(func() {
		words := lang.words()
		if len(words) != ListSize {
			panic(fmt.Sprintf("wordlist: %s list has %d words, want %d", lang, len(words), ListSize))
		}
		index := make(map[string]int, ListSize)
		for i, w := range words {
			index[w] = i
		}
		registries[lang] = &Registry{lang: lang, words: words, index: index}
	})
	return registries[lang]
}

// Language returns the language this registry serves.
func (r *Registry) Language() Language { return r.lang }

// Word returns the word at the given 11-bit index.
func (r *Registry) Word(i int) (string, error) {
	if i < 0 || i >= ListSize {
		return "", &IndexOutOfRangeError{Index: i}
	}
	return r.words[i], nil
}

// Index returns the 11-bit index of a word, or false when the word is not
// in this language's vocabulary. Comparison is exact: the published lists
// are already in canonical form and the registry performs no normalization.
func (r *Registry) Index(word string) (int, bool) {
	i, ok := r.index[word]
	return i, ok
}

// Contains reports whether word is in this language's vocabulary.
func (r *Registry) Contains(word string) bool {
	_, ok := r.index[word]
	return ok
}
