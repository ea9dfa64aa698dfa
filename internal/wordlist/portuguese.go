// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package wordlist

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
)

// The go-bip39 wordlists package stops at nine languages, so the
// Portuguese list ships with this repository as embedded data.

//go:embed portuguese.txt
var portugueseData string

var (
	portugueseOnce sync.Once
	portuguese     []string
)

func portugueseWords() []string {
	portugueseOnce.Do(func() {
		portuguese = strings.Split(strings.TrimSpace(portugueseData), "\n")
		if len(portuguese) != ListSize {
			panic(fmt.Sprintf("wordlist: embedded portuguese list has %d words, want %d", len(portuguese), ListSize))
		}
	})
	return portuguese
}
