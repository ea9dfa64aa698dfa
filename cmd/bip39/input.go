// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/airgaptools/bip39/internal/security"
)

// readSecret prompts on stderr and reads a line from the terminal with
// echo disabled. The returned buffer is owned by the caller, who must
// Wipe it.
func readSecret(prompt string) (security.Buffer, error) {
	fmt.Fprint(os.Stderr, warnStyle.Render(prompt)+" ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("read secure input: %w", err)
	}
	buf := security.FromBytes(raw)
	security.Zero(raw)
	return buf, nil
}
