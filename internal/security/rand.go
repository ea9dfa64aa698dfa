// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// ErrRandomSourceUnavailable reports that the operating system's secure
// random source failed. There is no fallback: callers must fail closed.
var ErrRandomSourceUnavailable = errors.New("secure random source unavailable")

// RandomBuffer fills a fresh Buffer of length n from the operating system's
// cryptographically secure random source. On any failure the partially
// filled buffer is wiped and ErrRandomSourceUnavailable is returned.
func RandomBuffer(n int) (Buffer, error) {
	buf := NewBuffer(n)
	if _, err := rand.Read(buf); err != nil {
		buf.Wipe()
		return nil, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	return buf, nil
}
