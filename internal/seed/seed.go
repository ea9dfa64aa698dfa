// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

// Package seed derives the 64-byte BIP-39 seed from a mnemonic and
// optional passphrase via PBKDF2-HMAC-SHA512.
package seed

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"github.com/airgaptools/bip39/internal/security"
)

const (
	// Size is the seed length in bytes (512 bits).
	Size = 64

	// Iterations is the fixed PBKDF2 iteration count from the standard.
	Iterations = 2048

	// saltPrefix is prepended to the passphrase to form the KDF salt.
	saltPrefix = "mnemonic"
)

// Derive computes the seed for a mnemonic phrase and passphrase. Both
// inputs are NFKD-normalized; an absent passphrase is the empty string.
//
// Deliberately permissive: the phrase's checksum is NOT validated here,
// matching the standard, which defines seed derivation over any word
// sequence. Callers wanting validation run it as a separate step first.
//
// The returned buffer is owned by the caller, who must Wipe it.
func Derive(phrase, passphrase string) security.Buffer {
	password := []byte(norm.NFKD.String(phrase))
	defer security.Zero(password)

	salt := make([]byte, 0, len(saltPrefix)+len(passphrase)*2)
	salt = append(salt, saltPrefix...)
	salt = append(salt, norm.NFKD.String(passphrase)...)
	defer security.Zero(salt)

	return security.Buffer(pbkdf2.Key(password, salt, Iterations, Size, sha512.New))
}
