// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

// Package security implements the sensitive-buffer lifecycle: every byte
// slice holding entropy, mnemonic text, passphrases, or seed material is
// wrapped in a Buffer and wiped before release, on success and error paths
// alike. It also provides the process's secure random source and the
// advisory air-gap environment check.
package security

import (
	"fmt"
	"io"
)

// Buffer is a thin wrapper around a byte slice intended to hold sensitive
// material (entropy, mnemonic bytes, passphrases, seeds). It implements
// redaction helpers so accidental formatting or JSON marshaling does not
// reveal data, and an explicit Wipe for deterministic zeroization.
//
// Go's garbage collector gives no destructor guarantees, so ownership is
// explicit: whoever creates a Buffer defers Wipe before doing anything else
// with it.
type Buffer []byte

// NewBuffer allocates a zeroed Buffer of the given length.
func NewBuffer(n int) Buffer { return make(Buffer, n) }

// FromString copies a string's bytes into a fresh Buffer. The string itself
// is immutable and cannot be wiped; callers that obtained sensitive text as
// a string should read it via terminal capture (which yields []byte) where
// possible.
func FromString(in string) Buffer { return Buffer([]byte(in)) }

// FromBytes copies the given bytes into a fresh Buffer.
func FromBytes(in []byte) Buffer {
	out := make(Buffer, len(in))
	copy(out, in)
	return out
}

// String redacts the buffer for fmt.Print* convenience.
func (b Buffer) String() string { return "[REDACTED]" }

// Format implements fmt.Formatter so `%v`, `%#v` and friends stay redacted.
func (b Buffer) Format(f fmt.State, c rune) {
	_, _ = io.WriteString(f, "[REDACTED]")
}

// MarshalJSON redacts the buffer in JSON output.
func (b Buffer) MarshalJSON() ([]byte, error) { return []byte(`"[REDACTED]"`), nil }

// MarshalText redacts the buffer for text encoding.
func (b Buffer) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Bytes returns the underlying slice without copying. The Buffer retains
// ownership; callers must not keep the slice past the owning scope.
func (b Buffer) Bytes() []byte { return []byte(b) }

// Use executes fn with the underlying bytes (not a copy). The bytes remain
// owned by the Buffer and are invalid after Wipe.
func (b Buffer) Use(fn func([]byte) error) error {
	return fn([]byte(b))
}

// Wipe overwrites the underlying bytes with zeros. Safe to call more than
// once and on nil buffers.
func (b *Buffer) Wipe() {
	if b == nil || *b == nil {
		return
	}
	Zero(*b)
}

// Zero overwrites a raw byte slice with zeros. Used for intermediate
// buffers that never get promoted to a Buffer.
func Zero(p []byte) {
	for i := range p {
		p[i] = 0
	}
}
