// Copyright (c) 2026 Airgap Tools
// bip39 - BIP-39 mnemonic toolkit for air-gapped machines
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars holds release metadata injected at link time.
package buildvars

// Injected via -ldflags at release build time, e.g.
//
//	go build -ldflags "-X github.com/airgaptools/bip39/buildvars.Version=1.0.0 \
//	                   -X github.com/airgaptools/bip39/buildvars.Commit=4f2a91c"
//
// Both stay empty for local development builds.
var (
	Version string
	Commit  string
)

// Describe returns the version string for --version output: the injected
// version (or def when none was injected), with the commit appended when
// known.
func Describe(def string) string {
	v := Version
	if v == "" {
		v = def
	}
	if Commit != "" {
		v += " (" + Commit + ")"
	}
	return v
}
