// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedwalk

import "errors"

// Sentinel errors for the derivation pipeline. Call sites wrap these with
// fmt.Errorf("...: %w", ...) so callers can match with errors.Is while still
// getting a useful message.
var (
	// ErrInvalidMnemonic is returned when a phrase has a wrong word count,
	// contains a word outside the active wordlist, or fails its checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidEncoding is returned when the mnemonic or passphrase is not
	// valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidKey is returned when key derivation produces an unusable key
	// (zero scalar or scalar beyond the curve order), or when a hardened
	// child is requested from a public-only key.
	ErrInvalidKey = errors.New("invalid key")

	// ErrUnsupportedNetwork is returned for a network other than mainnet or
	// testnet.
	ErrUnsupportedNetwork = errors.New("unsupported network")
)
