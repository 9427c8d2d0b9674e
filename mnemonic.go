// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package seedwalk derives Bitcoin addresses from a BIP-39 mnemonic phrase.
//
// The pipeline is strictly linear and deterministic: validate the mnemonic,
// stretch it into a 64-byte seed, walk a BIP-32 derivation path from the
// seed, and encode the resulting public key as a network-specific address.
// The same (mnemonic, passphrase, path, network) always yields the same
// address; there is no hidden state anywhere in the package.
package seedwalk

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// validWordCounts are the phrase lengths BIP-39 allows (128 to 256 bits of
// entropy in 32-bit steps).
var validWordCounts = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

// NormalizeMnemonic collapses runs of whitespace in a phrase to single
// spaces and trims the ends. Word case is left untouched; wordlists are
// defined lowercase and a miscased word is a validation error, not a typo
// to silently fix.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}

// ValidateMnemonic checks a phrase against the active wordlist: word count
// must be 12, 15, 18, 21, or 24; every word must exist in the wordlist; and
// the embedded checksum must match. All failures wrap ErrInvalidMnemonic.
func ValidateMnemonic(mnemonic string) error {
	words := strings.Fields(mnemonic)
	if !validWordCounts[len(words)] {
		return fmt.Errorf("%w: %d words (want 12, 15, 18, 21, or 24)", ErrInvalidMnemonic, len(words))
	}

	wordlist := make(map[string]bool, len(bip39.GetWordList()))
	for _, w := range bip39.GetWordList() {
		wordlist[w] = true
	}
	for _, w := range words {
		if !wordlist[w] {
			return fmt.Errorf("%w: unknown word %q", ErrInvalidMnemonic, w)
		}
	}

	if _, err := bip39.EntropyFromMnemonic(strings.Join(words, " ")); err != nil {
		return fmt.Errorf("%w: checksum mismatch", ErrInvalidMnemonic)
	}
	return nil
}

// NewSeed derives the 64-byte seed from a validated mnemonic and optional
// passphrase using PBKDF2-HMAC-SHA512 with 2048 iterations and the salt
// "mnemonic"+passphrase, per BIP-39. Both inputs are NFKD-normalized before
// stretching, so composed and decomposed spellings of the same phrase yield
// the same seed.
func NewSeed(mnemonic, passphrase string) ([]byte, error) {
	if !utf8.ValidString(mnemonic) {
		return nil, fmt.Errorf("%w: mnemonic is not valid UTF-8", ErrInvalidEncoding)
	}
	if !utf8.ValidString(passphrase) {
		return nil, fmt.Errorf("%w: passphrase is not valid UTF-8", ErrInvalidEncoding)
	}

	mnemonic = norm.NFKD.String(NormalizeMnemonic(mnemonic))
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, norm.NFKD.String(passphrase))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}

// GenerateMnemonic creates a fresh mnemonic from entropyBits of system
// entropy. Valid sizes are 128, 160, 192, 224, and 256 bits, giving 12 to 24
// word phrases.
func GenerateMnemonic(entropyBits int) (string, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}
