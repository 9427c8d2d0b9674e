// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedwalk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// HardenedKeyStart is the first hardened child index (2^31). Indices at or
// above this value use hardened derivation.
const HardenedKeyStart = hdkeychain.HardenedKeyStart

// DerivationPath is an ordered sequence of child indices from the master key.
// Hardened steps carry the HardenedKeyStart offset, so a path is fully
// described by its indices alone.
type DerivationPath []uint32

// ParsePath parses a path in the usual "m/44'/0'/0'/0/0" notation. The
// leading "m" (or "M") is required; hardened steps may be marked with an
// apostrophe or with "h"/"H".
func ParsePath(s string) (DerivationPath, error) {
	segments := strings.Split(strings.TrimSpace(s), "/")
	if len(segments) == 0 || (segments[0] != "m" && segments[0] != "M") {
		return nil, fmt.Errorf("derivation path %q must start with \"m/\"", s)
	}

	path := make(DerivationPath, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		hardened := false
		switch {
		case strings.HasSuffix(seg, "'"),
			strings.HasSuffix(seg, "h"),
			strings.HasSuffix(seg, "H"):
			hardened = true
			seg = seg[:len(seg)-1]
		}

		index, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("derivation path %q: bad segment %q: %w", s, seg, err)
		}
		if index >= HardenedKeyStart {
			return nil, fmt.Errorf("derivation path %q: index %d out of range", s, index)
		}
		if hardened {
			index += HardenedKeyStart
		}
		path = append(path, uint32(index))
	}
	return path, nil
}

// String renders the path back in "m/44'/0'/0'/0/0" notation.
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, index := range p {
		b.WriteString("/")
		if index >= HardenedKeyStart {
			b.WriteString(strconv.FormatUint(uint64(index-HardenedKeyStart), 10))
			b.WriteString("'")
		} else {
			b.WriteString(strconv.FormatUint(uint64(index), 10))
		}
	}
	return b.String()
}

// Extend returns a copy of the path with the given indices appended. The
// receiver is never mutated; paths behave as immutable values.
func (p DerivationPath) Extend(indices ...uint32) DerivationPath {
	out := make(DerivationPath, 0, len(p)+len(indices))
	out = append(out, p...)
	out = append(out, indices...)
	return out
}

// AccountPath returns the BIP-44 style account path m/purpose'/coin'/account'.
func AccountPath(purpose Purpose, network Network, account uint32) DerivationPath {
	return DerivationPath{
		HardenedKeyStart + uint32(purpose),
		HardenedKeyStart + network.CoinType(),
		HardenedKeyStart + account,
	}
}

// BIP44Path returns the full five-level path
// m/purpose'/coin'/account'/change/index.
func BIP44Path(purpose Purpose, network Network, account, change, index uint32) DerivationPath {
	return AccountPath(purpose, network, account).Extend(change, index)
}
