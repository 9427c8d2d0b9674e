// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedwalk

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// ExtendedKey is a node in the BIP-32 key tree: a private or public key with
// its chain code, plus the path that produced it and the network it encodes
// for. Derivation is a pure function; keys never share mutable state with
// their children.
type ExtendedKey struct {
	key     *hdkeychain.ExtendedKey
	path    DerivationPath
	network Network
	params  *chaincfg.Params
}

// NewMaster produces the root extended key from a 64-byte seed via
// HMAC-SHA512 under the fixed "Bitcoin seed" label.
func NewMaster(seed []byte, network Network) (*ExtendedKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: seed must be %d bytes, got %d", ErrInvalidKey, SeedSize, len(seed))
	}
	params, err := network.Params()
	if err != nil {
		return nil, err
	}
	master, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		return nil, wrapKeyErr("derive master key", err)
	}
	return &ExtendedKey{key: master, path: DerivationPath{}, network: network, params: params}, nil
}

// Child derives the child key at the given index. Hardened derivation uses
// 0x00 || parent private key || index as HMAC input; non-hardened uses the
// compressed parent public key instead. The left half of the HMAC output is
// added to the parent scalar mod the curve order; a zero or out-of-range
// result fails with ErrInvalidKey.
func (k *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	child, err := k.key.Derive(index)
	if err != nil {
		return nil, wrapKeyErr(fmt.Sprintf("derive child %d of %s", index, k.path), err)
	}
	return &ExtendedKey{
		key:     child,
		path:    k.path.Extend(index),
		network: k.network,
		params:  k.params,
	}, nil
}

// Derive walks the given path segment by segment from this key.
func (k *ExtendedKey) Derive(path DerivationPath) (*ExtendedKey, error) {
	current := k
	for _, index := range path {
		child, err := current.Child(index)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// Path returns the derivation path from the master key to this node.
func (k *ExtendedKey) Path() DerivationPath { return k.path }

// Network returns the network this key serializes for.
func (k *ExtendedKey) Network() Network { return k.network }

// Depth returns the derivation depth (0 for the master key).
func (k *ExtendedKey) Depth() uint8 { return k.key.Depth() }

// IsPrivate reports whether this node still carries a private key.
func (k *ExtendedKey) IsPrivate() bool { return k.key.IsPrivate() }

// Neuter returns the public-only counterpart of this key, suitable for
// watch-only derivation of non-hardened children.
func (k *ExtendedKey) Neuter() (*ExtendedKey, error) {
	pub, err := k.key.Neuter()
	if err != nil {
		return nil, wrapKeyErr("neuter key", err)
	}
	return &ExtendedKey{key: pub, path: k.path, network: k.network, params: k.params}, nil
}

// String returns the serialized extended key (xprv/xpub on mainnet,
// tprv/tpub on testnet).
func (k *ExtendedKey) String() string { return k.key.String() }

// PublicKeyHex returns the compressed 33-byte public key as hex.
func (k *ExtendedKey) PublicKeyHex() (string, error) {
	pub, err := k.key.ECPubKey()
	if err != nil {
		return "", wrapKeyErr("extract public key", err)
	}
	return hex.EncodeToString(pub.SerializeCompressed()), nil
}

// WIF returns the private key in wallet import format (compressed).
func (k *ExtendedKey) WIF() (string, error) {
	priv, err := k.key.ECPrivKey()
	if err != nil {
		return "", wrapKeyErr("extract private key", err)
	}
	wif, err := btcutil.NewWIF(priv, k.params, true)
	if err != nil {
		return "", fmt.Errorf("encode wif: %w", err)
	}
	return wif.String(), nil
}

// Address encodes this key's public key as an address of the given script
// type on the key's network.
func (k *ExtendedKey) Address(script ScriptType) (string, error) {
	pub, err := k.key.ECPubKey()
	if err != nil {
		return "", wrapKeyErr("extract public key", err)
	}
	return EncodeAddress(pub, script, k.network)
}

// ChildKey is the fully rendered output for one derived node: its path, the
// compressed public key, the address, and the private key in WIF.
type ChildKey struct {
	Index        uint32
	Path         string
	PublicKeyHex string
	Address      string
	PrivateWIF   string
}

// childKeyInfo renders a derived node into a ChildKey. Public-only keys get
// an empty PrivateWIF.
func (k *ExtendedKey) childKeyInfo(index uint32, script ScriptType) (ChildKey, error) {
	pubHex, err := k.PublicKeyHex()
	if err != nil {
		return ChildKey{}, err
	}
	addr, err := k.Address(script)
	if err != nil {
		return ChildKey{}, err
	}
	ck := ChildKey{
		Index:        index,
		Path:         k.path.String(),
		PublicKeyHex: pubHex,
		Address:      addr,
	}
	if k.IsPrivate() {
		wif, err := k.WIF()
		if err != nil {
			return ChildKey{}, err
		}
		ck.PrivateWIF = wif
	}
	return ck, nil
}

// DerivePath runs the whole pipeline for a single node: validate the
// mnemonic, derive the seed, walk the path, and encode the address.
func DerivePath(mnemonic, passphrase string, network Network, path DerivationPath, script ScriptType) (ChildKey, error) {
	seed, err := NewSeed(mnemonic, passphrase)
	if err != nil {
		return ChildKey{}, err
	}
	master, err := NewMaster(seed, network)
	if err != nil {
		return ChildKey{}, err
	}
	key, err := master.Derive(path)
	if err != nil {
		return ChildKey{}, err
	}
	index := uint32(0)
	if len(path) > 0 {
		index = path[len(path)-1]
	}
	return key.childKeyInfo(index, script)
}

// wrapKeyErr maps hdkeychain failures onto the package's error kinds while
// keeping the original message.
func wrapKeyErr(op string, err error) error {
	switch {
	case errors.Is(err, hdkeychain.ErrInvalidSeedLen),
		errors.Is(err, hdkeychain.ErrUnusableSeed),
		errors.Is(err, hdkeychain.ErrInvalidChild),
		errors.Is(err, hdkeychain.ErrDeriveHardFromPublic),
		errors.Is(err, hdkeychain.ErrDeriveBeyondMaxDepth),
		errors.Is(err, hdkeychain.ErrNotPrivExtKey):
		return fmt.Errorf("%w: %s: %v", ErrInvalidKey, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
