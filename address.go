// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedwalk

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required by the address format
)

// Purpose is the BIP-44 purpose field selecting the derivation template and
// the address encoding that goes with it.
type Purpose uint32

const (
	// PurposeLegacy is BIP-44, legacy P2PKH ("1..." / "m...", "n...").
	PurposeLegacy Purpose = 44
	// PurposeNestedSegwit is BIP-49, P2SH-wrapped segwit ("3..." / "2...").
	PurposeNestedSegwit Purpose = 49
	// PurposeNativeSegwit is BIP-84, native segwit bech32 ("bc1q..." / "tb1q...").
	PurposeNativeSegwit Purpose = 84
	// PurposeTaproot is BIP-86, taproot bech32m ("bc1p..." / "tb1p...").
	PurposeTaproot Purpose = 86
)

// StandardPurposes lists the supported purposes in report order.
func StandardPurposes() []Purpose {
	return []Purpose{PurposeLegacy, PurposeNestedSegwit, PurposeNativeSegwit, PurposeTaproot}
}

// ScriptType returns the address encoding associated with the purpose.
func (p Purpose) ScriptType() ScriptType {
	switch p {
	case PurposeNestedSegwit:
		return ScriptNestedSegwit
	case PurposeNativeSegwit:
		return ScriptNativeSegwit
	case PurposeTaproot:
		return ScriptTaproot
	default:
		return ScriptLegacy
	}
}

// ScriptType selects how a derived public key is encoded into an address.
type ScriptType int

const (
	// ScriptLegacy is pay-to-pubkey-hash, base58check encoded.
	ScriptLegacy ScriptType = iota
	// ScriptNestedSegwit is P2WPKH nested in P2SH, base58check encoded.
	ScriptNestedSegwit
	// ScriptNativeSegwit is pay-to-witness-pubkey-hash, bech32 encoded.
	ScriptNativeSegwit
	// ScriptTaproot is pay-to-taproot, bech32m encoded.
	ScriptTaproot
)

// ParseScriptType maps a script type name to a ScriptType value.
func ParseScriptType(s string) (ScriptType, error) {
	switch s {
	case "legacy", "p2pkh":
		return ScriptLegacy, nil
	case "segwit", "nested-segwit", "p2sh-p2wpkh":
		return ScriptNestedSegwit, nil
	case "native-segwit", "p2wpkh", "bech32":
		return ScriptNativeSegwit, nil
	case "taproot", "p2tr", "bech32m":
		return ScriptTaproot, nil
	default:
		return 0, fmt.Errorf("unknown script type %q (want legacy, segwit, native-segwit, or taproot)", s)
	}
}

func (t ScriptType) String() string {
	switch t {
	case ScriptLegacy:
		return "legacy"
	case ScriptNestedSegwit:
		return "segwit"
	case ScriptNativeSegwit:
		return "native-segwit"
	case ScriptTaproot:
		return "taproot"
	default:
		return fmt.Sprintf("script(%d)", int(t))
	}
}

// Purpose returns the BIP-44 purpose conventionally paired with the script
// type.
func (t ScriptType) Purpose() Purpose {
	switch t {
	case ScriptNestedSegwit:
		return PurposeNestedSegwit
	case ScriptNativeSegwit:
		return PurposeNativeSegwit
	case ScriptTaproot:
		return PurposeTaproot
	default:
		return PurposeLegacy
	}
}

// EncodeAddress converts a compressed public key into an address string for
// the given script type and network.
func EncodeAddress(pub *btcec.PublicKey, script ScriptType, network Network) (string, error) {
	params, err := network.Params()
	if err != nil {
		return "", err
	}
	keyHash := hash160(pub.SerializeCompressed())

	switch script {
	case ScriptLegacy:
		return base58Check(params.PubKeyHashAddrID, keyHash), nil

	case ScriptNestedSegwit:
		// Redeem script is the witness program OP_0 <20-byte key hash>;
		// the address commits to the hash of that script.
		witnessProg, err := txscript.NewScriptBuilder().
			AddOp(txscript.OP_0).AddData(keyHash).Script()
		if err != nil {
			return "", fmt.Errorf("build witness program: %w", err)
		}
		addr, err := btcutil.NewAddressScriptHash(witnessProg, params)
		if err != nil {
			return "", fmt.Errorf("encode p2sh address: %w", err)
		}
		return addr.EncodeAddress(), nil

	case ScriptNativeSegwit:
		addr, err := btcutil.NewAddressWitnessPubKeyHash(keyHash, params)
		if err != nil {
			return "", fmt.Errorf("encode p2wpkh address: %w", err)
		}
		return addr.EncodeAddress(), nil

	case ScriptTaproot:
		// BIP-86: tweak the internal key with an empty script tree.
		tapKey := txscript.ComputeTaprootKeyNoScript(pub)
		addr, err := btcutil.NewAddressTaproot(schnorr.SerializePubKey(tapKey), params)
		if err != nil {
			return "", fmt.Errorf("encode p2tr address: %w", err)
		}
		return addr.EncodeAddress(), nil

	default:
		return "", fmt.Errorf("unknown script type %d", script)
	}
}

// hash160 is RIPEMD160(SHA256(b)), the digest behind P2PKH and P2WPKH
// programs.
func hash160(b []byte) []byte {
	sha := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// base58Check prepends the version byte, appends the first four bytes of a
// double SHA-256 over the versioned payload, and encodes the whole thing in
// base58.
func base58Check(version byte, payload []byte) string {
	buf := make([]byte, 0, 1+len(payload)+4)
	buf = append(buf, version)
	buf = append(buf, payload...)

	first := sha256.Sum256(buf)
	second := sha256.Sum256(first[:])
	buf = append(buf, second[:4]...)

	return base58.Encode(buf)
}
