// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedwalk

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func testMasterKey(t *testing.T, network Network) *ExtendedKey {
	t.Helper()
	is := is.New(t)

	seed, err := NewSeed(testMnemonic, "")
	is.NoErr(err)
	master, err := NewMaster(seed, network)
	is.NoErr(err)
	return master
}

// TestNewMaster_ReferenceVector verifies the serialized master key against
// the known BIP32 root for the reference mnemonic.
func TestNewMaster_ReferenceVector(t *testing.T) {
	is := is.New(t)

	master := testMasterKey(t, Mainnet)
	is.Equal(master.String(), "xprv9s21ZrQH143K3GJpoapnV8SFfukcVBSfeCficPSGfubmSFDxo1kuHnLisriDvSnRRuL2Qrg5ggqHKNVpxR86QEC8w35uxmGoggxtQTPvfUu")
	is.Equal(master.Depth(), uint8(0))
	is.True(master.IsPrivate())
	is.Equal(master.Path().String(), "m")
}

// TestNewMaster_BadSeedLength rejects seeds that are not 64 bytes.
func TestNewMaster_BadSeedLength(t *testing.T) {
	is := is.New(t)

	_, err := NewMaster(make([]byte, 32), Mainnet)
	is.True(errors.Is(err, ErrInvalidKey))
}

// TestDerivePath_Legacy checks the BIP44 reference child m/44'/0'/0'/0/0.
func TestDerivePath_Legacy(t *testing.T) {
	is := is.New(t)

	path, err := ParsePath("m/44'/0'/0'/0/0")
	is.NoErr(err)
	child, err := DerivePath(testMnemonic, "", Mainnet, path, ScriptLegacy)
	is.NoErr(err)

	is.Equal(child.Address, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA")
	is.Equal(child.PublicKeyHex, "03aaeb52dd7494c361049de67cc680e83ebcbbbdbeb13637d92cd845f70308af5e")
	is.Equal(child.Path, "m/44'/0'/0'/0/0")
	is.True(strings.HasPrefix(child.PrivateWIF, "K") || strings.HasPrefix(child.PrivateWIF, "L"))
}

// TestDerivePath_NestedSegwit checks the BIP49 child m/49'/0'/0'/0/0.
func TestDerivePath_NestedSegwit(t *testing.T) {
	is := is.New(t)

	path := BIP44Path(PurposeNestedSegwit, Mainnet, 0, 0, 0)
	child, err := DerivePath(testMnemonic, "", Mainnet, path, ScriptNestedSegwit)
	is.NoErr(err)

	is.Equal(child.Address, "37VucYSaXLCAsxYyAPfbSi9eh4iEcbShgf")
}

// TestDerivePath_NativeSegwit checks the BIP84 reference vector.
func TestDerivePath_NativeSegwit(t *testing.T) {
	is := is.New(t)

	path := BIP44Path(PurposeNativeSegwit, Mainnet, 0, 0, 0)
	child, err := DerivePath(testMnemonic, "", Mainnet, path, ScriptNativeSegwit)
	is.NoErr(err)

	is.Equal(child.Address, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu")
}

// TestDerivePath_Taproot checks the BIP86 reference vector.
func TestDerivePath_Taproot(t *testing.T) {
	is := is.New(t)

	path := BIP44Path(PurposeTaproot, Mainnet, 0, 0, 0)
	child, err := DerivePath(testMnemonic, "", Mainnet, path, ScriptTaproot)
	is.NoErr(err)

	is.Equal(child.Address, "bc1p5cyxnuxmeuwuvkwfem96lqzszd02n6xdcjrs20cac6yqjjwudpxqkedrcr")
}

// TestDerivePath_InvalidMnemonic fails before any derivation happens.
func TestDerivePath_InvalidMnemonic(t *testing.T) {
	is := is.New(t)

	path := BIP44Path(PurposeLegacy, Mainnet, 0, 0, 0)
	_, err := DerivePath(testMnemonic+" abandon", "", Mainnet, path, ScriptLegacy)
	is.True(errors.Is(err, ErrInvalidMnemonic))
}

// TestTestnet_DiffersFromMainnet verifies the same inputs yield different
// addresses with the testnet version bytes and prefixes.
func TestTestnet_DiffersFromMainnet(t *testing.T) {
	is := is.New(t)

	for _, purpose := range StandardPurposes() {
		mainPath := BIP44Path(purpose, Mainnet, 0, 0, 0)
		testPath := BIP44Path(purpose, Testnet, 0, 0, 0)

		mainChild, err := DerivePath(testMnemonic, "", Mainnet, mainPath, purpose.ScriptType())
		is.NoErr(err)
		testChild, err := DerivePath(testMnemonic, "", Testnet, testPath, purpose.ScriptType())
		is.NoErr(err)

		is.True(mainChild.Address != testChild.Address)

		switch purpose {
		case PurposeLegacy:
			is.True(strings.HasPrefix(testChild.Address, "m") || strings.HasPrefix(testChild.Address, "n"))
		case PurposeNestedSegwit:
			is.True(strings.HasPrefix(testChild.Address, "2"))
		case PurposeNativeSegwit:
			is.True(strings.HasPrefix(testChild.Address, "tb1q"))
		case PurposeTaproot:
			is.True(strings.HasPrefix(testChild.Address, "tb1p"))
		}
	}
}

// TestTestnet_MasterSerialization uses tprv/tpub version bytes.
func TestTestnet_MasterSerialization(t *testing.T) {
	is := is.New(t)

	master := testMasterKey(t, Testnet)
	is.True(strings.HasPrefix(master.String(), "tprv"))

	pub, err := master.Neuter()
	is.NoErr(err)
	is.True(strings.HasPrefix(pub.String(), "tpub"))
}

// TestDeriveHardenedFromNeutered fails with ErrInvalidKey: hardened
// derivation needs the parent private key.
func TestDeriveHardenedFromNeutered(t *testing.T) {
	is := is.New(t)

	master := testMasterKey(t, Mainnet)
	pub, err := master.Neuter()
	is.NoErr(err)
	is.True(!pub.IsPrivate())

	_, err = pub.Child(HardenedKeyStart + 44)
	is.True(errors.Is(err, ErrInvalidKey))
}

// TestNeutered_DerivesSameAddresses verifies watch-only derivation of
// non-hardened children matches the private tree.
func TestNeutered_DerivesSameAddresses(t *testing.T) {
	is := is.New(t)

	master := testMasterKey(t, Mainnet)
	acct, err := master.Derive(AccountPath(PurposeNativeSegwit, Mainnet, 0))
	is.NoErr(err)
	acctPub, err := acct.Neuter()
	is.NoErr(err)

	for i := uint32(0); i < 5; i++ {
		priv, err := acct.Derive(DerivationPath{0, i})
		is.NoErr(err)
		pub, err := acctPub.Derive(DerivationPath{0, i})
		is.NoErr(err)

		privAddr, err := priv.Address(ScriptNativeSegwit)
		is.NoErr(err)
		pubAddr, err := pub.Address(ScriptNativeSegwit)
		is.NoErr(err)
		is.Equal(privAddr, pubAddr)

		_, err = pub.WIF()
		is.True(errors.Is(err, ErrInvalidKey))
	}
}

// TestPathInjective verifies distinct paths yield distinct addresses across
// a range of indices.
func TestPathInjective(t *testing.T) {
	is := is.New(t)

	master := testMasterKey(t, Mainnet)
	chain, err := master.Derive(AccountPath(PurposeLegacy, Mainnet, 0).Extend(0))
	is.NoErr(err)

	seen := make(map[string]string)
	for i := uint32(0); i < 50; i++ {
		child, err := chain.Child(i)
		is.NoErr(err)
		addr, err := child.Address(ScriptLegacy)
		is.NoErr(err)

		prev, dup := seen[addr]
		if dup {
			t.Fatalf("address collision between %s and %s", prev, child.Path())
		}
		seen[addr] = child.Path().String()
	}
}

// TestDeriveReport_ReferenceVectors checks the report against the published
// account keys and first addresses for the reference mnemonic.
func TestDeriveReport_ReferenceVectors(t *testing.T) {
	is := is.New(t)

	report, err := DeriveReport(testMnemonic, "", Mainnet, 0, StandardPurposes(), 2)
	is.NoErr(err)

	is.Equal(report.Network, Mainnet)
	is.Equal(report.Master.ExtendedPrivateKey, "xprv9s21ZrQH143K3GJpoapnV8SFfukcVBSfeCficPSGfubmSFDxo1kuHnLisriDvSnRRuL2Qrg5ggqHKNVpxR86QEC8w35uxmGoggxtQTPvfUu")
	is.Equal(len(report.Reports), 4)

	legacy := report.Reports[0]
	is.Equal(legacy.Purpose, PurposeLegacy)
	is.Equal(legacy.Keys.Path, "m/44'/0'/0'")
	is.Equal(legacy.Keys.ExtendedPublicKey, "xpub6BosfCnifzxcFwrSzQiqu2DBVTshkCXacvNsWGYJVVhhawA7d4R5WSWGFNbi8Aw6ZRc1brxMyWMzG3DSSSSoekkudhUd9yLb6qx39T9nMdj")
	is.Equal(len(legacy.Children), 2)
	is.Equal(legacy.Children[0].Address, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA")
	is.Equal(legacy.Children[0].Path, "m/44'/0'/0'/0/0")

	native := report.Reports[2]
	is.Equal(native.Purpose, PurposeNativeSegwit)
	is.Equal(native.Children[0].Address, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu")

	taproot := report.Reports[3]
	is.Equal(taproot.Purpose, PurposeTaproot)
	is.Equal(taproot.Children[0].Address, "bc1p5cyxnuxmeuwuvkwfem96lqzszd02n6xdcjrs20cac6yqjjwudpxqkedrcr")
}

// TestDeriveReport_Deterministic verifies two runs produce identical output.
func TestDeriveReport_Deterministic(t *testing.T) {
	is := is.New(t)

	r1, err := DeriveReport(testMnemonic, "", Testnet, 0, StandardPurposes(), 3)
	is.NoErr(err)
	r2, err := DeriveReport(testMnemonic, "", Testnet, 0, StandardPurposes(), 3)
	is.NoErr(err)

	is.Equal(r1, r2)
}
