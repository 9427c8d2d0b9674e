// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedwalk

// ExtendedKeyPair is a serialized extended private/public key pair for one
// node of the tree.
type ExtendedKeyPair struct {
	Path               string
	ExtendedPrivateKey string
	ExtendedPublicKey  string
}

// AccountReport is the derivation output for one purpose: the account-level
// extended keys and the first external-chain children.
type AccountReport struct {
	Purpose  Purpose
	Script   ScriptType
	Keys     ExtendedKeyPair
	Children []ChildKey
}

// Report is the full derivation output for a mnemonic: master extended keys
// plus one AccountReport per requested purpose.
type Report struct {
	Network Network
	Master  ExtendedKeyPair
	Account uint32
	Reports []AccountReport
}

// extendedKeyPair serializes a node's xprv/xpub pair. Public-only keys get
// an empty ExtendedPrivateKey.
func extendedKeyPair(key *ExtendedKey) (ExtendedKeyPair, error) {
	pair := ExtendedKeyPair{Path: key.Path().String()}
	if key.IsPrivate() {
		pair.ExtendedPrivateKey = key.String()
		pub, err := key.Neuter()
		if err != nil {
			return ExtendedKeyPair{}, err
		}
		pair.ExtendedPublicKey = pub.String()
	} else {
		pair.ExtendedPublicKey = key.String()
	}
	return pair, nil
}

// DeriveReport runs the pipeline for every requested purpose: seed from the
// mnemonic, master keys, account keys at m/purpose'/coin'/account', and the
// first count external (change=0) children per account.
func DeriveReport(mnemonic, passphrase string, network Network, account uint32, purposes []Purpose, count uint32) (*Report, error) {
	seed, err := NewSeed(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	master, err := NewMaster(seed, network)
	if err != nil {
		return nil, err
	}
	masterPair, err := extendedKeyPair(master)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Network: network,
		Master:  masterPair,
		Account: account,
		Reports: make([]AccountReport, 0, len(purposes)),
	}

	for _, purpose := range purposes {
		acct, err := master.Derive(AccountPath(purpose, network, account))
		if err != nil {
			return nil, err
		}
		acctPair, err := extendedKeyPair(acct)
		if err != nil {
			return nil, err
		}

		// External chain is change=0; internal (change=1) is for change
		// addresses and not part of the report.
		external, err := acct.Child(0)
		if err != nil {
			return nil, err
		}
		children, err := DeriveRange(external, purpose.ScriptType(), 0, count)
		if err != nil {
			return nil, err
		}

		report.Reports = append(report.Reports, AccountReport{
			Purpose:  purpose,
			Script:   purpose.ScriptType(),
			Keys:     acctPair,
			Children: children,
		})
	}
	return report, nil
}
