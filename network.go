// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seedwalk

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network selects the chain parameters used for address version bytes,
// bech32 prefixes, WIF encoding, and the BIP-44 coin type. It is an explicit
// enum passed through the pipeline; the core never branches on strings.
type Network int

const (
	// Mainnet is the Bitcoin main network (coin type 0, "bc" prefix).
	Mainnet Network = iota
	// Testnet is the Bitcoin test network, testnet3 (coin type 1, "tb" prefix).
	Testnet
)

// ParseNetwork maps a network name to a Network value.
func ParseNetwork(s string) (Network, error) {
	switch s {
	case "mainnet", "main", "":
		return Mainnet, nil
	case "testnet", "testnet3", "test":
		return Testnet, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, s)
	}
}

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	default:
		return fmt.Sprintf("network(%d)", int(n))
	}
}

// Params returns the chaincfg parameters for the network.
func (n Network) Params() (*chaincfg.Params, error) {
	switch n {
	case Mainnet:
		return &chaincfg.MainNetParams, nil
	case Testnet:
		return &chaincfg.TestNet3Params, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedNetwork, n)
	}
}

// CoinType returns the BIP-44 coin type constant for the network:
// 0 for mainnet, 1 for testnet.
func (n Network) CoinType() uint32 {
	if n == Testnet {
		return 1
	}
	return 0
}
