// derive_testnet derives the first testnet native-segwit address from a
// BIP39 mnemonic for testing.
//
// Usage:
//
//	go run ./scripts/derive_testnet "your 12 or 24 word seed phrase here"
//
// Or with stdin:
//
//	echo "your seed phrase" | go run ./scripts/derive_testnet
//
// The derived path is m/84'/1'/0'/0/0, matching what most testnet wallets
// show as the first receive address.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/complex-gh/seedwalk"
)

func main() {
	var mnemonic string

	if len(os.Args) > 1 {
		mnemonic = strings.Join(os.Args[1:], " ")
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			mnemonic = strings.TrimSpace(scanner.Text())
		}
	}

	if mnemonic == "" {
		fmt.Fprintln(os.Stderr, "Usage: derive_testnet \"seed phrase\"")
		fmt.Fprintln(os.Stderr, "   or: echo \"seed phrase\" | derive_testnet")
		os.Exit(1)
	}

	path := seedwalk.BIP44Path(seedwalk.PurposeNativeSegwit, seedwalk.Testnet, 0, 0, 0)
	child, err := seedwalk.DerivePath(mnemonic, "", seedwalk.Testnet, path, seedwalk.ScriptNativeSegwit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(child.Address)
}
