// seedhex prints the 64-byte BIP-39 seed for a mnemonic, hex-encoded. It is
// a debugging aid for checking derivation vectors against other tools.
//
// Usage:
//
//	go run ./scripts/seedhex "your 24 word seed phrase here"
//
// Or with stdin:
//
//	echo "your 24 word seed phrase" | go run ./scripts/seedhex
//
// An optional passphrase can be supplied as the MWALLET_PASSPHRASE
// environment variable.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	multichain "github.com/justinhartman/multichain-wallet-cli"
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
		fmt.Fprintln(os.Stderr, "Usage: seedhex \"24 word seed phrase\"")
		fmt.Fprintln(os.Stderr, "   or: echo \"seed phrase\" | seedhex")
		os.Exit(1)
	}

	seed, err := multichain.SeedFromMnemonic(mnemonic, os.Getenv("MWALLET_PASSPHRASE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hex.EncodeToString(seed))
}
