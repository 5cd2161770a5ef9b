// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// SeedLen is the size in bytes of a BIP-39 master seed.
const SeedLen = 64

// SeedFromMnemonic converts a BIP-39 recovery phrase and optional passphrase
// (empty string if absent) into the 64-byte master seed consumed by both
// derivers. The mnemonic must be 12, 15, 18, 21 or 24 words from the active
// wordlist with a valid checksum; anything else wraps ErrInvalidMnemonic.
//
// The seed is PBKDF2-HMAC-SHA512 over the mnemonic with 2048 iterations and
// salt "mnemonic"+passphrase, per BIP-39. The computation is pure: the same
// phrase and passphrase always yield the same seed.
func SeedFromMnemonic(mnemonic string, passphrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}
