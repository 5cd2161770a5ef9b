// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"errors"
	"fmt"

	"github.com/tyler-smith/go-bip32"
)

// newChildKey performs a single BIP-32 child derivation. It is a package
// variable so tests can force the invalid-scalar branch, which occurs
// naturally with probability around 2^-127.
var newChildKey = func(parent *bip32.Key, index uint32) (*bip32.Key, error) {
	return parent.NewChildKey(index)
}

// deriveSecp256k1 walks a BIP-32 derivation path over secp256k1 and returns
// the extended key at the terminal segment (private key, chain code, depth,
// parent fingerprint and child index).
//
// The master key is HMAC-SHA512(key="Bitcoin seed", data=seed). Hardened
// children commit to the parent private key, non-hardened children to the
// compressed parent public key. When a child's derived scalar is zero or not
// below the curve order, BIP-32 declares that child index invalid and defines
// the next index as the recovery: one transparent retry at index+1 is
// performed per segment.
func deriveSecp256k1(seed []byte, path Path) (*bip32.Key, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("could not derive bip32 master key: %w", err)
	}

	for _, seg := range path {
		index := seg.Index
		if seg.Hardened {
			index += bip32.FirstHardenedChild
		}

		child, err := newChildKey(key, index)
		if errors.Is(err, bip32.ErrInvalidPrivateKey) {
			child, err = newChildKey(key, index+1)
		}
		if err != nil {
			return nil, fmt.Errorf("could not derive child at %s segment %d: %w", path, index, err)
		}
		key = child
	}

	return key, nil
}
