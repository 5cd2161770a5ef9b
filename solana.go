// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

// encodeSolana encodes a derived ed25519 seed as a Solana keypair record.
// The private key representation is base58 over the 64-byte secret key
// (seed || public key), the convention Solana tooling imports; the address
// is base58 over the 32-byte public key.
func encodeSolana(seed []byte) (AddressRecord, error) {
	if len(seed) != ed25519.SeedSize {
		return AddressRecord{}, fmt.Errorf("%w: solana key must be %d bytes, got %d", ErrEncoding, ed25519.SeedSize, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	secret := make([]byte, 0, ed25519.PrivateKeySize)
	secret = append(secret, seed...)
	secret = append(secret, pub...)

	return AddressRecord{
		PrivateKey: base58.Encode(secret),
		PublicKey:  base58.Encode(pub),
		Address:    base58.Encode(pub),
	}, nil
}
