// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"crypto/ed25519"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

// aptosSingleSigScheme is the authentication-key scheme identifier for a
// single ed25519 signer, appended to the public key before hashing.
const aptosSingleSigScheme = 0x00

// encodeAptos encodes a derived ed25519 seed as an Aptos account record.
// The 32-byte address is SHA3-256 over publicKey || scheme byte.
func encodeAptos(seed []byte) (AddressRecord, error) {
	if len(seed) != ed25519.SeedSize {
		return AddressRecord{}, fmt.Errorf("%w: aptos key must be %d bytes, got %d", ErrEncoding, ed25519.SeedSize, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	preimage := make([]byte, 0, len(pub)+1)
	preimage = append(preimage, pub...)
	preimage = append(preimage, aptosSingleSigScheme)
	authKey := sha3.Sum256(preimage)

	return AddressRecord{
		PrivateKey: hexutil.Encode(seed),
		PublicKey:  hexutil.Encode(pub),
		Address:    hexutil.Encode(authKey[:]),
	}, nil
}
