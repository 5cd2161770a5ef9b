// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"crypto/ed25519"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/blake2b"
)

const (
	// suiSchemeEd25519 is the signature-scheme flag prefixed to public keys
	// and exported private keys for ed25519 accounts.
	suiSchemeEd25519 = 0x00

	// suiPrivKeyHRP is the human-readable prefix of the bech32
	// wallet-import key.
	suiPrivKeyHRP = "suiprivkey"
)

// encodeSui encodes a derived ed25519 seed as a Sui account record. The
// address is BLAKE2b-256 over flag || publicKey; the wallet-import key is
// bech32 over flag || 32-byte seed packed into 5-bit groups.
func encodeSui(seed []byte) (AddressRecord, error) {
	if len(seed) != ed25519.SeedSize {
		return AddressRecord{}, fmt.Errorf("%w: sui key must be %d bytes, got %d", ErrEncoding, ed25519.SeedSize, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	preimage := make([]byte, 0, len(pub)+1)
	preimage = append(preimage, suiSchemeEd25519)
	preimage = append(preimage, pub...)
	addr := blake2b.Sum256(preimage)

	flagged := make([]byte, 0, len(seed)+1)
	flagged = append(flagged, suiSchemeEd25519)
	flagged = append(flagged, seed...)
	grouped, err := bech32.ConvertBits(flagged, 8, 5, true)
	if err != nil {
		return AddressRecord{}, fmt.Errorf("%w: could not regroup sui key bits: %v", ErrEncoding, err)
	}
	importKey, err := bech32.Encode(suiPrivKeyHRP, grouped)
	if err != nil {
		return AddressRecord{}, fmt.Errorf("%w: could not bech32-encode sui key: %v", ErrEncoding, err)
	}

	return AddressRecord{
		PrivateKey:      hexutil.Encode(seed),
		PublicKey:       hexutil.Encode(pub),
		Address:         hexutil.Encode(addr[:]),
		WalletImportKey: importKey,
	}, nil
}
