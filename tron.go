// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil/base58"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
)

// tronAddressPrefix is the mainnet version byte every Tron address carries.
const tronAddressPrefix = 0x41

// encodeTron encodes a derived secp256k1 extended key as a Tron account
// record. Address bytes are 0x41 followed by the last 20 bytes of keccak256
// over the uncompressed public key without its prefix byte; the display form
// is base58check (double SHA-256, 4-byte checksum) over those 21 bytes, and
// AddressHex carries the raw 41-prefixed hex.
func encodeTron(key *bip32.Key) (AddressRecord, error) {
	priv, err := secpKeyPair(key)
	if err != nil {
		return AddressRecord{}, err
	}

	pub := priv.PubKey().SerializeUncompressed()
	digest := ethcrypto.Keccak256(pub[1:])

	payload := make([]byte, 0, 21)
	payload = append(payload, tronAddressPrefix)
	payload = append(payload, digest[12:]...)

	return AddressRecord{
		PrivateKey: hex.EncodeToString(key.Key),
		PublicKey:  hex.EncodeToString(pub),
		Address:    base58.CheckEncode(payload[1:], tronAddressPrefix),
		AddressHex: hex.EncodeToString(payload),
	}, nil
}
