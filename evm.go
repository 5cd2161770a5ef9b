// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
)

// secpKeyPair converts an extended key's raw scalar into a btcec keypair,
// enforcing the 32-byte encoder contract.
func secpKeyPair(key *bip32.Key) (*btcec.PrivateKey, error) {
	if key == nil || len(key.Key) != 32 {
		return nil, fmt.Errorf("%w: secp256k1 key must be 32 bytes", ErrEncoding)
	}
	priv, _ := btcec.PrivKeyFromBytes(key.Key)
	return priv, nil
}

// encodeEVM encodes a derived secp256k1 extended key as an EVM account
// record. The address is the last 20 bytes of keccak256 over the
// uncompressed public key, rendered with the EIP-55 mixed-case checksum.
func encodeEVM(key *bip32.Key) (AddressRecord, error) {
	priv, err := secpKeyPair(key)
	if err != nil {
		return AddressRecord{}, err
	}

	pub := priv.PubKey().SerializeUncompressed()
	addr := ethcrypto.PubkeyToAddress(priv.ToECDSA().PublicKey)

	return AddressRecord{
		PrivateKey: hexutil.Encode(key.Key),
		PublicKey:  hexutil.Encode(pub),
		Address:    addr.Hex(),
	}, nil
}
