// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/xssnick/tonutils-go/ton/wallet"
)

// encodeTON encodes a derived ed25519 seed as a TON account record. The
// address is the state-init hash of a v4R2 wallet contract holding the
// public key (workchain 0, default subwallet). The wallet contract version
// is a fixed constant here; a future wallet version would be a separate
// encoder variant, not a branch inside this one.
//
// Address is the friendly textual form: tag byte, workchain byte, 32-byte
// account id and CRC16/XMODEM checksum, base64url-encoded. AddressHex
// carries the raw workchain:hex form.
func encodeTON(seed []byte) (AddressRecord, error) {
	if len(seed) != ed25519.SeedSize {
		return AddressRecord{}, fmt.Errorf("%w: ton key must be %d bytes, got %d", ErrEncoding, ed25519.SeedSize, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	addr, err := wallet.AddressFromPubKey(pub, wallet.V4R2, wallet.DefaultSubwallet)
	if err != nil {
		return AddressRecord{}, fmt.Errorf("%w: could not compute v4R2 wallet address: %v", ErrEncoding, err)
	}

	return AddressRecord{
		PrivateKey: hex.EncodeToString(seed),
		PublicKey:  hex.EncodeToString(pub),
		Address:    addr.String(),
		AddressHex: fmt.Sprintf("%d:%s", addr.Workchain(), hex.EncodeToString(addr.Data())),
	}, nil
}
