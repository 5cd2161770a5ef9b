// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
)

const (
	slip10Key      = "ed25519 seed"
	hardenedOffset = uint32(0x80000000)
)

// slip10Node holds a SLIP-0010 ed25519 node: a 32-byte key (the ed25519
// seed at that depth) and its 32-byte chain code.
type slip10Node struct {
	key       []byte
	chainCode []byte
}

// deriveSLIP10 walks a SLIP-0010 derivation path on the ed25519 curve and
// returns the 32-byte seed at the terminal segment.
//
// The master node is HMAC-SHA512(key="ed25519 seed", data=seed). Each child
// is HMAC-SHA512 keyed by the parent chain code over
// 0x00 || parent_key(32) || index_be32 with the hardened bit set. Only
// hardened children exist on ed25519; a template containing a non-hardened
// segment wraps ErrUnsupportedDerivation.
func deriveSLIP10(seed []byte, path Path) ([]byte, error) {
	mac := hmac.New(sha512.New, []byte(slip10Key))
	mac.Write(seed)
	sum := mac.Sum(nil)

	node := slip10Node{key: sum[:32], chainCode: sum[32:]}

	for _, seg := range path {
		if !seg.Hardened {
			return nil, fmt.Errorf("%w: ed25519 path %s has non-hardened segment %d", ErrUnsupportedDerivation, path, seg.Index)
		}
		node = slip10Child(node, seg.Index+hardenedOffset)
	}

	return node.key, nil
}

// slip10Child derives one hardened SLIP-0010 ed25519 child.
// data = 0x00 || parent_key (32 bytes) || index (4 bytes big-endian).
func slip10Child(parent slip10Node, index uint32) slip10Node {
	data := make([]byte, 0, 37)
	data = append(data, 0x00)
	data = append(data, parent.key...)

	var indexBytes [4]byte
	binary.BigEndian.PutUint32(indexBytes[:], index)
	data = append(data, indexBytes[:]...)

	mac := hmac.New(sha512.New, parent.chainCode)
	mac.Write(data)
	sum := mac.Sum(nil)

	return slip10Node{key: sum[:32], chainCode: sum[32:]}
}
