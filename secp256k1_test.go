// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"encoding/hex"
	"testing"

	"github.com/matryer/is"
	"github.com/tyler-smith/go-bip32"
)

// TestDeriveSecp256k1_BIP32Vector1 verifies master and child keys against
// BIP-32 test vector 1 (seed 000102030405060708090a0b0c0d0e0f).
// See: https://github.com/bitcoin/bips/blob/master/bip-0032.mediawiki
func TestDeriveSecp256k1_BIP32Vector1(t *testing.T) {
	is := is.New(t)

	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	is.NoErr(err)

	cases := []struct {
		path          Path
		wantKey       string
		wantChainCode string
	}{
		{
			Path{},
			"e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35",
			"873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508",
		},
		{
			// m/0' (hardened child)
			Path{hardened(0)},
			"edb2e14f9ee77d26dd93b4ecede8d16ed408ce149b6cd80b0715a2d911a0afea",
			"47fdacbd0f1097043b78c63c20c34ef4ed9a111d980047ad16282c7ae6236141",
		},
		{
			// m/0'/1 (non-hardened child)
			Path{hardened(0), external(1)},
			"3c6cb8d0f6a264c91ea8b5030fadaa8e538b020f0a387421a12de9319dc93368",
			"2a7857631386ba23dacac34180dd1983734e444fdbf774041578e9b6adb37c19",
		},
	}

	for _, c := range cases {
		key, err := deriveSecp256k1(seed, c.path)
		is.NoErr(err)
		is.Equal(hex.EncodeToString(key.Key), c.wantKey)
		is.Equal(hex.EncodeToString(key.ChainCode), c.wantChainCode)
	}
}

// TestDeriveSecp256k1_Depth verifies the extended key records its depth and
// terminal child index.
func TestDeriveSecp256k1_Depth(t *testing.T) {
	is := is.New(t)

	seed, err := SeedFromMnemonic(testMnemonic, "")
	is.NoErr(err)

	path, err := PathFor(ChainEVM, 0)
	is.NoErr(err)

	key, err := deriveSecp256k1(seed, path)
	is.NoErr(err)
	is.Equal(int(key.Depth), len(path))
	is.Equal(key.ChildNumber, []byte{0, 0, 0, 0})
	is.True(key.IsPrivate)
}

// TestDeriveSecp256k1_InvalidScalarRetry forces the invalid-scalar branch
// and verifies the deriver retries transparently at index+1, per the BIP-32
// skip rule. The real condition occurs with probability around 2^-127, so
// the child-derivation seam is stubbed to fail exactly once.
func TestDeriveSecp256k1_InvalidScalarRetry(t *testing.T) {
	is := is.New(t)

	orig := newChildKey
	defer func() { newChildKey = orig }()

	var requested []uint32
	failOnce := true
	newChildKey = func(parent *bip32.Key, index uint32) (*bip32.Key, error) {
		requested = append(requested, index)
		if failOnce {
			failOnce = false
			return nil, bip32.ErrInvalidPrivateKey
		}
		return parent.NewChildKey(index)
	}

	seed, err := SeedFromMnemonic(testMnemonic, "")
	is.NoErr(err)

	key, err := deriveSecp256k1(seed, Path{external(5)})
	is.NoErr(err)
	is.Equal(requested, []uint32{5, 6})

	// The recovered key is the ordinary child at the next index.
	newChildKey = orig
	want, err := deriveSecp256k1(seed, Path{external(6)})
	is.NoErr(err)
	is.Equal(key.Key, want.Key)
}
