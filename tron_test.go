// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/matryer/is"
)

// TestTron_Base58CheckRoundTrip verifies the display address decodes back
// to the 0x41-prefixed 21-byte payload with a valid checksum, and that the
// hex form carries the same bytes.
func TestTron_Base58CheckRoundTrip(t *testing.T) {
	is := is.New(t)

	seed, err := SeedFromMnemonic(testMnemonic, "")
	is.NoErr(err)

	record, err := deriveRecord(seed, ChainTron, 0)
	is.NoErr(err)
	is.Equal(record.Path, "m/44'/195'/0'/0/0")
	is.True(strings.HasPrefix(record.Address, "T"))

	payload, version, err := base58.CheckDecode(record.Address)
	is.NoErr(err)
	is.Equal(version, byte(tronAddressPrefix))
	is.Equal(len(payload), 20)

	raw := append([]byte{version}, payload...)
	is.Equal(hex.EncodeToString(raw), record.AddressHex)
	is.Equal(len(record.AddressHex), 42)
	is.True(strings.HasPrefix(record.AddressHex, "41"))
}

// TestTron_DistinctFromEVM verifies Tron and EVM accounts at the same index
// use different coin types and therefore different keys.
func TestTron_DistinctFromEVM(t *testing.T) {
	is := is.New(t)

	seed, err := SeedFromMnemonic(testMnemonic, "")
	is.NoErr(err)

	trx, err := deriveRecord(seed, ChainTron, 0)
	is.NoErr(err)

	evm, err := deriveRecord(seed, ChainEVM, 0)
	is.NoErr(err)

	is.True(trx.PrivateKey != strings.TrimPrefix(evm.PrivateKey, "0x"))
}
