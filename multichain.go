// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

// Package multichain derives deterministic key material and chain-native
// addresses for several independent blockchains from a single BIP-39
// recovery phrase and optional passphrase.
//
// One 64-byte seed feeds two hierarchical derivation schemes — BIP-32 over
// secp256k1 and SLIP-0010 over ed25519 — and the resulting keys are encoded
// into each chain's textual format (base58, base58check, bech32, EIP-55
// checksummed hex, TON friendly addresses). Everything is an offline, pure
// computation over byte buffers: no network, no filesystem, no shared
// mutable state beyond the read-only seed.
package multichain

import (
	"fmt"

	"github.com/tyler-smith/go-bip32"
)

// Chain identifies one of the supported blockchains.
type Chain string

// Supported chains.
const (
	ChainSolana Chain = "sol"
	ChainEVM    Chain = "evm"
	ChainAptos  Chain = "apt"
	ChainTron   Chain = "trx"
	ChainTON    Chain = "ton"
	ChainSui    Chain = "sui"
)

// AllChains lists every supported chain in canonical display order.
var AllChains = []Chain{ChainSolana, ChainEVM, ChainAptos, ChainTron, ChainTON, ChainSui}

// DefaultAccounts is the number of account indices derived when the caller
// does not ask for a specific count.
const DefaultAccounts = 3

// AddressRecord is the per-chain derivation output: the path it was derived
// at, the private key in the chain's canonical text encoding, the public key
// where the chain exposes one, and the address form(s). Records are
// immutable once produced.
type AddressRecord struct {
	Chain      Chain  `json:"chain"`
	Path       string `json:"path"`
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey,omitempty"`
	Address    string `json:"address"`

	// AddressHex carries the secondary raw form for chains with dual
	// representations: Tron's 41-prefixed hex and TON's workchain:hash.
	AddressHex string `json:"addressHex,omitempty"`

	// WalletImportKey is Sui's bech32 "suiprivkey" import string.
	WalletImportKey string `json:"walletImportKey,omitempty"`
}

// AccountResult bundles everything derived for one account index. Chains
// whose encoding failed appear in Errors instead of Records, so partial
// results survive a single bad record.
type AccountResult struct {
	Index   uint32                  `json:"index"`
	Records map[Chain]AddressRecord `json:"records"`
	Errors  map[Chain]string        `json:"errors,omitempty"`
}

// Options selects what DeriveAccounts produces. The zero value means all
// six chains and DefaultAccounts indices.
type Options struct {
	Chains   []Chain
	Accounts int
}

type curveFamily int

const (
	curveSecp256k1 curveFamily = iota
	curveEd25519
)

// chainInfo is the per-chain metadata the orchestrator selects derivers and
// encoders by. Exactly one encoder field is set, matching the curve family.
type chainInfo struct {
	curve      curveFamily
	path       func(account uint32) Path
	encodeSecp func(key *bip32.Key) (AddressRecord, error)
	encodeEd   func(seed []byte) (AddressRecord, error)
}

var chains = map[Chain]chainInfo{
	ChainSolana: {
		curve:    curveEd25519,
		path:     func(i uint32) Path { return Path{hardened(44), hardened(501), hardened(i)} },
		encodeEd: encodeSolana,
	},
	ChainEVM: {
		curve:      curveSecp256k1,
		path:       func(i uint32) Path { return Path{hardened(44), hardened(60), hardened(i), external(0), external(0)} },
		encodeSecp: encodeEVM,
	},
	ChainAptos: {
		curve:    curveEd25519,
		path:     func(i uint32) Path { return Path{hardened(44), hardened(637), hardened(i), hardened(0), hardened(0)} },
		encodeEd: encodeAptos,
	},
	ChainTron: {
		curve:      curveSecp256k1,
		path:       func(i uint32) Path { return Path{hardened(44), hardened(195), hardened(i), external(0), external(0)} },
		encodeSecp: encodeTron,
	},
	ChainTON: {
		// The account index sits in a non-terminal segment; kept verbatim
		// for compatibility with wallets recovered by this tool.
		curve:    curveEd25519,
		path:     func(i uint32) Path { return Path{hardened(44), hardened(607), hardened(0), hardened(0), hardened(i), hardened(0)} },
		encodeEd: encodeTON,
	},
	ChainSui: {
		curve:    curveEd25519,
		path:     func(i uint32) Path { return Path{hardened(44), hardened(784), hardened(i), hardened(0), hardened(0)} },
		encodeEd: encodeSui,
	},
}

// DeriveAccounts derives an AddressRecord for every requested chain at every
// account index 0..n-1 and returns the results in index order.
//
// seed must be the 64-byte output of SeedFromMnemonic. opts.Chains filters
// the chain set (nil or empty means all six); an unknown identifier wraps
// ErrInvalidConfig before any derivation begins. opts.Accounts of zero means
// DefaultAccounts; negative counts wrap ErrInvalidConfig.
//
// Derivation is deterministic: identical inputs yield byte-identical keys
// and addresses. A failure while encoding one chain's record is reported in
// that account's Errors map and does not disturb other chains or indices.
func DeriveAccounts(seed []byte, opts Options) ([]AccountResult, error) {
	if len(seed) != SeedLen {
		return nil, fmt.Errorf("%w: seed must be %d bytes, got %d", ErrInvalidConfig, SeedLen, len(seed))
	}
	if opts.Accounts < 0 {
		return nil, fmt.Errorf("%w: account count must not be negative, got %d", ErrInvalidConfig, opts.Accounts)
	}

	count := opts.Accounts
	if count == 0 {
		count = DefaultAccounts
	}

	selected := opts.Chains
	if len(selected) == 0 {
		selected = AllChains
	}
	for _, chain := range selected {
		if _, ok := chains[chain]; !ok {
			return nil, fmt.Errorf("%w: unknown chain %q", ErrInvalidConfig, chain)
		}
	}

	results := make([]AccountResult, 0, count)
	for index := 0; index < count; index++ {
		account := AccountResult{
			Index:   uint32(index),
			Records: make(map[Chain]AddressRecord, len(selected)),
		}

		for _, chain := range selected {
			record, err := deriveRecord(seed, chain, uint32(index))
			if err != nil {
				if account.Errors == nil {
					account.Errors = make(map[Chain]string)
				}
				account.Errors[chain] = err.Error()
				continue
			}
			account.Records[chain] = record
		}

		results = append(results, account)
	}

	return results, nil
}

// deriveRecord builds the path for one chain and account index, derives the
// key with the deriver matching the chain's curve family, and encodes it.
func deriveRecord(seed []byte, chain Chain, account uint32) (AddressRecord, error) {
	info := chains[chain]

	path, err := PathFor(chain, account)
	if err != nil {
		return AddressRecord{}, err
	}

	var record AddressRecord
	switch info.curve {
	case curveSecp256k1:
		key, err := deriveSecp256k1(seed, path)
		if err != nil {
			return AddressRecord{}, err
		}
		record, err = info.encodeSecp(key)
		if err != nil {
			return AddressRecord{}, err
		}
	case curveEd25519:
		edSeed, err := deriveSLIP10(seed, path)
		if err != nil {
			return AddressRecord{}, err
		}
		record, err = info.encodeEd(edSeed)
		if err != nil {
			return AddressRecord{}, err
		}
	}

	record.Chain = chain
	record.Path = path.String()
	return record, nil
}
