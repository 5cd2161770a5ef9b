// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"errors"
	"reflect"
	"testing"

	"github.com/matryer/is"
)

// TestDeriveAccounts_Defaults verifies the zero-value options derive
// DefaultAccounts indices across all six chains with no failures.
func TestDeriveAccounts_Defaults(t *testing.T) {
	is := is.New(t)

	seed, err := SeedFromMnemonic(testMnemonic, "")
	is.NoErr(err)

	results, err := DeriveAccounts(seed, Options{})
	is.NoErr(err)
	is.Equal(len(results), DefaultAccounts)

	for i, account := range results {
		is.Equal(account.Index, uint32(i))
		is.Equal(len(account.Records), len(AllChains))
		is.Equal(len(account.Errors), 0)

		for chain, record := range account.Records {
			is.Equal(record.Chain, chain)
			is.True(record.Address != "")
			is.True(record.PrivateKey != "")
			is.True(record.Path != "")
		}
	}
}

// TestDeriveAccounts_Deterministic verifies two runs over identical inputs
// yield byte-identical results.
func TestDeriveAccounts_Deterministic(t *testing.T) {
	is := is.New(t)

	seed, err := SeedFromMnemonic(testMnemonic, "")
	is.NoErr(err)

	first, err := DeriveAccounts(seed, Options{Accounts: 2})
	is.NoErr(err)

	second, err := DeriveAccounts(seed, Options{Accounts: 2})
	is.NoErr(err)

	is.True(reflect.DeepEqual(first, second))
}

// TestDeriveAccounts_ChainFilter verifies the filter restricts output and
// that filtered derivation matches the full set: chains are fully
// independent, so excluding TON (the one chain with an embedded, non-terminal
// account index) changes nothing for the others.
func TestDeriveAccounts_ChainFilter(t *testing.T) {
	is := is.New(t)

	seed, err := SeedFromMnemonic(testMnemonic, "")
	is.NoErr(err)

	full, err := DeriveAccounts(seed, Options{Accounts: 2})
	is.NoErr(err)

	subset := []Chain{ChainSolana, ChainEVM, ChainAptos, ChainTron, ChainSui}
	filtered, err := DeriveAccounts(seed, Options{Accounts: 2, Chains: subset})
	is.NoErr(err)

	for i := range filtered {
		is.Equal(len(filtered[i].Records), len(subset))
		for _, chain := range subset {
			is.Equal(filtered[i].Records[chain], full[i].Records[chain])
		}
	}
}

// TestDeriveAccounts_TONPathIsolation verifies changing the TON-only path
// template alters the TON record and nothing else: the five remaining chains
// must come out byte-identical.
func TestDeriveAccounts_TONPathIsolation(t *testing.T) {
	is := is.New(t)

	seed, err := SeedFromMnemonic(testMnemonic, "")
	is.NoErr(err)

	baseline, err := DeriveAccounts(seed, Options{Accounts: 1})
	is.NoErr(err)

	original := chains[ChainTON]
	mutated := original
	mutated.path = func(i uint32) Path {
		return Path{hardened(44), hardened(607), hardened(0), hardened(0), hardened(i), hardened(1)}
	}
	chains[ChainTON] = mutated
	defer func() { chains[ChainTON] = original }()

	altered, err := DeriveAccounts(seed, Options{Accounts: 1})
	is.NoErr(err)

	is.True(altered[0].Records[ChainTON].Address != baseline[0].Records[ChainTON].Address)
	for _, chain := range []Chain{ChainSolana, ChainEVM, ChainAptos, ChainTron, ChainSui} {
		is.Equal(altered[0].Records[chain], baseline[0].Records[chain])
	}
}

// TestDeriveAccounts_UnknownChainFailsFast verifies an unknown identifier
// aborts before any derivation.
func TestDeriveAccounts_UnknownChainFailsFast(t *testing.T) {
	is := is.New(t)

	seed, err := SeedFromMnemonic(testMnemonic, "")
	is.NoErr(err)

	results, err := DeriveAccounts(seed, Options{Chains: []Chain{ChainSolana, "doge"}})
	is.True(errors.Is(err, ErrInvalidConfig))
	is.Equal(results, nil)
}

// TestDeriveAccounts_InvalidInputs covers the remaining fail-fast
// configuration checks.
func TestDeriveAccounts_InvalidInputs(t *testing.T) {
	is := is.New(t)

	seed, err := SeedFromMnemonic(testMnemonic, "")
	is.NoErr(err)

	_, err = DeriveAccounts(seed[:32], Options{})
	is.True(errors.Is(err, ErrInvalidConfig))

	_, err = DeriveAccounts(seed, Options{Accounts: -1})
	is.True(errors.Is(err, ErrInvalidConfig))

	_, err = DeriveAccounts(nil, Options{})
	is.True(errors.Is(err, ErrInvalidConfig))
}

// TestDeriveAccounts_ZeroAndLargeIndex verifies the boundary indices derive
// cleanly: 0 through the orchestrator, and the largest hardened-encodable
// index through the per-record path.
func TestDeriveAccounts_ZeroAndLargeIndex(t *testing.T) {
	is := is.New(t)

	seed, err := SeedFromMnemonic(testMnemonic, "")
	is.NoErr(err)

	results, err := DeriveAccounts(seed, Options{Accounts: 1})
	is.NoErr(err)
	is.Equal(results[0].Index, uint32(0))

	for _, chain := range AllChains {
		record, err := deriveRecord(seed, chain, maxAccountIndex)
		is.NoErr(err)
		is.True(record.Address != "")
	}
}

// TestDeriveAccounts_DistinctAcrossIndices verifies different account
// indices yield different addresses on every chain.
func TestDeriveAccounts_DistinctAcrossIndices(t *testing.T) {
	is := is.New(t)

	seed, err := SeedFromMnemonic(testMnemonic, "")
	is.NoErr(err)

	results, err := DeriveAccounts(seed, Options{Accounts: 2})
	is.NoErr(err)

	for _, chain := range AllChains {
		is.True(results[0].Records[chain].Address != results[1].Records[chain].Address)
	}
}
