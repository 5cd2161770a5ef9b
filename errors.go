// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import "errors"

// Error sentinels for the derivation pipeline. All errors returned by this
// package wrap one of these, so callers can classify failures with errors.Is.
var (
	// ErrInvalidMnemonic is returned when the recovery phrase fails BIP-39
	// word-count or checksum validation. Fatal: no accounts are derived.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidConfig is returned for an unknown chain identifier, an
	// account index that cannot be hardened-encoded, a negative account
	// count, or a seed that is not 64 bytes. Fatal before derivation starts.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedDerivation is returned when a non-hardened segment is
	// requested on the ed25519 curve, where SLIP-0010 defines only hardened
	// children. This indicates a broken path template, not bad user input.
	ErrUnsupportedDerivation = errors.New("unsupported derivation")

	// ErrEncoding is returned when derived key material violates an
	// encoder's contract (wrong length) or a checksum computation fails.
	// It aborts only the offending chain's record for that account index.
	ErrEncoding = errors.New("encoding failed")
)
