// Copyright (c) 2025-2026 Justin Hartman
// See LICENSE for licensing information

package multichain

import (
	"fmt"
	"strings"
)

// maxAccountIndex is the largest account index that can still be
// hardened-encoded: the hardening offset 0x80000000 claims the top bit, so
// indices must fit in 31 bits.
const maxAccountIndex = 1<<31 - 1

// Segment is one level of a derivation path: a 31-bit child index plus the
// hardened marker. The effective wire index is Index+0x80000000 when hardened.
type Segment struct {
	Index    uint32
	Hardened bool
}

// Path is an ordered sequence of derivation segments below the master key.
type Path []Segment

// String renders the path in the conventional notation, e.g. m/44'/501'/0'.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, seg := range p {
		fmt.Fprintf(&b, "/%d", seg.Index)
		if seg.Hardened {
			b.WriteByte('\'')
		}
	}
	return b.String()
}

// hardened and external are shorthands for building path templates.
func hardened(i uint32) Segment { return Segment{Index: i, Hardened: true} }
func external(i uint32) Segment { return Segment{Index: i} }

// PathFor returns the fixed derivation path template for a chain at the
// given account index. Templates are parameterized only by the account
// index; for TON the index occupies a non-terminal segment, matching the
// wallet-recovery convention this tool is compatible with.
//
// An index above 2³¹−1 cannot be hardened-encoded and wraps ErrInvalidConfig.
func PathFor(chain Chain, account uint32) (Path, error) {
	if account > maxAccountIndex {
		return nil, fmt.Errorf("%w: account index %d exceeds 2^31-1", ErrInvalidConfig, account)
	}
	info, ok := chains[chain]
	if !ok {
		return nil, fmt.Errorf("%w: unknown chain %q", ErrInvalidConfig, chain)
	}
	return info.path(account), nil
}
