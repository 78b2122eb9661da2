// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chain defines the primitive value types of the ledger: Coin,
// Slot, Epoch, Ptr, and the bounded-rational types used by the fee and
// reward curves (spec §3, component C1).
package chain

// Denominations of value, in the smallest monetary unit (Lovelace). Mirrors
// the teacher's utils/units denomination ladder.
const (
	Lovelace  uint64 = 1
	KiloAda   uint64 = 1000 * Ada
	MegaAda   uint64 = 1000 * KiloAda
	Ada       uint64 = 1_000_000 * Lovelace
	MilliAda  uint64 = Ada / 1000
)

// Coin is a non-negative integer number of smallest monetary units (spec
// §3). It is a plain uint64: Add/Sub are checked and panic on
// overflow/underflow, and SaturatingSub is the only silently-clamping
// exception, used where the spec calls for it explicitly.
type Coin uint64

// Add returns c+other using checked arithmetic, panicking on overflow. The
// ledger is the only caller of Add on paths the validators have already
// bounded, so an overflow here indicates a validator bug, not bad input.
func (c Coin) Add(other Coin) Coin {
	sum := uint64(c) + uint64(other)
	if sum < uint64(c) {
		panic("chain: Coin addition overflow")
	}
	return Coin(sum)
}

// Sub returns c-other, panicking if other > c. As with Add, validators must
// have already ensured the subtraction cannot underflow.
func (c Coin) Sub(other Coin) Coin {
	if other > c {
		panic("chain: Coin subtraction underflow")
	}
	return c - other
}

// SaturatingSub returns c-other floored at zero. Spec §3 reserves this for
// explicit refund sites (e.g. subtracting a transaction's key refunds from
// the Deposited pot in the state transition).
func (c Coin) SaturatingSub(other Coin) Coin {
	if other > c {
		return 0
	}
	return c - other
}
