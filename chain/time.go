// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// Slot is a monotonic integer slot index (spec §3).
type Slot uint64

// Epoch is a monotonic integer epoch index (spec §3).
type Epoch uint64

// SlotsPerEpoch is the system constant relating slots to epochs. It is a
// package variable rather than a const so genesis configuration (an
// external collaborator, spec §1) can set it once at process start; the
// core never mutates it after that.
var SlotsPerEpoch uint64 = 432_000

// EpochFromSlot computes epochFromSlot(s) = s / slotsPerEpoch.
func EpochFromSlot(s Slot) Epoch {
	return Epoch(uint64(s) / SlotsPerEpoch)
}

// FirstSlot computes firstSlot(e) = e * slotsPerEpoch.
func FirstSlot(e Epoch) Slot {
	return Slot(uint64(e) * SlotsPerEpoch)
}

// Since returns s-other as a non-negative slot duration. Per spec §3, slot
// subtraction never produces a negative duration; a caller subtracting a
// later slot from an earlier one has a bug.
func (s Slot) Since(other Slot) uint64 {
	if other > s {
		panic("chain: slot subtraction would be negative")
	}
	return uint64(s - other)
}
