// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

// Snapshot is a single captured (stake distribution, delegation map, pool
// parameters) triple, frozen for use by the next epoch's reward
// computation (spec §3, glossary "Snapshot").
type Snapshot struct {
	// Stake maps a stake key hash to its total stake at capture time (spec
	// §4.4's per-key buckets).
	Stake map[txs.HashKey]chain.Coin

	// Delegations maps a stake key hash to the pool it delegated to at
	// capture time.
	Delegations map[txs.HashKey]txs.HashKey

	// PoolParams is the pool parameter set at capture time.
	PoolParams map[txs.HashKey]txs.PoolParams

	// Fees is the fee pot accrued as of capture time.
	Fees chain.Coin
}

// NewSnapshot returns an empty Snapshot with all maps allocated.
func NewSnapshot() Snapshot {
	return Snapshot{
		Stake:       make(map[txs.HashKey]chain.Coin),
		Delegations: make(map[txs.HashKey]txs.HashKey),
		PoolParams:  make(map[txs.HashKey]txs.PoolParams),
	}
}

// Clone returns a deep-enough copy of s.
func (s Snapshot) Clone() Snapshot {
	out := NewSnapshot()
	out.Fees = s.Fees
	for k, v := range s.Stake {
		out.Stake[k] = v
	}
	for k, v := range s.Delegations {
		out.Delegations[k] = v
	}
	for k, v := range s.PoolParams {
		out.PoolParams[k] = v
	}
	return out
}

// PoolStake sums the stake of every key currently delegating to h.
func (s Snapshot) PoolStake(h txs.HashKey) chain.Coin {
	var total chain.Coin
	for key, amount := range s.Stake {
		if s.Delegations[key] == h {
			total = total.Add(amount)
		}
	}
	return total
}

// TotalStake sums the stake of every active key in the snapshot.
func (s Snapshot) TotalStake() chain.Coin {
	var total chain.Coin
	for _, amount := range s.Stake {
		total = total.Add(amount)
	}
	return total
}

// SnapShots is the three rolling stake snapshots of spec §3: mark (taken at
// the end of the current epoch), set, and go (consumed by the reward
// engine).
type SnapShots struct {
	Mark Snapshot
	Set  Snapshot
	Go   Snapshot
}

// Clone returns a deep-enough copy of ss.
func (ss SnapShots) Clone() SnapShots {
	return SnapShots{Mark: ss.Mark.Clone(), Set: ss.Set.Clone(), Go: ss.Go.Clone()}
}

// Rotate advances the three rolling snapshots at an epoch boundary: go <-
// set, set <- mark, mark <- newMark. This is the standard three-snapshot
// rotation the reward engine's "go is consumed, mark is captured" rule
// (spec §3) implies.
func (ss SnapShots) Rotate(newMark Snapshot) SnapShots {
	return SnapShots{Mark: newMark, Set: ss.Mark, Go: ss.Set}
}
