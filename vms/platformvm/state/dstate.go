// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/google/btree"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

const stateTreeDegree = 32

func hashKeyLess(a, b txs.HashKey) bool { return a.Less(b) }

// DState is the delegation state of spec §3: registered stake keys, reward
// balances, delegations, pointers, and genesis delegates. Invariants (not
// enforced by the type, and not checked by this package):
//
//   - domain(Rewards) == { RewardAcnt(h) | h ∈ domain(StakeKeys) }
//   - range(Pointers) ⊆ domain(StakeKeys)
//   - domain(Delegations) ⊆ domain(StakeKeys)
type DState struct {
	// StakeKeys maps a registered stake key hash to the slot it registered
	// at, used by the refund-curve age computation (spec §4.1).
	StakeKeys map[txs.HashKey]chain.Slot

	// Rewards maps a reward account to its current balance.
	Rewards map[txs.RewardAcnt]chain.Coin

	// Delegations maps a stake key hash to the pool hash it delegates to.
	Delegations map[txs.HashKey]txs.HashKey

	// Pointers maps a Ptr to the stake key hash it addresses.
	Pointers map[chain.Ptr]txs.HashKey

	// GenesisDelegates maps a genesis-key hash to the delegate hash
	// currently acting on its behalf.
	GenesisDelegates map[txs.HashKey]txs.HashKey
}

// NewDState returns an empty DState with all maps allocated.
func NewDState() DState {
	return DState{
		StakeKeys:        make(map[txs.HashKey]chain.Slot),
		Rewards:          make(map[txs.RewardAcnt]chain.Coin),
		Delegations:      make(map[txs.HashKey]txs.HashKey),
		Pointers:         make(map[chain.Ptr]txs.HashKey),
		GenesisDelegates: make(map[txs.HashKey]txs.HashKey),
	}
}

// Clone returns a deep-enough copy of d: every map is fresh, so mutating the
// clone never touches d (spec §5 Resource policy: the engine returns a new
// state on success rather than mutating the caller's).
func (d DState) Clone() DState {
	out := NewDState()
	for k, v := range d.StakeKeys {
		out.StakeKeys[k] = v
	}
	for k, v := range d.Rewards {
		out.Rewards[k] = v
	}
	for k, v := range d.Delegations {
		out.Delegations[k] = v
	}
	for k, v := range d.Pointers {
		out.Pointers[k] = v
	}
	for k, v := range d.GenesisDelegates {
		out.GenesisDelegates[k] = v
	}
	return out
}

// IsRegistered reports whether h is a currently-registered stake key.
func (d DState) IsRegistered(h txs.HashKey) bool {
	_, ok := d.StakeKeys[h]
	return ok
}

// SortedStakeKeys returns the registered stake key hashes in canonical
// order (spec §5 Determinism), walked off a btree.BTreeG the same way
// stake.Distribution orders its accumulation.
func (d DState) SortedStakeKeys() []txs.HashKey {
	tree := btree.NewG(stateTreeDegree, hashKeyLess)
	for k := range d.StakeKeys {
		tree.ReplaceOrInsert(k)
	}
	keys := make([]txs.HashKey, 0, tree.Len())
	tree.Ascend(func(k txs.HashKey) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// DeletePointersTo removes every Pointers entry that addresses h. The
// source's linear-scan approach is kept deliberately (spec §9 open
// question: a bidirectional index would change only the cost model).
func (d DState) DeletePointersTo(h txs.HashKey) {
	for p, target := range d.Pointers {
		if target == h {
			delete(d.Pointers, p)
		}
	}
}
