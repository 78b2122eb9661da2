// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/google/btree"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

// PState is the pool state of spec §3: registered pools, their parameters,
// any scheduled retirement, and operational counters. Invariant (not
// enforced by the type, and not checked by this package): domain(Params) ⊇
// domain(Pools) ⊇ domain(Retiring).
type PState struct {
	// Pools maps a pool hash to the slot it first registered at.
	Pools map[txs.HashKey]chain.Slot

	// Params maps a pool hash to its current parameters.
	Params map[txs.HashKey]txs.PoolParams

	// Retiring maps a pool hash to its scheduled retirement epoch.
	Retiring map[txs.HashKey]chain.Epoch

	// OpCounters maps a pool hash to its per-KES-evolution monotonic
	// counter (glossary "Operational counter"); the core treats it as an
	// opaque mapping, per spec glossary.
	OpCounters map[txs.HashKey]uint64
}

// NewPState returns an empty PState with all maps allocated.
func NewPState() PState {
	return PState{
		Pools:      make(map[txs.HashKey]chain.Slot),
		Params:     make(map[txs.HashKey]txs.PoolParams),
		Retiring:   make(map[txs.HashKey]chain.Epoch),
		OpCounters: make(map[txs.HashKey]uint64),
	}
}

// Clone returns a deep-enough copy of p.
func (p PState) Clone() PState {
	out := NewPState()
	for k, v := range p.Pools {
		out.Pools[k] = v
	}
	for k, v := range p.Params {
		out.Params[k] = v
	}
	for k, v := range p.Retiring {
		out.Retiring[k] = v
	}
	for k, v := range p.OpCounters {
		out.OpCounters[k] = v
	}
	return out
}

// IsRegistered reports whether h is a currently-registered pool.
func (p PState) IsRegistered(h txs.HashKey) bool {
	_, ok := p.Pools[h]
	return ok
}

// SortedPoolKeys returns the registered pool hashes in canonical order
// (spec §5 Determinism), walked off a btree.BTreeG the same way
// stake.Distribution orders its accumulation.
func (p PState) SortedPoolKeys() []txs.HashKey {
	tree := btree.NewG(stateTreeDegree, hashKeyLess)
	for k := range p.Pools {
		tree.ReplaceOrInsert(k)
	}
	keys := make([]txs.HashKey, 0, tree.Len())
	tree.Ascend(func(k txs.HashKey) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// RetirePool schedules h for retirement at epoch e (spec §4.3 RetirePool
// row). The caller must have already validated that h is registered.
func (p PState) RetirePool(h txs.HashKey, e chain.Epoch) {
	p.Retiring[h] = e
}

// Sweep removes every pool whose scheduled retirement epoch equals
// currentEpoch (spec §4.3 epoch-boundary sweep), in canonical key order so
// any side effects a caller layers on top (e.g. logging) are deterministic.
func (p PState) Sweep(currentEpoch chain.Epoch) []txs.HashKey {
	var retired []txs.HashKey
	for _, h := range p.SortedPoolKeys() {
		if e, ok := p.Retiring[h]; ok && e == currentEpoch {
			retired = append(retired, h)
		}
	}
	for _, h := range retired {
		delete(p.Pools, h)
		delete(p.Params, h)
		delete(p.Retiring, h)
	}
	return retired
}
