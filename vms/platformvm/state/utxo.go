// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state holds the ledger's mutable-by-replacement state: the UTxO
// set, the delegation and pool state, and the epoch-level account/snapshot
// state (spec §3, components C2–C4, C7).
package state

import (
	"github.com/google/btree"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

const utxoTreeDegree = 32

func txInLess(a, b txs.TxIn) bool {
	if a.TxID != b.TxID {
		return a.TxID.Less(b.TxID)
	}
	return a.Ix < b.Ix
}

// UTxO is the map from transaction input to transaction output (spec §3
// component C2). The zero value is an empty UTxO.
type UTxO map[txs.TxIn]txs.TxOut

// Clone returns a shallow copy of u; TxOut values are immutable once
// inserted, so a shallow copy is a correct structural-sharing snapshot
// (spec §5 Resource policy).
func (u UTxO) Clone() UTxO {
	out := make(UTxO, len(u))
	for k, v := range u {
		out[k] = v
	}
	return out
}

// Restrict returns the sub-map of u whose keys are not in excluded.
func (u UTxO) Restrict(excluded map[txs.TxIn]struct{}) UTxO {
	out := make(UTxO, len(u))
	for k, v := range u {
		if _, skip := excluded[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// Union returns a new UTxO containing every entry of u and additions.
// additions must not share keys with u; if it does, the additions entry
// wins, matching the construction in spec §4.2 step 1 where additions are
// always freshly-minted outputs.
func (u UTxO) Union(additions UTxO) UTxO {
	out := make(UTxO, len(u)+len(additions))
	for k, v := range u {
		out[k] = v
	}
	for k, v := range additions {
		out[k] = v
	}
	return out
}

// SortedKeys returns the TxIn keys of u in a canonical order, so callers
// that must iterate deterministically (spec §5) never range a raw map. Keys
// are walked off a btree.BTreeG, the same ordered-iteration structure
// stake.Distribution uses, rather than a sort.Slice over a freshly
// collected slice.
func (u UTxO) SortedKeys() []txs.TxIn {
	tree := btree.NewG(utxoTreeDegree, txInLess)
	for k := range u {
		tree.ReplaceOrInsert(k)
	}
	keys := make([]txs.TxIn, 0, tree.Len())
	tree.Ascend(func(k txs.TxIn) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// OutputsAt returns the TxIn set produced by inserting outputs at keys
// (txID, 0..n-1), per spec §4.2 step 1.
func OutputsAt(txID txs.TxID, outputs []txs.TxOut) UTxO {
	u := make(UTxO, len(outputs))
	for i, out := range outputs {
		u[txs.TxIn{TxID: txID, Ix: uint32(i)}] = out
	}
	return u
}

// UTxOState is the record {utxo, deposited, fees, entropy} of spec §3.
type UTxOState struct {
	UTxO UTxO

	// Deposited equals the sum of all still-locked deposits across
	// registered stake keys and pools (spec §3 invariant).
	Deposited chain.Coin

	// Fees accumulates all fees since the last epoch boundary.
	Fees chain.Coin

	// Entropy is the chain's extra-entropy accumulator. The state transition
	// carries it over unchanged; a transaction's TxBody.Entropy is not folded
	// into it.
	Entropy txs.EEnt
}

// Clone returns a structurally-shared copy of s: the UTxO map is cloned,
// scalar fields are copied by value.
func (s UTxOState) Clone() UTxOState {
	return UTxOState{
		UTxO:      s.UTxO.Clone(),
		Deposited: s.Deposited,
		Fees:      s.Fees,
		Entropy:   s.Entropy,
	}
}
