// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stake materializes the stake-by-key and stake-by-pool
// distributions from a UTxO and a delegation/pool state (spec §3 component
// C9, spec §4.4).
package stake

import (
	"github.com/google/btree"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/state"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

const treeDegree = 32

// bucket is one (stake key hash, accumulated coin) entry kept in a
// btree.BTreeG so the accumulation walk below is always in canonical key
// order (spec §5 Determinism), the same discipline the teacher's
// state/stakers.go uses a btree.BTreeG[*Staker] for.
type bucket struct {
	key  txs.HashKey
	coin chain.Coin
}

func bucketLess(a, b bucket) bool {
	return a.key.Less(b.key)
}

// Distribution computes stakeDistribution(utxo, dstate, pstate): the total
// stake, keyed by stake-key hash, of every stake key that is registered,
// has delegated, and whose delegate is itself a registered pool (spec
// §4.4). Stake held by any other key is "inactive" and is excluded from
// both the per-key map and its implicit total.
func Distribution(utxo state.UTxO, dstate state.DState, pstate state.PState) map[txs.HashKey]chain.Coin {
	buckets := btree.NewG(treeDegree, bucketLess)
	add := func(key txs.HashKey, amount chain.Coin) {
		if amount == 0 {
			return
		}
		if existing, ok := buckets.Get(bucket{key: key}); ok {
			existing.coin = existing.coin.Add(amount)
			buckets.ReplaceOrInsert(existing)
			return
		}
		buckets.ReplaceOrInsert(bucket{key: key, coin: amount})
	}

	for _, in := range utxo.SortedKeys() {
		out := utxo[in]
		switch out.Address.Kind {
		case txs.AddrTxin:
			add(out.Address.StakeKeyHash, out.Amount)
		case txs.AddrPtr:
			if key, ok := dstate.Pointers[out.Address.Pointer]; ok {
				add(key, out.Amount)
			}
		}
	}

	for _, key := range dstate.SortedStakeKeys() {
		add(key, dstate.Rewards[key])
	}

	result := make(map[txs.HashKey]chain.Coin)
	buckets.Ascend(func(b bucket) bool {
		if !isActive(b.key, dstate, pstate) {
			return true
		}
		result[b.key] = b.coin
		return true
	})
	return result
}

// isActive reports whether stake key s counts toward the active
// distribution: it must be registered, delegating, and delegating to a
// currently-registered pool (spec §4.4).
func isActive(s txs.HashKey, dstate state.DState, pstate state.PState) bool {
	if !dstate.IsRegistered(s) {
		return false
	}
	target, delegating := dstate.Delegations[s]
	if !delegating {
		return false
	}
	return pstate.IsRegistered(target)
}

// PoolStake sums the active stake of every key delegating to pool h, using
// the same active-key filter as Distribution.
func PoolStake(h txs.HashKey, utxo state.UTxO, dstate state.DState, pstate state.PState) chain.Coin {
	dist := Distribution(utxo, dstate, pstate)
	var total chain.Coin
	for key, amount := range dist {
		if dstate.Delegations[key] == h {
			total = total.Add(amount)
		}
	}
	return total
}

// Snapshot captures dist and the current pool parameters and delegations
// into a state.Snapshot, frozen for the reward engine's next invocation
// (spec §3 "Snapshot", spec §4.5).
func Snapshot(utxo state.UTxO, dstate state.DState, pstate state.PState, fees chain.Coin) state.Snapshot {
	snap := state.NewSnapshot()
	snap.Fees = fees
	dist := Distribution(utxo, dstate, pstate)
	for key, amount := range dist {
		snap.Stake[key] = amount
		snap.Delegations[key] = dstate.Delegations[key]
	}
	for _, h := range pstate.SortedPoolKeys() {
		snap.PoolParams[h] = pstate.Params[h]
	}
	return snap
}
