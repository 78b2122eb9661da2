// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package stake

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/state"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

func TestDistributionExcludesInactiveStake(t *testing.T) {
	require := require.New(t)

	pool := txs.HashKey{0x10}
	registeredDelegating := txs.HashKey{0x01}
	registeredNotDelegating := txs.HashKey{0x02}
	notRegistered := txs.HashKey{0x03}
	delegatingToUnregisteredPool := txs.HashKey{0x04}
	unregisteredPool := txs.HashKey{0x20}

	dstate := state.NewDState()
	dstate.StakeKeys[registeredDelegating] = 0
	dstate.StakeKeys[registeredNotDelegating] = 0
	dstate.StakeKeys[delegatingToUnregisteredPool] = 0
	dstate.Delegations[registeredDelegating] = pool
	dstate.Delegations[delegatingToUnregisteredPool] = unregisteredPool

	pstate := state.NewPState()
	pstate.Pools[pool] = 0

	utxo := state.UTxO{
		txs.TxIn{TxID: txs.TxID{0x01}}: {Address: txs.NewTxinAddress(txs.HashKey{}, registeredDelegating), Amount: 100},
		txs.TxIn{TxID: txs.TxID{0x02}}: {Address: txs.NewTxinAddress(txs.HashKey{}, registeredNotDelegating), Amount: 50},
		txs.TxIn{TxID: txs.TxID{0x03}}: {Address: txs.NewTxinAddress(txs.HashKey{}, notRegistered), Amount: 30},
		txs.TxIn{TxID: txs.TxID{0x04}}: {Address: txs.NewTxinAddress(txs.HashKey{}, delegatingToUnregisteredPool), Amount: 40},
	}

	dist := Distribution(utxo, dstate, pstate)

	require.Len(dist, 1)
	require.Equal(chain.Coin(100), dist[registeredDelegating])
}

func TestDistributionViaPointer(t *testing.T) {
	require := require.New(t)

	pool := txs.HashKey{0x10}
	stakeKey := txs.HashKey{0x01}
	ptr := chain.Ptr{Slot: 1, TxIndex: 0, CertIndex: 0}

	dstate := state.NewDState()
	dstate.StakeKeys[stakeKey] = 0
	dstate.Delegations[stakeKey] = pool
	dstate.Pointers[ptr] = stakeKey

	pstate := state.NewPState()
	pstate.Pools[pool] = 0

	utxo := state.UTxO{
		txs.TxIn{TxID: txs.TxID{0x01}}: {Address: txs.NewPtrAddress(txs.HashKey{}, ptr), Amount: 75},
	}

	dist := Distribution(utxo, dstate, pstate)
	require.Equal(chain.Coin(75), dist[stakeKey])
}

func TestDistributionIncludesRewards(t *testing.T) {
	require := require.New(t)

	pool := txs.HashKey{0x10}
	stakeKey := txs.HashKey{0x01}

	dstate := state.NewDState()
	dstate.StakeKeys[stakeKey] = 0
	dstate.Delegations[stakeKey] = pool
	dstate.Rewards[stakeKey] = 15

	pstate := state.NewPState()
	pstate.Pools[pool] = 0

	dist := Distribution(state.UTxO{}, dstate, pstate)
	require.Equal(chain.Coin(15), dist[stakeKey])
}

func TestPoolStake(t *testing.T) {
	require := require.New(t)

	poolA := txs.HashKey{0x10}
	poolB := txs.HashKey{0x11}
	keyA := txs.HashKey{0x01}
	keyB := txs.HashKey{0x02}

	dstate := state.NewDState()
	dstate.StakeKeys[keyA] = 0
	dstate.StakeKeys[keyB] = 0
	dstate.Delegations[keyA] = poolA
	dstate.Delegations[keyB] = poolB

	pstate := state.NewPState()
	pstate.Pools[poolA] = 0
	pstate.Pools[poolB] = 0

	utxo := state.UTxO{
		txs.TxIn{TxID: txs.TxID{0x01}}: {Address: txs.NewTxinAddress(txs.HashKey{}, keyA), Amount: 10},
		txs.TxIn{TxID: txs.TxID{0x02}}: {Address: txs.NewTxinAddress(txs.HashKey{}, keyB), Amount: 20},
	}

	require.Equal(chain.Coin(10), PoolStake(poolA, utxo, dstate, pstate))
	require.Equal(chain.Coin(20), PoolStake(poolB, utxo, dstate, pstate))
}

func TestSnapshot(t *testing.T) {
	require := require.New(t)

	pool := txs.HashKey{0x10}
	stakeKey := txs.HashKey{0x01}

	dstate := state.NewDState()
	dstate.StakeKeys[stakeKey] = 0
	dstate.Delegations[stakeKey] = pool

	pstate := state.NewPState()
	pstate.Pools[pool] = 0
	pstate.Params[pool] = txs.PoolParams{PoolKey: pool}

	utxo := state.UTxO{
		txs.TxIn{TxID: txs.TxID{0x01}}: {Address: txs.NewTxinAddress(txs.HashKey{}, stakeKey), Amount: 50},
	}

	snap := Snapshot(utxo, dstate, pstate, chain.Coin(7))
	require.Equal(chain.Coin(7), snap.Fees)
	require.Equal(chain.Coin(50), snap.Stake[stakeKey])
	require.Equal(pool, snap.Delegations[stakeKey])
	require.Contains(snap.PoolParams, pool)
}
