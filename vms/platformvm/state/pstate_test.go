// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

func TestPStateIsRegistered(t *testing.T) {
	require := require.New(t)

	p := NewPState()
	h := txs.HashKey{0x01}
	require.False(p.IsRegistered(h))

	p.Pools[h] = chain.Slot(1)
	require.True(p.IsRegistered(h))
}

func TestPStateRetirePoolAndSweep(t *testing.T) {
	require := require.New(t)

	p := NewPState()
	h := txs.HashKey{0x01}
	p.Pools[h] = 1
	p.Params[h] = txs.PoolParams{PoolKey: h}

	p.RetirePool(h, chain.Epoch(5))
	require.Equal(chain.Epoch(5), p.Retiring[h])

	// Sweeping a different epoch must not retire it yet.
	retired := p.Sweep(chain.Epoch(4))
	require.Empty(retired)
	require.True(p.IsRegistered(h))

	retired = p.Sweep(chain.Epoch(5))
	require.Equal([]txs.HashKey{h}, retired)
	require.False(p.IsRegistered(h))
	_, hasParams := p.Params[h]
	require.False(hasParams)
	_, stillRetiring := p.Retiring[h]
	require.False(stillRetiring)
}

func TestPStateSortedPoolKeys(t *testing.T) {
	require := require.New(t)

	p := NewPState()
	hA := txs.HashKey{0x02}
	hB := txs.HashKey{0x01}
	p.Pools[hA] = 1
	p.Pools[hB] = 1

	require.Equal([]txs.HashKey{hB, hA}, p.SortedPoolKeys())
}

func TestPStateClone(t *testing.T) {
	require := require.New(t)

	p := NewPState()
	h := txs.HashKey{0x01}
	p.Pools[h] = 1

	clone := p.Clone()
	clone.Pools[txs.HashKey{0x02}] = 2

	require.Len(p.Pools, 1)
	require.Len(clone.Pools, 2)
}
