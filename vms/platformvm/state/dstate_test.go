// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

func TestDStateIsRegistered(t *testing.T) {
	require := require.New(t)

	d := NewDState()
	h := txs.HashKey{0x01}
	require.False(d.IsRegistered(h))

	d.StakeKeys[h] = chain.Slot(1)
	require.True(d.IsRegistered(h))
}

func TestDStateSortedStakeKeys(t *testing.T) {
	require := require.New(t)

	d := NewDState()
	hA := txs.HashKey{0x02}
	hB := txs.HashKey{0x01}
	d.StakeKeys[hA] = 1
	d.StakeKeys[hB] = 1

	require.Equal([]txs.HashKey{hB, hA}, d.SortedStakeKeys())
}

func TestDStateClone(t *testing.T) {
	require := require.New(t)

	d := NewDState()
	h := txs.HashKey{0x01}
	d.StakeKeys[h] = 1

	clone := d.Clone()
	clone.StakeKeys[txs.HashKey{0x02}] = 2

	require.Len(d.StakeKeys, 1)
	require.Len(clone.StakeKeys, 2)
}

func TestDeletePointersTo(t *testing.T) {
	require := require.New(t)

	d := NewDState()
	h := txs.HashKey{0x01}
	other := txs.HashKey{0x02}
	p1 := chain.Ptr{Slot: 1}
	p2 := chain.Ptr{Slot: 2}
	d.Pointers[p1] = h
	d.Pointers[p2] = other

	d.DeletePointersTo(h)

	require.Len(d.Pointers, 1)
	_, ok := d.Pointers[p2]
	require.True(ok)
}
