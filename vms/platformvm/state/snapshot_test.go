// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

func TestSnapshotPoolStakeAndTotal(t *testing.T) {
	require := require.New(t)

	snap := NewSnapshot()
	hPool := txs.HashKey{0x01}
	keyA := txs.HashKey{0x02}
	keyB := txs.HashKey{0x03}
	snap.Stake[keyA] = 10
	snap.Stake[keyB] = 20
	snap.Delegations[keyA] = hPool
	snap.Delegations[keyB] = hPool

	require.Equal(chain.Coin(30), snap.PoolStake(hPool))
	require.Equal(chain.Coin(30), snap.TotalStake())
}

func TestSnapShotsRotate(t *testing.T) {
	require := require.New(t)

	mark := NewSnapshot()
	mark.Fees = 1
	set := NewSnapshot()
	set.Fees = 2
	goSnap := NewSnapshot()
	goSnap.Fees = 3

	ss := SnapShots{Mark: mark, Set: set, Go: goSnap}
	newMark := NewSnapshot()
	newMark.Fees = 9

	rotated := ss.Rotate(newMark)
	require.Equal(chain.Coin(9), rotated.Mark.Fees)
	require.Equal(chain.Coin(1), rotated.Set.Fees)
	require.Equal(chain.Coin(2), rotated.Go.Fees)
}

func TestSnapshotClone(t *testing.T) {
	require := require.New(t)

	snap := NewSnapshot()
	key := txs.HashKey{0x01}
	snap.Stake[key] = 5

	clone := snap.Clone()
	clone.Stake[txs.HashKey{0x02}] = 7

	require.Len(snap.Stake, 1)
	require.Len(clone.Stake, 2)
}
