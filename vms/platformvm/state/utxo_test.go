// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

func mkOut(amount chain.Coin) txs.TxOut {
	return txs.TxOut{Amount: amount}
}

func TestUTxORestrict(t *testing.T) {
	require := require.New(t)

	in1 := txs.TxIn{TxID: txs.TxID{0x01}, Ix: 0}
	in2 := txs.TxIn{TxID: txs.TxID{0x02}, Ix: 0}
	u := UTxO{in1: mkOut(10), in2: mkOut(20)}

	restricted := u.Restrict(map[txs.TxIn]struct{}{in1: {}})
	require.Len(restricted, 1)
	_, ok := restricted[in1]
	require.False(ok)
	_, ok = restricted[in2]
	require.True(ok)
}

func TestUTxOUnion(t *testing.T) {
	require := require.New(t)

	in1 := txs.TxIn{TxID: txs.TxID{0x01}, Ix: 0}
	in2 := txs.TxIn{TxID: txs.TxID{0x02}, Ix: 0}
	u := UTxO{in1: mkOut(10)}
	additions := UTxO{in2: mkOut(20)}

	merged := u.Union(additions)
	require.Len(merged, 2)
	require.Equal(chain.Coin(10), merged[in1].Amount)
	require.Equal(chain.Coin(20), merged[in2].Amount)
}

func TestUTxOClone(t *testing.T) {
	require := require.New(t)

	in1 := txs.TxIn{TxID: txs.TxID{0x01}, Ix: 0}
	u := UTxO{in1: mkOut(10)}
	clone := u.Clone()
	clone[txs.TxIn{TxID: txs.TxID{0x02}}] = mkOut(5)

	require.Len(u, 1)
	require.Len(clone, 2)
}

func TestUTxOSortedKeys(t *testing.T) {
	require := require.New(t)

	inA := txs.TxIn{TxID: txs.TxID{0x02}, Ix: 0}
	inB := txs.TxIn{TxID: txs.TxID{0x01}, Ix: 1}
	inC := txs.TxIn{TxID: txs.TxID{0x01}, Ix: 0}
	u := UTxO{inA: mkOut(1), inB: mkOut(1), inC: mkOut(1)}

	keys := u.SortedKeys()
	require.Equal([]txs.TxIn{inC, inB, inA}, keys)
}

func TestOutputsAt(t *testing.T) {
	require := require.New(t)

	txID := txs.TxID{0xaa}
	outputs := []txs.TxOut{mkOut(10), mkOut(20)}
	u := OutputsAt(txID, outputs)

	require.Len(u, 2)
	require.Equal(chain.Coin(10), u[txs.TxIn{TxID: txID, Ix: 0}].Amount)
	require.Equal(chain.Coin(20), u[txs.TxIn{TxID: txID, Ix: 1}].Amount)
}

func TestUTxOStateClone(t *testing.T) {
	require := require.New(t)

	in1 := txs.TxIn{TxID: txs.TxID{0x01}}
	s := UTxOState{UTxO: UTxO{in1: mkOut(10)}, Deposited: 5, Fees: 3}
	clone := s.Clone()
	clone.UTxO[txs.TxIn{TxID: txs.TxID{0x02}}] = mkOut(1)
	clone.Deposited = 99

	require.Len(s.UTxO, 1)
	require.Equal(chain.Coin(5), s.Deposited)
	require.Len(clone.UTxO, 2)
	require.Equal(chain.Coin(99), clone.Deposited)
}
