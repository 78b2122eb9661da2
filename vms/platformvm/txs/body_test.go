// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInputSet(t *testing.T) {
	require := require.New(t)

	in1 := TxIn{TxID: TxID{0x01}, Ix: 0}
	in2 := TxIn{TxID: TxID{0x02}, Ix: 1}
	body := &TxBody{Inputs: []TxIn{in1, in2}}

	set := body.InputSet()
	require.Len(set, 2)
	_, ok := set[in1]
	require.True(ok)
	_, ok = set[in2]
	require.True(ok)

	_, ok = set[TxIn{TxID: TxID{0x03}}]
	require.False(ok)
}

func TestInputSetEmpty(t *testing.T) {
	require := require.New(t)

	body := &TxBody{}
	require.Empty(body.InputSet())
}
