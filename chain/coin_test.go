// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoinAdd(t *testing.T) {
	require := require.New(t)

	require.Equal(Coin(30), Coin(10).Add(Coin(20)))
	require.Equal(Coin(0), Coin(0).Add(Coin(0)))
}

func TestCoinAddOverflowPanics(t *testing.T) {
	require := require.New(t)

	require.Panics(func() {
		Coin(1).Add(Coin(^uint64(0)))
	})
}

func TestCoinSub(t *testing.T) {
	require := require.New(t)

	require.Equal(Coin(5), Coin(10).Sub(Coin(5)))
	require.Equal(Coin(0), Coin(10).Sub(Coin(10)))
}

func TestCoinSubUnderflowPanics(t *testing.T) {
	require := require.New(t)

	require.Panics(func() {
		Coin(5).Sub(Coin(10))
	})
}

func TestCoinSaturatingSub(t *testing.T) {
	require := require.New(t)

	require.Equal(Coin(0), Coin(5).SaturatingSub(Coin(10)))
	require.Equal(Coin(5), Coin(10).SaturatingSub(Coin(5)))
}

func TestDenominationLadder(t *testing.T) {
	require := require.New(t)

	require.Equal(uint64(1_000_000), Ada)
	require.Equal(uint64(1000), MilliAda)
	require.Equal(uint64(1000)*Ada, KiloAda)
	require.Equal(uint64(1000)*KiloAda, MegaAda)
}
