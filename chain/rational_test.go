// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUnitInterval(t *testing.T) {
	require := require.New(t)

	u, err := NewUnitInterval(1, 2)
	require.NoError(err)
	require.Equal(0, u.Rat().Cmp(big.NewRat(1, 2)))

	_, err = NewUnitInterval(3, 2)
	require.ErrorIs(err, ErrOutOfUnitRange)

	_, err = NewUnitInterval(-1, 2)
	require.ErrorIs(err, ErrOutOfUnitRange)

	// Boundary values are inclusive.
	_, err = NewUnitInterval(0, 1)
	require.NoError(err)
	_, err = NewUnitInterval(1, 1)
	require.NoError(err)
}

func TestNewNonNegativeInterval(t *testing.T) {
	require := require.New(t)

	n, err := NewNonNegativeInterval(3, 1)
	require.NoError(err)
	require.Equal(0, n.Rat().Cmp(big.NewRat(3, 1)))

	_, err = NewNonNegativeInterval(-1, 1)
	require.ErrorIs(err, ErrNegative)
}

func TestFloorCoin(t *testing.T) {
	require := require.New(t)

	require.Equal(Coin(3), FloorCoin(big.NewRat(7, 2)))
	require.Equal(Coin(3), FloorCoin(big.NewRat(10, 3)))
	require.Equal(Coin(0), FloorCoin(big.NewRat(0, 1)))
	require.Equal(Coin(5), FloorCoin(big.NewRat(5, 1)))
}
