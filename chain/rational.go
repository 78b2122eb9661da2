// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"math/big"
)

var (
	// ErrOutOfUnitRange is returned when constructing a UnitInterval from a
	// rational outside [0,1].
	ErrOutOfUnitRange = errors.New("rational is not within [0,1]")
	// ErrNegative is returned when constructing a NonNegativeInterval from a
	// rational below zero.
	ErrNegative = errors.New("rational is negative")
)

// UnitInterval is a rational constrained to [0,1] by its smart constructor
// (spec §3). It is used for the minimum-refund fraction, the decay rate,
// the treasury cut, the monetary-expansion rate, and pool margins.
type UnitInterval struct {
	r *big.Rat
}

// NewUnitInterval constructs a UnitInterval from num/den, rejecting values
// outside [0,1].
func NewUnitInterval(num, den int64) (UnitInterval, error) {
	r := big.NewRat(num, den)
	if r.Sign() < 0 || r.Cmp(big.NewRat(1, 1)) > 0 {
		return UnitInterval{}, ErrOutOfUnitRange
	}
	return UnitInterval{r: r}, nil
}

// Rat returns the underlying exact rational. Callers must not mutate it.
func (u UnitInterval) Rat() *big.Rat {
	if u.r == nil {
		return new(big.Rat)
	}
	return u.r
}

// NonNegativeInterval is a rational constrained to [0,∞) (spec §3). It is
// used for the stake-pool saturation parameter a0 and other unbounded
// non-negative curve coefficients.
type NonNegativeInterval struct {
	r *big.Rat
}

// NewNonNegativeInterval constructs a NonNegativeInterval from num/den,
// rejecting negative values.
func NewNonNegativeInterval(num, den int64) (NonNegativeInterval, error) {
	r := big.NewRat(num, den)
	if r.Sign() < 0 {
		return NonNegativeInterval{}, ErrNegative
	}
	return NonNegativeInterval{r: r}, nil
}

// Rat returns the underlying exact rational. Callers must not mutate it.
func (n NonNegativeInterval) Rat() *big.Rat {
	if n.r == nil {
		return new(big.Rat)
	}
	return n.r
}

// FloorCoin floors a rational amount of Coin to an integer Coin, per spec
// §4.1's refund-curve rounding rule and §4.5's reward-curve rounding rule.
func FloorCoin(r *big.Rat) Coin {
	q := new(big.Int).Quo(r.Num(), r.Denom())
	// big.Rat is always stored in lowest terms with a positive Denom, and
	// Quo truncates toward zero; for a non-negative r that is floor.
	if r.Sign() < 0 && new(big.Int).Mul(q, r.Denom()).Cmp(r.Num()) != 0 {
		q.Sub(q, big.NewInt(1))
	}
	return Coin(q.Uint64())
}
