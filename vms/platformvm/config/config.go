// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the protocol parameters (spec §3 component C5): fee
// coefficients, deposits, the refund decay curve, and the reward-engine
// shares. Parsing these from a genesis file is an external collaborator's
// job (spec §1); this package only defines the struct the core consumes.
package config

import "github.com/blinklabs-io/ledger/chain"

// Config is the protocol parameter set threaded through every validator and
// state-transition computation.
type Config struct {
	// FeeCoefficientA is the per-byte fee coefficient ("a" in
	// minFee = a*size(tx) + b).
	FeeCoefficientA uint64 `json:"feeCoefficientA"`
	// FeeCoefficientB is the constant fee coefficient ("b").
	FeeCoefficientB uint64 `json:"feeCoefficientB"`

	// KeyDeposit is the deposit charged by a RegKey certificate.
	KeyDeposit chain.Coin `json:"keyDeposit"`
	// PoolDeposit is the deposit charged by a RegPool certificate the first
	// time a given pool hash is registered.
	PoolDeposit chain.Coin `json:"poolDeposit"`

	// MinRefund is the floor fraction of a deposit always refunded,
	// regardless of age (spec §4.1 refund curve, "m").
	MinRefund chain.UnitInterval `json:"minRefund"`
	// DecayRate is the per-slot decay rate of the refundable fraction
	// (spec §4.1 refund curve, "λ").
	DecayRate chain.UnitInterval `json:"decayRate"`

	// ActiveSlotCoeff is the expected fraction of slots in which a block is
	// produced (spec §4.5 step 1).
	ActiveSlotCoeff chain.UnitInterval `json:"activeSlotCoeff"`
	// MonetaryExpansionRate is "ρ", the fraction of reserves drawn into the
	// reward pot per fully-active epoch (spec §4.5 step 2).
	MonetaryExpansionRate chain.UnitInterval `json:"monetaryExpansionRate"`
	// TreasuryCut is "τ", the fraction of the total pot assigned to the
	// treasury before per-pool distribution (spec §4.5 step 4).
	TreasuryCut chain.UnitInterval `json:"treasuryCut"`
	// PoolSaturationFactor is "a0", the non-negative interval controlling
	// how sharply rewards diminish past the saturation point (spec §4.5
	// step 5, "σₐ").
	PoolSaturationFactor chain.NonNegativeInterval `json:"poolSaturationFactor"`
	// SaturationThreshold is the fraction of total stake a single pool can
	// absorb before its effective stake caps out (1/k, where k is the
	// target number of pools).
	SaturationThreshold chain.UnitInterval `json:"saturationThreshold"`
}
