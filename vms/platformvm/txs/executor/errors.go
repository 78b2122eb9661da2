// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package executor implements the nine UTxO-rule validators (spec §4.1),
// the transaction state transition (spec §4.2), certificate application
// (spec §4.3), and the epoch-boundary pool-retirement sweep.
package executor

import (
	"fmt"

	"github.com/blinklabs-io/ledger/chain"
)

// The wire error taxonomy of spec §6: a closed set of exported struct
// types, each implementing error, with a stable name and field order.
// Validators never short-circuit (spec §4.1, §7): a single ApplyTx call
// can return any non-empty combination of these, collected into an Errors
// slice (the "error-accumulating monoid" of spec §4.1).

// BadInputs reports that one or more of the transaction's inputs is not
// present in the UTxO.
type BadInputs struct{}

func (BadInputs) Error() string { return "bad inputs: not all inputs are present in the utxo" }

// Expired reports that the transaction's TTL has already passed.
type Expired struct {
	TTL  chain.Slot
	Slot chain.Slot
}

func (e Expired) Error() string {
	return fmt.Sprintf("expired: ttl %d is before current slot %d", e.TTL, e.Slot)
}

// RetirementCertExpired reports that a RetirePool certificate named a
// retirement epoch that has already passed.
type RetirementCertExpired struct {
	Requested chain.Epoch
	Current   chain.Epoch
}

func (e RetirementCertExpired) Error() string {
	return fmt.Sprintf("retirement cert expired: requested epoch %d, current epoch %d", e.Requested, e.Current)
}

// FeeTooSmall reports that the transaction's fee is below the protocol
// minimum.
type FeeTooSmall struct {
	Needed chain.Coin
	Given  chain.Coin
}

func (e FeeTooSmall) Error() string {
	return fmt.Sprintf("fee too small: needed %d, given %d", e.Needed, e.Given)
}

// ValueNotConserved reports that consumed and produced value differ.
type ValueNotConserved struct {
	Consumed chain.Coin
	Produced chain.Coin
}

func (e ValueNotConserved) Error() string {
	return fmt.Sprintf("value not conserved: consumed %d, produced %d", e.Consumed, e.Produced)
}

// IncorrectRewards reports a withdrawal that does not exactly match the
// target reward account's current balance.
type IncorrectRewards struct{}

func (IncorrectRewards) Error() string { return "incorrect rewards: withdrawal does not match reward account balance" }

// InvalidWitness reports that a witness failed signature verification.
type InvalidWitness struct{}

func (InvalidWitness) Error() string { return "invalid witness: signature does not verify" }

// MissingWitnesses reports that the signing set is missing a required
// witness.
type MissingWitnesses struct{}

func (MissingWitnesses) Error() string { return "missing witnesses: not all required signers are present" }

// UnneededWitnesses reports that the signing set contains a witness not
// required by the transaction.
type UnneededWitnesses struct{}

func (UnneededWitnesses) Error() string { return "unneeded witnesses: signing set is not a subset of required signers" }

// InputSetEmpty reports a transaction with no inputs.
type InputSetEmpty struct{}

func (InputSetEmpty) Error() string { return "input set empty" }

// StakeKeyAlreadyRegistered reports a RegKey certificate targeting an
// already-registered stake key.
type StakeKeyAlreadyRegistered struct{}

func (StakeKeyAlreadyRegistered) Error() string { return "stake key already registered" }

// StakeKeyNotRegistered reports a DeRegKey certificate targeting a stake key
// that is not registered.
type StakeKeyNotRegistered struct{}

func (StakeKeyNotRegistered) Error() string { return "stake key not registered" }

// StakeDelegationImpossible reports a Delegate certificate whose source
// stake key is not registered.
type StakeDelegationImpossible struct{}

func (StakeDelegationImpossible) Error() string { return "stake delegation impossible: source stake key not registered" }

// StakePoolNotRegisteredOnKey reports a RetirePool certificate targeting an
// unregistered pool.
type StakePoolNotRegisteredOnKey struct{}

func (StakePoolNotRegisteredOnKey) Error() string { return "stake pool not registered on key" }

// Errors accumulates every independent validation failure of one ApplyTx
// call (spec §4.1, §7). A nil or empty Errors means the transaction was
// valid.
type Errors []error

func (e Errors) Error() string {
	if len(e) == 0 {
		return "no errors"
	}
	msg := e[0].Error()
	for _, err := range e[1:] {
		msg += "; " + err.Error()
	}
	return msg
}

// Append returns a new Errors with err appended, implementing the
// "Invalid a ⊕ Invalid b = Invalid (a ++ b)" half of spec §4.1's monoid. A
// nil err is a no-op, implementing "Valid ⊕ x = x".
func (e Errors) Append(err error) Errors {
	if err == nil {
		return e
	}
	return append(e, err)
}

// Combine concatenates e and other, the Errors-Errors case of the monoid.
func (e Errors) Combine(other Errors) Errors {
	if len(other) == 0 {
		return e
	}
	return append(e, other...)
}
