// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"go.uber.org/zap"

	"github.com/blinklabs-io/ledger/ids"
	"github.com/blinklabs-io/ledger/vms/platformvm/config"
	"github.com/blinklabs-io/ledger/vms/platformvm/reward"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

// Hasher is the collision-resistant hash collaborator of spec §6: hash:
// bytes → HashKey. The core never picks its own hash function.
type Hasher interface {
	Hash(data []byte) ids.ID
}

// Verifier is the signature-verification collaborator of spec §6:
// verify(vkey, message, sig) → bool.
type Verifier interface {
	Verify(vkey txs.VKey, message []byte, sig txs.Signature) bool
}

// Encoder is the deterministic serialization collaborator of spec §6: a
// CBOR (or equivalent) encode(TxBody) → bytes whose length is size(tx) in
// the fee formula.
type Encoder interface {
	EncodeTxBody(body *txs.TxBody) ([]byte, error)
}

// Backend bundles the protocol configuration and external collaborators
// every validator and executor method needs, mirroring the teacher's
// txs/executor/backend.go Backend struct.
type Backend struct {
	Config   *config.Config
	Hasher   Hasher
	Verifier Verifier
	Encoder  Encoder
	Rewards  reward.Calculator

	// Log is used only for diagnostic/assert-style logging (spec §4.2's
	// debug-assertion note); it never influences control flow. A nil Log is
	// replaced by zap.NewNop() at construction in NewBackend.
	Log *zap.Logger
}

// NewBackend returns a Backend with a non-nil Log, defaulting to a no-op
// logger when log is nil.
func NewBackend(cfg *config.Config, hasher Hasher, verifier Verifier, encoder Encoder, rewards reward.Calculator, log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{
		Config:   cfg,
		Hasher:   hasher,
		Verifier: verifier,
		Encoder:  encoder,
		Rewards:  rewards,
		Log:      log,
	}
}
