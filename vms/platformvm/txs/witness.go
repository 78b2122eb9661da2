// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

// VKey is an opaque verification key. Cryptographic interpretation (hashing
// it to a HashKey, or verifying a signature against it) is delegated to the
// external collaborators of spec §6; this module treats it as opaque bytes.
type VKey []byte

// Signature is an opaque signature over a transaction body hash.
type Signature []byte

// Witness proves that the holder of VKey authorized this transaction.
type Witness struct {
	VKey      VKey      `serialize:"true" json:"vkey"`
	Signature Signature `serialize:"true" json:"signature"`
}

// Tx pairs an unsigned transaction body with its set of witnesses (spec
// §3).
type Tx struct {
	Body     *TxBody   `serialize:"true" json:"body"`
	Witnesses []Witness `serialize:"true" json:"witnesses"`
}
