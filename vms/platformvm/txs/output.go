// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import "github.com/blinklabs-io/ledger/chain"

// TxOut is a (Address, Coin) pair (spec §3).
type TxOut struct {
	Address Address    `serialize:"true" json:"address"`
	Amount  chain.Coin `serialize:"true" json:"amount"`
}

// TxIn is a (TxId, Ix) pair addressing one output of a previously-applied
// transaction (spec §3).
type TxIn struct {
	TxID TxID   `serialize:"true" json:"txID"`
	Ix   uint32 `serialize:"true" json:"outputIndex"`
}
