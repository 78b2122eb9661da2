// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	"github.com/blinklabs-io/ledger/ids"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

// fakeHasher and fakeEncoder give the test suite deterministic stand-ins for
// the external Hasher/Encoder collaborators of spec §6, without pulling in a
// real cryptographic signature scheme the core never needs to know about.

type fakeHasher struct{}

func (fakeHasher) Hash(data []byte) ids.ID {
	return sha256.Sum256(data)
}

type fakeEncoder struct{}

// EncodeTxBody serializes body deterministically: every field in a fixed,
// canonical order, with map-typed fields walked via their own sorted-key
// helpers so two logically-equal bodies always encode identically.
func (fakeEncoder) EncodeTxBody(body *txs.TxBody) ([]byte, error) {
	buf := new(bytes.Buffer)
	for _, in := range body.Inputs {
		buf.Write(in.TxID[:])
		_ = binary.Write(buf, binary.BigEndian, in.Ix)
	}
	for _, out := range body.Outputs {
		buf.Write(out.Address.PayKeyHash[:])
		buf.WriteByte(byte(out.Address.Kind))
		buf.Write(out.Address.StakeKeyHash[:])
		_ = binary.Write(buf, binary.BigEndian, out.Address.Pointer.Slot)
		_ = binary.Write(buf, binary.BigEndian, out.Address.Pointer.TxIndex)
		_ = binary.Write(buf, binary.BigEndian, out.Address.Pointer.CertIndex)
		_ = binary.Write(buf, binary.BigEndian, uint64(out.Amount))
	}
	for _, acct := range sortedWithdrawals(body.Withdrawals) {
		buf.Write(acct[:])
		_ = binary.Write(buf, binary.BigEndian, uint64(body.Withdrawals[acct]))
	}
	_ = binary.Write(buf, binary.BigEndian, uint64(body.Fee))
	_ = binary.Write(buf, binary.BigEndian, uint64(body.TTL))
	buf.Write(body.Entropy)
	for _, cert := range body.Certificates {
		encodeCert(buf, cert)
	}
	return buf.Bytes(), nil
}

func encodeCert(buf *bytes.Buffer, cert txs.Certificate) {
	switch c := cert.(type) {
	case *txs.RegKeyCert:
		buf.WriteByte(1)
		buf.Write(c.StakeKey[:])
	case *txs.DeRegKeyCert:
		buf.WriteByte(2)
		buf.Write(c.StakeKey[:])
	case *txs.DelegateCert:
		buf.WriteByte(3)
		buf.Write(c.StakeKey[:])
		buf.Write(c.PoolKey[:])
	case *txs.RegPoolCert:
		buf.WriteByte(4)
		buf.Write(c.Params.PoolKey[:])
		_ = binary.Write(buf, binary.BigEndian, uint64(c.Params.Cost))
	case *txs.RetirePoolCert:
		buf.WriteByte(5)
		buf.Write(c.PoolKey[:])
		_ = binary.Write(buf, binary.BigEndian, uint64(c.Epoch))
	}
}

// fakeVerifier implements a trivial "signature" scheme for tests: a
// signature is valid exactly when it equals hash(vkey || message).
type fakeVerifier struct{}

func (fakeVerifier) Verify(vkey txs.VKey, message []byte, sig txs.Signature) bool {
	want := fakeSign(vkey, message)
	return bytes.Equal(want, sig)
}

func fakeSign(vkey txs.VKey, message []byte) []byte {
	h := sha256.New()
	h.Write(vkey)
	h.Write(message)
	return h.Sum(nil)
}

// witnessFor builds a Witness over bodyHash that verifies under fakeVerifier.
func witnessFor(vkey txs.VKey, bodyHash []byte) txs.Witness {
	return txs.Witness{VKey: vkey, Signature: fakeSign(vkey, bodyHash)}
}
