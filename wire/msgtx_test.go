// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
)

// timestampedCoinbase is a coinbase transaction carrying a timestamp string
// in its signature script and a single empty output.
var timestampedCoinbase = MsgTx{
	Version: 1,
	Time:    1524516965,
	TxIn: []*TxIn{
		{
			PreviousOutPoint: OutPoint{
				Hash:  chainhash.Hash{},
				Index: 0xffffffff,
			},
			SignatureScript: []byte{
				0x00, 0x01, 0x2a, 0x22, 0x41, 0x75, 0x64, 0x61, /* |...."Auda| */
				0x63, 0x65, 0x73, 0x20, 0x46, 0x6f, 0x72, 0x74, /* |ces Fort| */
				0x75, 0x6e, 0x61, 0x20, 0x4a, 0x75, 0x76, 0x61, /* |una Juva| */
				0x74, 0x20, 0x2d, 0x20, 0x32, 0x30, 0x31, 0x38, /* |t - 2018| */
				0x2d, 0x30, 0x34, 0x2d, 0x32, 0x33, /* |-04-23| */
			},
			Sequence: 0xffffffff,
		},
	},
	TxOut: []*TxOut{
		{
			Value:    0,
			PkScript: []byte{},
		},
	},
	LockTime: 0,
}

// timestampedCoinbaseEncoded is the wire encoded bytes for
// timestampedCoinbase.
var timestampedCoinbaseEncoded = []byte{
	0x01, 0x00, 0x00, 0x00, // Version
	0x65, 0x48, 0xde, 0x5a, // Time
	0x01, // Varint for number of input transactions
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Previous output hash
	0xff, 0xff, 0xff, 0xff, // Previous output index
	0x26, // Varint for length of signature script
	0x00, 0x01, 0x2a, 0x22, 0x41, 0x75, 0x64, 0x61,
	0x63, 0x65, 0x73, 0x20, 0x46, 0x6f, 0x72, 0x74,
	0x75, 0x6e, 0x61, 0x20, 0x4a, 0x75, 0x76, 0x61,
	0x74, 0x20, 0x2d, 0x20, 0x32, 0x30, 0x31, 0x38,
	0x2d, 0x30, 0x34, 0x2d, 0x32, 0x33, // Signature script
	0xff, 0xff, 0xff, 0xff, // Sequence
	0x01,                                           // Varint for number of output transactions
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // Transaction amount
	0x00,                   // Varint for length of pk script
	0x00, 0x00, 0x00, 0x00, // Lock time
}

// TestTxSerialize tests MsgTx serialize and deserialize.
func TestTxSerialize(t *testing.T) {
	var buf bytes.Buffer
	err := timestampedCoinbase.Serialize(&buf)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), timestampedCoinbaseEncoded) {
		t.Fatalf("Serialize: wrong bytes - got %v, want %v",
			spew.Sdump(buf.Bytes()), spew.Sdump(timestampedCoinbaseEncoded))
	}
	if size := timestampedCoinbase.SerializeSize(); size != len(timestampedCoinbaseEncoded) {
		t.Errorf("SerializeSize: wrong size - got %d, want %d", size,
			len(timestampedCoinbaseEncoded))
	}

	var tx MsgTx
	err = tx.Deserialize(bytes.NewReader(timestampedCoinbaseEncoded))
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !reflect.DeepEqual(&tx, &timestampedCoinbase) {
		t.Errorf("Deserialize: wrong transaction - got %v, want %v",
			spew.Sdump(&tx), spew.Sdump(&timestampedCoinbase))
	}
}

// TestTxHash tests the ability to generate the hash of a transaction
// accurately.
func TestTxHash(t *testing.T) {
	wantHash, err := chainhash.NewHashFromStr(
		"dd868b1a2ee686cd1bb4391697827416dc00f8bed2e0c9f1ce6ddcea6bac5572")
	if err != nil {
		t.Fatalf("NewHashFromStr: %v", err)
	}

	txHash := timestampedCoinbase.TxHash()
	if !txHash.IsEqual(wantHash) {
		t.Errorf("TxHash: wrong hash - got %v, want %v", txHash, wantHash)
	}
}

func TestTxCoinbaseAndCopy(t *testing.T) {
	if !timestampedCoinbase.IsCoinBase() {
		t.Errorf("IsCoinBase: expected a null previous outpoint to mark a coinbase")
	}
	if !timestampedCoinbase.TxOut[0].IsEmpty() {
		t.Errorf("IsEmpty: expected the coinbase output to be empty")
	}

	txCopy := timestampedCoinbase.Copy()
	if !reflect.DeepEqual(txCopy, &timestampedCoinbase) {
		t.Fatalf("Copy: copy differs - got %v, want %v",
			spew.Sdump(txCopy), spew.Sdump(&timestampedCoinbase))
	}
	txCopy.TxIn[0].SignatureScript[0] = 0xff
	if timestampedCoinbase.TxIn[0].SignatureScript[0] != 0x00 {
		t.Errorf("Copy: mutating the copy changed the original")
	}

	regular := NewMsgTx(TxVersion, 0)
	regular.AddTxIn(NewTxIn(NewOutPoint(&chainhash.Hash{1}, 0), nil))
	if regular.IsCoinBase() {
		t.Errorf("IsCoinBase: a transaction spending a real outpoint is not a coinbase")
	}
}

// TestTxDeserializeErrors performs negative tests against decoding truncated
// transactions.
func TestTxDeserializeErrors(t *testing.T) {
	for _, max := range []int{0, 4, 8, 9, 41, 46, 84, 89, 98} {
		var tx MsgTx
		err := tx.Deserialize(bytes.NewReader(timestampedCoinbaseEncoded[:max]))
		if err == nil {
			t.Errorf("Deserialize of %d bytes: expected an error", max)
		}
	}
}
