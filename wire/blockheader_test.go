// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"reflect"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
)

const encodedGenesisLikeHeader = "01000000" +
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"7255ac6beadc6dcef1c9e0d2bef800dc167482971639b41bcd86e62e1a8b86dd" +
	"6548de5a" + "ffff001f" + "b3d10000"

func genesisLikeHeader() *BlockHeader {
	return &BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: timestampedCoinbase.TxHash(),
		Timestamp:  time.Unix(1524516965, 0),
		Bits:       0x1f00ffff,
		Nonce:      53683,
	}
}

// TestBlockHeaderSerialize tests BlockHeader serialize and deserialize.
func TestBlockHeaderSerialize(t *testing.T) {
	want, err := hex.DecodeString(encodedGenesisLikeHeader)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}

	header := genesisLikeHeader()
	var buf bytes.Buffer
	err = header.Serialize(&buf)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("Serialize: wrong bytes - got %x, want %x", buf.Bytes(), want)
	}
	if len(want) != BlockHeaderPayload {
		t.Errorf("BlockHeaderPayload: got %d, want %d", BlockHeaderPayload, len(want))
	}

	var decoded BlockHeader
	err = decoded.Deserialize(bytes.NewReader(want))
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !reflect.DeepEqual(&decoded, header) {
		t.Errorf("Deserialize: wrong header - got %v, want %v",
			spew.Sdump(&decoded), spew.Sdump(header))
	}
}

// TestBlockHash ensures the header hash is the double sha256 of the
// serialized header.
func TestBlockHash(t *testing.T) {
	want, err := chainhash.NewHashFromStr(
		"ee1a738f0e63b943608f086e874a523ef087c96292c0ac854d982f848e0ef228")
	if err != nil {
		t.Fatalf("NewHashFromStr: %v", err)
	}

	block := NewMsgBlock(genesisLikeHeader())
	block.AddTransaction(&timestampedCoinbase)
	blockHash := block.BlockHash()
	if !blockHash.IsEqual(want) {
		t.Errorf("BlockHash: wrong hash - got %v, want %v", blockHash, want)
	}

	var buf bytes.Buffer
	err = block.Serialize(&buf)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if buf.Len() != block.SerializeSize() {
		t.Errorf("SerializeSize: got %d, want %d", block.SerializeSize(), buf.Len())
	}

	var decoded MsgBlock
	err = decoded.Deserialize(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !reflect.DeepEqual(&decoded, block) {
		t.Errorf("Deserialize: wrong block - got %v, want %v",
			spew.Sdump(&decoded), spew.Sdump(block))
	}
}
