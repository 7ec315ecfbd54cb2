// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainconfig

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/graphicscoin/gfxd/domain/merkle"
	"github.com/graphicscoin/gfxd/wire"
	"github.com/pkg/errors"
)

// genesisTimestamp is embedded as data in the genesis coinbase script. It is
// never executed.
const genesisTimestamp = "Audaces Fortuna Juvat - 2018-04-23"

// genesisTime is both the coinbase time and the block header time of the
// genesis block on every network.
const genesisTime = 1524516965

// genesisScriptNonce is the small integer pushed after OP_0 in the genesis
// coinbase script.
const genesisScriptNonce = 42

const (
	genesisVersion   = 1
	genesisTxVersion = 1
)

// genesisCoinbaseScript returns OP_0 <42> <genesisTimestamp>.
func genesisCoinbaseScript(timestamp string) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(0).
		AddInt64(genesisScriptNonce).
		AddData([]byte(timestamp)).
		Script()
}

// newGenesisCoinbaseTx builds the single transaction of a genesis block: one
// input spending the null outpoint and one empty output.
func newGenesisCoinbaseTx(timestamp string, txTime uint32) (*wire.MsgTx, error) {
	script, err := genesisCoinbaseScript(timestamp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build the genesis coinbase script")
	}

	tx := wire.NewMsgTx(genesisTxVersion, txTime)
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	tx.AddTxIn(wire.NewTxIn(prevOut, script))
	tx.AddTxOut(wire.NewEmptyTxOut())
	return tx, nil
}

// newGenesisBlock wraps coinbase into a block whose header commits to it.
func newGenesisBlock(coinbase *wire.MsgTx, timestamp time.Time, bits, nonce uint32) *wire.MsgBlock {
	merkleRoot := merkle.CalcMerkleRoot([]*wire.MsgTx{coinbase})
	header := wire.BlockHeader{
		Version:    genesisVersion,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: merkleRoot,
		Timestamp:  timestamp,
		Bits:       bits,
		Nonce:      nonce,
	}
	block := wire.NewMsgBlock(&header)
	block.AddTransaction(coinbase)
	return block
}

// NewGenesisBlock builds the genesis block with the compiled-in coinbase
// script, with both the coinbase and the header stamped with timestamp. The
// merkle root follows the timestamp. It is used to search for genesis nonces
// at times other than the compiled-in one.
func NewGenesisBlock(timestamp time.Time, bits, nonce uint32) (*wire.MsgBlock, error) {
	coinbase, err := newGenesisCoinbaseTx(genesisTimestamp, uint32(timestamp.Unix()))
	if err != nil {
		return nil, err
	}
	return newGenesisBlock(coinbase, timestamp, bits, nonce), nil
}

// verifyGenesis recomputes the hash and merkle root of params.GenesisBlock and
// compares them against the expected values. On success both are recorded on
// params.
func verifyGenesis(params *Params, expectedHash, expectedMerkleRoot *chainhash.Hash) error {
	merkleRoot := merkle.CalcMerkleRoot(params.GenesisBlock.Transactions)
	if merkleRoot != params.GenesisBlock.Header.MerkleRoot {
		return &GenesisMismatchError{
			Network:  params.ID,
			Field:    "header merkle root",
			Computed: merkleRoot,
			Expected: params.GenesisBlock.Header.MerkleRoot,
		}
	}
	if !merkleRoot.IsEqual(expectedMerkleRoot) {
		return &GenesisMismatchError{
			Network:  params.ID,
			Field:    "merkle root",
			Computed: merkleRoot,
			Expected: *expectedMerkleRoot,
		}
	}

	hash := params.GenesisBlock.BlockHash()
	if !hash.IsEqual(expectedHash) {
		return &GenesisMismatchError{
			Network:  params.ID,
			Field:    "hash",
			Computed: hash,
			Expected: *expectedHash,
		}
	}

	params.GenesisHash = &hash
	params.GenesisMerkleRoot = &merkleRoot
	return nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}
