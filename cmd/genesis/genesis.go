// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/graphicscoin/gfxd/domain/chainconfig"
	"github.com/graphicscoin/gfxd/infrastructure/logger"
	"github.com/graphicscoin/gfxd/wire"
	"github.com/pkg/errors"
)

var log = logger.RegisterSubSystem("GNSS")

// solveGenesisBlock searches for a nonce, starting at the header nonce, that
// makes the header hash to a value no greater than the target encoded in the
// header bits. When the nonce range is exhausted the block is rebuilt one
// second later, which moves the coinbase time and the merkle root along with
// the header time, and the search restarts from zero. maxTries bounds the
// number of hashes tried; zero means unbounded.
func solveGenesisBlock(block *wire.MsgBlock, maxTries uint64) (bool, error) {
	defer logger.LogAndMeasureExecutionTime(log, "solveGenesisBlock")()

	header := &block.Header
	targetDifficulty := blockchain.CompactToBig(header.Bits)
	for tries := uint64(0); maxTries == 0 || tries < maxTries; tries++ {
		hash := header.BlockHash()
		if blockchain.HashToBig(&hash).Cmp(targetDifficulty) <= 0 {
			return true, nil
		}

		if header.Nonce == math.MaxUint32 {
			next, err := chainconfig.NewGenesisBlock(header.Timestamp.Add(time.Second), header.Bits, 0)
			if err != nil {
				return false, err
			}
			*block = *next
			continue
		}
		header.Nonce++
	}
	return false, nil
}

// newCandidate builds the block the search starts from: the genesis block of
// params at the configured time, bits and start nonce.
func newCandidate(cfg *configFlags, params *chainconfig.Params) (*wire.MsgBlock, error) {
	timestamp := params.GenesisBlock.Header.Timestamp
	if cfg.Time != 0 {
		timestamp = time.Unix(cfg.Time, 0)
	}
	bits := params.PowLimitBits
	if cfg.Bits != 0 {
		bits = cfg.Bits
	}
	return chainconfig.NewGenesisBlock(timestamp, bits, cfg.StartNonce)
}

func run(args []string, w io.Writer, maxTries uint64) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}
	params := cfg.NetParams()

	block, err := newCandidate(cfg, params)
	if err != nil {
		return err
	}
	header := &block.Header

	log.Infof("Solving the %s genesis block, merkle root %s, bits %08x",
		params.Name, header.MerkleRoot, header.Bits)
	solved, err := solveGenesisBlock(block, maxTries)
	if err != nil {
		return err
	}
	if !solved {
		return errors.Errorf("no solution found in %d tries", maxTries)
	}

	hash := header.BlockHash()
	fmt.Fprintf(w, "\n\nGenesis block of %s is solved:\n", params.Name)
	fmt.Fprintf(w, "timestamp: %d\n", header.Timestamp.Unix())
	fmt.Fprintf(w, "coinbase time: %d\n", block.Transactions[0].Time)
	fmt.Fprintf(w, "bits (difficulty): 0x%08x\n", header.Bits)
	fmt.Fprintf(w, "nonce: %d\n", header.Nonce)
	fmt.Fprintf(w, "merkle root: %s\n", header.MerkleRoot)
	fmt.Fprintf(w, "hash: %s\n\n\n", hash)

	if hash.IsEqual(params.GenesisHash) {
		log.Infof("The solution matches the compiled-in %s genesis block", params.Name)
	}
	return nil
}

func main() {
	if err := logger.InitLog("", ""); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.BackendLog.Close()
	logger.SetLogLevels("debug")

	if err := run(os.Args[1:], os.Stdout, 0); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		logger.BackendLog.Close()
		os.Exit(1)
	}
}
