// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainconfig

import (
	"fmt"
	"math/big"
	"path/filepath"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/graphicscoin/gfxd/util/network"
	"github.com/graphicscoin/gfxd/wire"
)

// NetworkID identifies one of the known networks.
type NetworkID uint8

// Known network identifiers.
const (
	Mainnet NetworkID = iota
	Testnet
)

var networkIDStrings = map[NetworkID]string{
	Mainnet: "mainnet",
	Testnet: "testnet",
}

// String returns the NetworkID in human-readable form.
func (id NetworkID) String() string {
	if s, ok := networkIDStrings[id]; ok {
		return s
	}
	return fmt.Sprintf("Unknown NetworkID (%d)", uint8(id))
}

// AddressPurpose names one of the base58 encodings that carries a network
// specific version prefix.
type AddressPurpose uint8

// Address purposes.
const (
	PubKeyHash AddressPurpose = iota
	ScriptHash
	PrivateKey
	ExtendedPublicKey
	ExtendedPrivateKey
)

var addressPurposeStrings = map[AddressPurpose]string{
	PubKeyHash:         "PubKeyHash",
	ScriptHash:         "ScriptHash",
	PrivateKey:         "PrivateKey",
	ExtendedPublicKey:  "ExtendedPublicKey",
	ExtendedPrivateKey: "ExtendedPrivateKey",
}

// String returns the AddressPurpose in human-readable form.
func (p AddressPurpose) String() string {
	if s, ok := addressPurposeStrings[p]; ok {
		return s
	}
	return fmt.Sprintf("Unknown AddressPurpose (%d)", uint8(p))
}

// AddressPurposes lists every AddressPurpose a Params carries a prefix for.
var AddressPurposes = []AddressPurpose{
	PubKeyHash, ScriptHash, PrivateKey, ExtendedPublicKey, ExtendedPrivateKey,
}

// LastPOWBlock is the height after which proof of work blocks are no longer
// accepted. Both networks leave it effectively unbounded.
const LastPOWBlock uint64 = 0x7fffffff

// Params defines a network by its parameters. These parameters are used by
// applications to differentiate networks as well as addresses and keys for
// one network from those intended for use on another network.
//
// Params are built once and never mutated afterwards. Callers must treat
// every reachable field as read only.
type Params struct {
	// ID identifies the network in the registry.
	ID NetworkID

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.GfxNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort uint16

	// RPCPort defines the rpc server port
	RPCPort uint16

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the merkle root of the genesis block.
	GenesisMerkleRoot *chainhash.Hash

	// LastPOWBlock is the last height at which proof of work blocks are
	// accepted.
	LastPOWBlock uint64

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []string

	// FixedSeeds are bootstrap peers with a synthetic last-seen time.
	FixedSeeds []*wire.NetAddress

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// DataDirSuffix is appended to the data directory of the application.
	DataDirSuffix string
}

// Prefix returns the version prefix for the given purpose, or nil for an
// unknown purpose. The returned slice is a copy.
func (p *Params) Prefix(purpose AddressPurpose) []byte {
	switch purpose {
	case PubKeyHash:
		return []byte{p.PubKeyHashAddrID}
	case ScriptHash:
		return []byte{p.ScriptHashAddrID}
	case PrivateKey:
		return []byte{p.PrivateKeyID}
	case ExtendedPublicKey:
		return append([]byte(nil), p.HDPublicKeyID[:]...)
	case ExtendedPrivateKey:
		return append([]byte(nil), p.HDPrivateKeyID[:]...)
	}
	return nil
}

// NormalizeRPCServerAddress returns addr with the current network default
// rpc port appended if there is not already a port specified.
func (p *Params) NormalizeRPCServerAddress(addr string) (string, error) {
	return network.NormalizeAddress(addr, p.RPCPort)
}

// NormalizePeerAddress returns addr with the current network default
// peer-to-peer port appended if there is not already a port specified.
func (p *Params) NormalizePeerAddress(addr string) (string, error) {
	return network.NormalizeAddress(addr, p.DefaultPort)
}

// DataDir returns the network specific directory under base.
func (p *Params) DataDir(base string) string {
	return filepath.Join(base, p.DataDirSuffix)
}
