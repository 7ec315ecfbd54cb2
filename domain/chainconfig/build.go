package chainconfig

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/graphicscoin/gfxd/wire"
	"github.com/pkg/errors"
)

// bigOne is 1 represented as a big.Int. It is defined here to avoid the
// overhead of creating it multiple times.
var bigOne = big.NewInt(1)

// maxHash is the highest possible 256-bit hash value.
var maxHash = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)

// mainnetPowLimitShift and testnetPowLimitShift derive each network's
// highest allowed proof of work value from maxHash.
const (
	mainnetPowLimitShift = 16
	testnetPowLimitShift = 14
)

var (
	mainnetGenesisHash       = newHashFromStr("ee1a738f0e63b943608f086e874a523ef087c96292c0ac854d982f848e0ef228")
	mainnetGenesisMerkleRoot = newHashFromStr("dd868b1a2ee686cd1bb4391697827416dc00f8bed2e0c9f1ce6ddcea6bac5572")
	testnetGenesisHash       = newHashFromStr("bc0dbf3fdaa72e3a78f5f3e0c7502daa39c045b97fe08931660c715759edae89")
)

// baseTable holds the compiled-in inputs of the main network, from which
// every other network is derived.
type baseTable struct {
	name              string
	net               wire.GfxNet
	defaultPort       uint16
	rpcPort           uint16
	powLimitShift     uint
	genesisTimestamp  string
	genesisTime       uint32
	genesisNonce      uint32
	genesisHash       *chainhash.Hash
	genesisMerkleRoot *chainhash.Hash
	pubKeyHashAddrID  byte
	scriptHashAddrID  byte
	privateKeyID      byte
	hdPublicKeyID     [4]byte
	hdPrivateKeyID    [4]byte
	fixedSeeds        []SeedSpec
	dnsSeeds          []string
	dataDirSuffix     string
}

var mainnetTable = baseTable{
	name:              "mainnet",
	net:               wire.Mainnet,
	defaultPort:       4096,
	rpcPort:           4093,
	powLimitShift:     mainnetPowLimitShift,
	genesisTimestamp:  genesisTimestamp,
	genesisTime:       genesisTime,
	genesisNonce:      53683,
	genesisHash:       mainnetGenesisHash,
	genesisMerkleRoot: mainnetGenesisMerkleRoot,
	pubKeyHashAddrID:  38,
	scriptHashAddrID:  62,
	privateKeyID:      83,
	hdPublicKeyID:     [4]byte{0x1f, 0x46, 0x20, 0x9f},
	hdPrivateKeyID:    [4]byte{0x1f, 0x88, 0x95, 0xbf},
	fixedSeeds:        mainnetSeeds,
	dnsSeeds:          nil,
	dataDirSuffix:     "",
}

// paramsOverride lists the fields in which a derived network differs from
// the network it is built upon. Only the genesis nonce changes in the genesis
// block; its bits follow the new proof of work limit.
type paramsOverride struct {
	id                NetworkID
	name              string
	net               wire.GfxNet
	defaultPort       uint16
	rpcPort           uint16
	powLimitShift     uint
	genesisNonce      uint32
	genesisHash       *chainhash.Hash
	genesisMerkleRoot *chainhash.Hash
	pubKeyHashAddrID  byte
	scriptHashAddrID  byte
	privateKeyID      byte
	hdPublicKeyID     [4]byte
	hdPrivateKeyID    [4]byte
	fixedSeeds        []SeedSpec
	dnsSeeds          []string
	dataDirSuffix     string
}

var testnetOverride = paramsOverride{
	id:                Testnet,
	name:              "testnet",
	net:               wire.Testnet,
	defaultPort:       3052,
	rpcPort:           3050,
	powLimitShift:     testnetPowLimitShift,
	genesisNonce:      13731,
	genesisHash:       testnetGenesisHash,
	genesisMerkleRoot: mainnetGenesisMerkleRoot,
	pubKeyHashAddrID:  23,
	scriptHashAddrID:  63,
	privateKeyID:      145,
	hdPublicKeyID:     [4]byte{0x82, 0x3a, 0xa0, 0x03},
	hdPrivateKeyID:    [4]byte{0x82, 0x3a, 0x06, 0x97},
	fixedSeeds:        nil,
	dnsSeeds:          nil,
	dataDirSuffix:     "testnet",
}

// overrides maps every derived network to the override applied on top of
// the main network.
var overrides = map[NetworkID]*paramsOverride{
	Testnet: &testnetOverride,
}

// powLimit returns maxHash shifted right by shift bits.
func powLimit(shift uint) *big.Int {
	return new(big.Int).Rsh(maxHash, shift)
}

// Build constructs the parameters of the given network from the compiled-in
// tables and verifies its genesis block. Apart from the last-seen times of
// the fixed seeds, two calls with the same id return identical parameters.
func Build(id NetworkID) (*Params, error) {
	override, ok := overrides[id]
	if !ok && id != Mainnet {
		return nil, errors.Wrapf(ErrUnknownNetwork, "cannot build %s", id)
	}

	params, err := buildBase(Mainnet, &mainnetTable)
	if err != nil {
		return nil, err
	}
	if id != Mainnet {
		params, err = applyOverride(params, override)
		if err != nil {
			return nil, err
		}
	}
	err = checkPrefixes(params)
	if err != nil {
		return nil, err
	}
	return params, nil
}

func buildBase(id NetworkID, table *baseTable) (*Params, error) {
	limit := powLimit(table.powLimitShift)
	bits := blockchain.BigToCompact(limit)

	coinbase, err := newGenesisCoinbaseTx(table.genesisTimestamp, table.genesisTime)
	if err != nil {
		return nil, err
	}

	fixedSeeds, err := ConvertSeeds(table.fixedSeeds)
	if err != nil {
		return nil, err
	}

	params := &Params{
		ID:               id,
		Name:             table.name,
		Net:              table.net,
		DefaultPort:      table.defaultPort,
		RPCPort:          table.rpcPort,
		PowLimit:         limit,
		PowLimitBits:     bits,
		GenesisBlock:     newGenesisBlock(coinbase, time.Unix(int64(table.genesisTime), 0), bits, table.genesisNonce),
		LastPOWBlock:     LastPOWBlock,
		DNSSeeds:         append([]string(nil), table.dnsSeeds...),
		FixedSeeds:       fixedSeeds,
		PubKeyHashAddrID: table.pubKeyHashAddrID,
		ScriptHashAddrID: table.scriptHashAddrID,
		PrivateKeyID:     table.privateKeyID,
		HDPublicKeyID:    table.hdPublicKeyID,
		HDPrivateKeyID:   table.hdPrivateKeyID,
		DataDirSuffix:    table.dataDirSuffix,
	}
	err = verifyGenesis(params, table.genesisHash, table.genesisMerkleRoot)
	if err != nil {
		return nil, err
	}
	return params, nil
}

// applyOverride returns a deep copy of base with override applied. The
// genesis block is rebuilt from a copy of base's coinbase and verified
// against the override's expected values. base is not modified.
func applyOverride(base *Params, override *paramsOverride) (*Params, error) {
	limit := powLimit(override.powLimitShift)
	bits := blockchain.BigToCompact(limit)

	fixedSeeds, err := ConvertSeeds(override.fixedSeeds)
	if err != nil {
		return nil, err
	}

	baseHeader := &base.GenesisBlock.Header
	coinbase := base.GenesisBlock.Transactions[0].Copy()

	params := *base
	params.ID = override.id
	params.Name = override.name
	params.Net = override.net
	params.DefaultPort = override.defaultPort
	params.RPCPort = override.rpcPort
	params.PowLimit = limit
	params.PowLimitBits = bits
	params.GenesisBlock = newGenesisBlock(coinbase, baseHeader.Timestamp, bits, override.genesisNonce)
	params.GenesisHash = nil
	params.GenesisMerkleRoot = nil
	params.DNSSeeds = append([]string(nil), override.dnsSeeds...)
	params.FixedSeeds = fixedSeeds
	params.PubKeyHashAddrID = override.pubKeyHashAddrID
	params.ScriptHashAddrID = override.scriptHashAddrID
	params.PrivateKeyID = override.privateKeyID
	params.HDPublicKeyID = override.hdPublicKeyID
	params.HDPrivateKeyID = override.hdPrivateKeyID
	params.DataDirSuffix = override.dataDirSuffix

	err = verifyGenesis(&params, override.genesisHash, override.genesisMerkleRoot)
	if err != nil {
		return nil, err
	}
	return &params, nil
}

// mustBuild performs the same function as Build except it panics if there is
// an error. This should only be called from package init functions, where a
// genesis mismatch means the compiled-in tables are inconsistent and the
// process must not start.
func mustBuild(id NetworkID) *Params {
	params, err := Build(id)
	if err != nil {
		panic(errors.Wrapf(err, "failed to build %s parameters", id))
	}
	return params
}
