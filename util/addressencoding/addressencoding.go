// Package addressencoding encodes and decodes base58check addresses and WIF
// private keys using the version prefixes of a network's parameters.
package addressencoding

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/graphicscoin/gfxd/domain/chainconfig"
	"github.com/pkg/errors"
)

const (
	// HashSize is the size of a public key hash or a script hash.
	HashSize = 20

	// PrivateKeySize is the size of a serialized private key.
	PrivateKeySize = 32

	// compressMagic follows the key in a WIF string of a private key whose
	// public key is used in compressed form.
	compressMagic byte = 0x01
)

var (
	// ErrChecksumMismatch describes an error where decoding failed due to a
	// bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrMalformed describes an error where a string is not valid base58check
	// or its payload has the wrong length for its prefix.
	ErrMalformed = errors.New("malformed address")

	// ErrWrongNetwork describes an error where a string decodes fine but
	// belongs to a different network than expected.
	ErrWrongNetwork = errors.New("address is for the wrong network")
)

// Decoded is the result of decoding a base58check string.
type Decoded struct {
	// Params are the parameters of the network whose prefix matched.
	Params *chainconfig.Params

	// Purpose tells which of the network's prefixes matched.
	Purpose chainconfig.AddressPurpose

	// Payload is the hash or the private key, without prefix and
	// compression flag.
	Payload []byte

	// Compressed is set for WIF private keys whose public key is used in
	// compressed form.
	Compressed bool
}

// EncodePubKeyHash returns the pay-to-pubkey-hash address of hash on the
// network described by params.
func EncodePubKeyHash(params *chainconfig.Params, hash []byte) (string, error) {
	if len(hash) != HashSize {
		return "", errors.Wrapf(ErrMalformed, "pubkey hash must be %d bytes, got %d", HashSize, len(hash))
	}
	return base58.CheckEncode(hash, params.PubKeyHashAddrID), nil
}

// EncodeScriptHash returns the pay-to-script-hash address of hash on the
// network described by params.
func EncodeScriptHash(params *chainconfig.Params, hash []byte) (string, error) {
	if len(hash) != HashSize {
		return "", errors.Wrapf(ErrMalformed, "script hash must be %d bytes, got %d", HashSize, len(hash))
	}
	return base58.CheckEncode(hash, params.ScriptHashAddrID), nil
}

// EncodePublicKey returns the pay-to-pubkey-hash address of a serialized
// public key.
func EncodePublicKey(params *chainconfig.Params, serializedPublicKey []byte) (string, error) {
	return EncodePubKeyHash(params, Hash160(serializedPublicKey))
}

// EncodeScript returns the pay-to-script-hash address of a redeem script.
func EncodeScript(params *chainconfig.Params, script []byte) (string, error) {
	return EncodeScriptHash(params, Hash160(script))
}

// EncodePrivateKey returns the wallet import format of privateKey on the
// network described by params.
func EncodePrivateKey(params *chainconfig.Params, privateKey []byte, compressed bool) (string, error) {
	if len(privateKey) != PrivateKeySize {
		return "", errors.Wrapf(ErrMalformed, "private key must be %d bytes, got %d",
			PrivateKeySize, len(privateKey))
	}
	payload := make([]byte, 0, PrivateKeySize+1)
	payload = append(payload, privateKey...)
	if compressed {
		payload = append(payload, compressMagic)
	}
	return base58.CheckEncode(payload, params.PrivateKeyID), nil
}

// Decode decodes a base58check address or WIF private key and detects the
// network it belongs to among the registered networks.
func Decode(encoded string) (*Decoded, error) {
	payload, version, err := base58.CheckDecode(encoded)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return nil, errors.Wrapf(ErrChecksumMismatch, "cannot decode %q", encoded)
		}
		return nil, errors.Wrapf(ErrMalformed, "cannot decode %q: %s", encoded, err)
	}

	for _, purpose := range []chainconfig.AddressPurpose{
		chainconfig.PubKeyHash, chainconfig.ScriptHash, chainconfig.PrivateKey} {

		params, err := chainconfig.NetworkForPrefix(purpose, []byte{version})
		if err != nil {
			continue
		}
		return newDecoded(params, purpose, payload)
	}
	return nil, errors.Wrapf(ErrMalformed, "unknown version prefix %d", version)
}

// DecodeForNetwork decodes encoded like Decode and additionally requires it
// to belong to the network described by params.
func DecodeForNetwork(encoded string, params *chainconfig.Params) (*Decoded, error) {
	decoded, err := Decode(encoded)
	if err != nil {
		return nil, err
	}
	if decoded.Params.ID != params.ID {
		return nil, errors.Wrapf(ErrWrongNetwork, "%q belongs to %s, not %s",
			encoded, decoded.Params.Name, params.Name)
	}
	return decoded, nil
}

func newDecoded(params *chainconfig.Params, purpose chainconfig.AddressPurpose, payload []byte) (*Decoded, error) {
	decoded := &Decoded{Params: params, Purpose: purpose, Payload: payload}
	switch purpose {
	case chainconfig.PubKeyHash, chainconfig.ScriptHash:
		if len(payload) != HashSize {
			return nil, errors.Wrapf(ErrMalformed, "%s payload must be %d bytes, got %d",
				purpose, HashSize, len(payload))
		}
	case chainconfig.PrivateKey:
		switch {
		case len(payload) == PrivateKeySize:
		case len(payload) == PrivateKeySize+1 && payload[PrivateKeySize] == compressMagic:
			decoded.Payload = payload[:PrivateKeySize]
			decoded.Compressed = true
		default:
			return nil, errors.Wrapf(ErrMalformed, "malformed private key of %d bytes", len(payload))
		}
	}
	return decoded, nil
}
