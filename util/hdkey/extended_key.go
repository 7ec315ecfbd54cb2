// Package hdkey implements BIP32 hierarchical deterministic extended keys
// whose serialized form carries the extended key prefixes of a network.
package hdkey

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/graphicscoin/gfxd/domain/chainconfig"
	"github.com/graphicscoin/gfxd/util/addressencoding"
	"github.com/kaspanet/go-secp256k1"
	"github.com/pkg/errors"
)

const (
	versionSerializationLen     = 4
	depthSerializationLen       = 1
	fingerprintSerializationLen = 4
	childNumberSerializationLen = 4
	chainCodeSerializationLen   = 32
	keySerializationLen         = 33
	checkSumLen                 = 4
)

const extendedKeySerializationLen = versionSerializationLen +
	depthSerializationLen +
	fingerprintSerializationLen +
	childNumberSerializationLen +
	chainCodeSerializationLen +
	keySerializationLen +
	checkSumLen

// HardenedIndexStart is the index of the first hardened child.
const HardenedIndexStart = 0x80000000

var (
	// ErrChecksumMismatch describes an error where a serialized extended key
	// has a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnknownVersion describes an error where a serialized extended key
	// carries a version no registered network uses.
	ErrUnknownVersion = errors.New("unknown extended key version")
)

// ExtendedKey is a BIP32 extended key, either private or public.
type ExtendedKey struct {
	privateKey        *secp256k1.ECDSAPrivateKey
	publicKey         *secp256k1.ECDSAPublicKey
	Version           [4]byte
	Depth             uint8
	ParentFingerprint [4]byte
	ChildNumber       uint32
	ChainCode         [32]byte
}

// NewMaster returns the master private extended key of seed on the network
// described by params.
func NewMaster(seed []byte, params *chainconfig.Params) (*ExtendedKey, error) {
	mac := newHMACWriter([]byte("Bitcoin seed"))
	mac.InfallibleWrite(seed)
	I := mac.Sum(nil)

	var iL, iR [32]byte
	copy(iL[:], I[:32])
	copy(iR[:], I[32:])

	privateKey, err := secp256k1.DeserializeECDSAPrivateKeyFromSlice(iL[:])
	if err != nil {
		return nil, err
	}

	return &ExtendedKey{
		privateKey: privateKey,
		Version:    params.HDPrivateKeyID,
		ChainCode:  iR,
	}, nil
}

// IsPrivate returns whether the extended key holds a private key.
func (extKey *ExtendedKey) IsPrivate() bool {
	return extKey.privateKey != nil
}

// PrivateKey returns the private key, or an error for a public extended key.
func (extKey *ExtendedKey) PrivateKey() (*secp256k1.ECDSAPrivateKey, error) {
	if !extKey.IsPrivate() {
		return nil, errors.New("extended key is public")
	}
	return extKey.privateKey, nil
}

// PublicKey returns the public key, deriving it from the private key if
// needed.
func (extKey *ExtendedKey) PublicKey() (*secp256k1.ECDSAPublicKey, error) {
	if extKey.publicKey != nil {
		return extKey.publicKey, nil
	}

	publicKey, err := extKey.privateKey.ECDSAPublicKey()
	if err != nil {
		return nil, errors.Wrap(err, "error calculating public key")
	}
	extKey.publicKey = publicKey
	return publicKey, nil
}

// Params returns the parameters of the network whose prefix the key carries.
func (extKey *ExtendedKey) Params() (*chainconfig.Params, error) {
	purpose := chainconfig.ExtendedPublicKey
	if extKey.IsPrivate() {
		purpose = chainconfig.ExtendedPrivateKey
	}
	params, err := chainconfig.NetworkForPrefix(purpose, extKey.Version[:])
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownVersion, "%s version %x", purpose, extKey.Version)
	}
	return params, nil
}

// Public returns the public extended key matching extKey. The version is
// switched to the public prefix of the same network.
func (extKey *ExtendedKey) Public() (*ExtendedKey, error) {
	if !extKey.IsPrivate() {
		return extKey, nil
	}

	params, err := extKey.Params()
	if err != nil {
		return nil, err
	}
	publicKey, err := extKey.PublicKey()
	if err != nil {
		return nil, err
	}

	return &ExtendedKey{
		publicKey:         publicKey,
		Version:           params.HDPublicKeyID,
		Depth:             extKey.Depth,
		ParentFingerprint: extKey.ParentFingerprint,
		ChildNumber:       extKey.ChildNumber,
		ChainCode:         extKey.ChainCode,
	}, nil
}

// DeriveFromPath derives the descendant at a path such as m/44'/0'/1.
func (extKey *ExtendedKey) DeriveFromPath(pathString string) (*ExtendedKey, error) {
	indexes, err := parsePath(pathString)
	if err != nil {
		return nil, err
	}

	descendant := extKey
	for _, index := range indexes {
		descendant, err = descendant.Child(index)
		if err != nil {
			return nil, err
		}
	}
	return descendant, nil
}

func parsePath(pathString string) ([]uint32, error) {
	parts := strings.Split(pathString, "/")
	if parts[0] != "m" {
		return nil, errors.Errorf("%q is not a valid path: it must start with m", pathString)
	}

	indexes := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		offset := uint64(0)
		if strings.HasSuffix(part, "'") {
			offset = HardenedIndexStart
			part = strings.TrimSuffix(part, "'")
		}
		index, err := strconv.ParseUint(part, 10, 31)
		if err != nil {
			return nil, errors.Wrapf(err, "%q is not a valid path", pathString)
		}
		indexes = append(indexes, uint32(index+offset))
	}
	return indexes, nil
}

func (extKey *ExtendedKey) serialize() ([]byte, error) {
	serialized := make([]byte, 0, extendedKeySerializationLen)
	serialized = append(serialized, extKey.Version[:]...)
	serialized = append(serialized, extKey.Depth)
	serialized = append(serialized, extKey.ParentFingerprint[:]...)
	serialized = append(serialized, serializeUint32(extKey.ChildNumber)...)
	serialized = append(serialized, extKey.ChainCode[:]...)
	if extKey.IsPrivate() {
		serialized = append(serialized, 0)
		serialized = append(serialized, extKey.privateKey.Serialize()[:]...)
	} else {
		publicKey, err := extKey.PublicKey()
		if err != nil {
			return nil, err
		}
		serializedPublicKey, err := publicKey.Serialize()
		if err != nil {
			return nil, errors.Wrap(err, "error serializing public key")
		}
		serialized = append(serialized, serializedPublicKey[:]...)
	}
	return append(serialized, calcChecksum(serialized)...), nil
}

// String returns the base58 serialization of the extended key.
func (extKey *ExtendedKey) String() string {
	serialized, err := extKey.serialize()
	if err != nil {
		return "<invalid extended key>"
	}
	return base58.Encode(serialized)
}

// DeserializeExtendedKey parses a base58 extended key and returns it along
// with the parameters of the network whose prefix it carries.
func DeserializeExtendedKey(extKeyString string) (*ExtendedKey, *chainconfig.Params, error) {
	serialized := base58.Decode(extKeyString)
	if len(serialized) != extendedKeySerializationLen {
		return nil, nil, errors.Errorf("key length must be %d bytes but got %d",
			extendedKeySerializationLen, len(serialized))
	}

	err := validateChecksum(serialized)
	if err != nil {
		return nil, nil, err
	}

	extKey := &ExtendedKey{}
	offset := 0
	copy(extKey.Version[:], serialized[offset:])
	offset += versionSerializationLen
	extKey.Depth = serialized[offset]
	offset += depthSerializationLen
	copy(extKey.ParentFingerprint[:], serialized[offset:])
	offset += fingerprintSerializationLen
	extKey.ChildNumber = binary.BigEndian.Uint32(serialized[offset:])
	offset += childNumberSerializationLen
	copy(extKey.ChainCode[:], serialized[offset:])
	offset += chainCodeSerializationLen
	keyData := serialized[offset : offset+keySerializationLen]

	if keyData[0] == 0 {
		extKey.privateKey, err = secp256k1.DeserializeECDSAPrivateKeyFromSlice(keyData[1:])
	} else {
		extKey.publicKey, err = secp256k1.DeserializeECDSAPubKey(keyData)
	}
	if err != nil {
		return nil, nil, err
	}

	params, err := extKey.Params()
	if err != nil {
		return nil, nil, err
	}
	return extKey, params, nil
}

// Address returns the pay-to-pubkey-hash address of the key's public key on
// the network its version belongs to.
func (extKey *ExtendedKey) Address() (string, error) {
	params, err := extKey.Params()
	if err != nil {
		return "", err
	}
	publicKey, err := extKey.PublicKey()
	if err != nil {
		return "", err
	}
	serializedPublicKey, err := publicKey.Serialize()
	if err != nil {
		return "", errors.Wrap(err, "error serializing public key")
	}
	return addressencoding.EncodePublicKey(params, serializedPublicKey[:])
}
