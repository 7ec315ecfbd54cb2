package addressencoding

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/graphicscoin/gfxd/domain/chainconfig"
	"github.com/pkg/errors"
)

// generatorPublicKey is the compressed serialization of the secp256k1
// generator point, the public key of private key 1.
var generatorPublicKey, _ = hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")

func mustParams(t *testing.T, id chainconfig.NetworkID) *chainconfig.Params {
	params, err := chainconfig.ParamsForNetwork(id)
	if err != nil {
		t.Fatalf("ParamsForNetwork(%s): %s", id, err)
	}
	return params
}

func TestHash160(t *testing.T) {
	expected := "751e76e8199196d454941c45d1b3a323f1433bd6"
	if got := hex.EncodeToString(Hash160(generatorPublicKey)); got != expected {
		t.Fatalf("Hash160: got %s, want %s", got, expected)
	}
}

func TestEncodeAddresses(t *testing.T) {
	zeroHash := make([]byte, HashSize)
	tests := []struct {
		name     string
		network  chainconfig.NetworkID
		encode   func(*chainconfig.Params, []byte) (string, error)
		input    []byte
		expected string
	}{
		{"mainnet p2pkh zero", chainconfig.Mainnet, EncodePubKeyHash, zeroHash, "GHqvR8KwyrcJ5UJHvwf7RmLtvAnr5uTHdV"},
		{"mainnet p2pkh pubkey", chainconfig.Mainnet, EncodePublicKey, generatorPublicKey, "GUXByHDZLvU4DnVH9imSFckt3HEQ5cFgE5"},
		{"mainnet p2sh zero", chainconfig.Mainnet, EncodeScriptHash, zeroHash, "RwxQ3jUs2BjKhseNX1em4msn2GyVBjd1Lc"},
		{"testnet p2pkh zero", chainconfig.Testnet, EncodePubKeyHash, zeroHash, "AFmseVrdL9f9oyCzZefL9tG6UbvhPbdYzM"},
		{"testnet p2pkh pubkey", chainconfig.Testnet, EncodePublicKey, generatorPublicKey, "AST9CekEhDWuxHPynRmeyjg5biNFSijvb3"},
		{"testnet p2sh zero", chainconfig.Testnet, EncodeScriptHash, zeroHash, "SMJ12qn9jNCCXJnTYRz5Yu9ZenERqvYwfg"},
	}

	for _, test := range tests {
		got, err := test.encode(mustParams(t, test.network), test.input)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", test.name, err)
			continue
		}
		if got != test.expected {
			t.Errorf("%s: got %s, want %s", test.name, got, test.expected)
		}
	}

	_, err := EncodePubKeyHash(mustParams(t, chainconfig.Mainnet), []byte{1, 2, 3})
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("EncodePubKeyHash: expected ErrMalformed for a short hash, got %v", err)
	}
}

func TestEncodePrivateKey(t *testing.T) {
	one := make([]byte, PrivateKeySize)
	one[PrivateKeySize-1] = 1

	tests := []struct {
		network    chainconfig.NetworkID
		compressed bool
		expected   string
	}{
		{chainconfig.Mainnet, false, "3nLneFFejK8oC6EYF7WwAcmH1U7bxSwgK3swFS6QWPZBxpZscUy"},
		{chainconfig.Mainnet, true, "DH8LTPufXm3Qsx6kuHm85SrRf4g9HjWLWfhpShkrkiZ5NyXJfq1u"},
		{chainconfig.Testnet, false, "5rrwad5dZh4qYxGGT3ztJVwHnYJ8G7By6gGcNijz91yEZJYV383"},
		{chainconfig.Testnet, true, "NT5RuQFSPHqwJ2vPBzEVSEid618b3gKQc4Ku8sEjCPHCqVtF2bh6"},
	}
	for _, test := range tests {
		got, err := EncodePrivateKey(mustParams(t, test.network), one, test.compressed)
		if err != nil {
			t.Fatalf("EncodePrivateKey: %s", err)
		}
		if got != test.expected {
			t.Errorf("EncodePrivateKey(%s, %t): got %s, want %s",
				test.network, test.compressed, got, test.expected)
		}

		decoded, err := Decode(got)
		if err != nil {
			t.Fatalf("Decode(%s): %s", got, err)
		}
		if decoded.Params.ID != test.network || decoded.Purpose != chainconfig.PrivateKey ||
			decoded.Compressed != test.compressed || !bytes.Equal(decoded.Payload, one) {
			t.Errorf("Decode(%s): unexpected result %+v", got, decoded)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		encoded string
		network chainconfig.NetworkID
		purpose chainconfig.AddressPurpose
		payload string
		err     error
	}{
		{
			encoded: "GUXByHDZLvU4DnVH9imSFckt3HEQ5cFgE5",
			network: chainconfig.Mainnet,
			purpose: chainconfig.PubKeyHash,
			payload: "751e76e8199196d454941c45d1b3a323f1433bd6",
		},
		{
			encoded: "SMJ12qn9jNCCXJnTYRz5Yu9ZenERqvYwfg",
			network: chainconfig.Testnet,
			purpose: chainconfig.ScriptHash,
			payload: "0000000000000000000000000000000000000000",
		},
		{
			// Last character altered.
			encoded: "GUXByHDZLvU4DnVH9imSFckt3HEQ5cFgE6",
			err:     ErrChecksumMismatch,
		},
		{
			encoded: "0OIl",
			err:     ErrMalformed,
		},
		{
			// Bitcoin mainnet address, version 0.
			encoded: "1111111111111111111114oLvT2",
			err:     ErrMalformed,
		},
	}

	for _, test := range tests {
		decoded, err := Decode(test.encoded)
		if !errors.Is(err, test.err) {
			t.Errorf("Decode(%s): got error %v, want %v", test.encoded, err, test.err)
			continue
		}
		if err != nil {
			continue
		}
		if decoded.Params.ID != test.network || decoded.Purpose != test.purpose ||
			hex.EncodeToString(decoded.Payload) != test.payload {
			t.Errorf("Decode(%s): unexpected result %+v", test.encoded, decoded)
		}
	}
}

func TestDecodeForNetwork(t *testing.T) {
	mainnet := mustParams(t, chainconfig.Mainnet)
	testnet := mustParams(t, chainconfig.Testnet)

	if _, err := DecodeForNetwork("GHqvR8KwyrcJ5UJHvwf7RmLtvAnr5uTHdV", mainnet); err != nil {
		t.Errorf("DecodeForNetwork: unexpected error: %s", err)
	}
	_, err := DecodeForNetwork("GHqvR8KwyrcJ5UJHvwf7RmLtvAnr5uTHdV", testnet)
	if !errors.Is(err, ErrWrongNetwork) {
		t.Errorf("DecodeForNetwork: expected ErrWrongNetwork, got %v", err)
	}
}
