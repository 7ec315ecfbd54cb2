package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/graphicscoin/gfxd/domain/chainconfig"
	"github.com/graphicscoin/gfxd/util/addressencoding"
	"github.com/graphicscoin/gfxd/util/hdkey"
	"github.com/tyler-smith/go-bip39"
)

func TestGenerateKeyPair(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon abandon abandon art"
	seed := bip39.NewSeed(mnemonic, "")

	for _, id := range chainconfig.Networks() {
		params, _ := chainconfig.ParamsForNetwork(id)
		kp, err := generateKeyPair(seed, "m/44'/0'/0'/0/0", params)
		if err != nil {
			t.Fatalf("%s: generateKeyPair: %s", id, err)
		}

		decoded, err := addressencoding.DecodeForNetwork(kp.address, params)
		if err != nil || decoded.Purpose != chainconfig.PubKeyHash {
			t.Errorf("%s: address %s does not decode as a pubkey hash: %v", id, kp.address, err)
		}
		decoded, err = addressencoding.DecodeForNetwork(kp.privateKey, params)
		if err != nil || decoded.Purpose != chainconfig.PrivateKey || !decoded.Compressed {
			t.Errorf("%s: private key %s does not decode as a compressed WIF: %v", id, kp.privateKey, err)
		}

		for _, extended := range []string{kp.extendedPrivateKey, kp.extendedPublicKey} {
			key, keyParams, err := hdkey.DeserializeExtendedKey(extended)
			if err != nil {
				t.Fatalf("%s: DeserializeExtendedKey: %s", id, err)
			}
			if keyParams.ID != id || key.Depth != 5 {
				t.Errorf("%s: unexpected extended key network %s, depth %d", id, keyParams.ID, key.Depth)
			}
		}

		again, err := generateKeyPair(seed, "m/44'/0'/0'/0/0", params)
		if err != nil || *again != *kp {
			t.Errorf("%s: generateKeyPair is not deterministic", id)
		}
	}
}

func TestRun(t *testing.T) {
	defer chainconfig.MustSelect(chainconfig.Mainnet)

	var out bytes.Buffer
	if err := run([]string{"--testnet", "--mnemonic", "--path", "m/0'"}, &out); err != nil {
		t.Fatalf("run: %s", err)
	}
	output := out.String()
	for _, expected := range []string{"Network: testnet", "Mnemonic: ", "Address: A"} {
		if !strings.Contains(output, expected) {
			t.Errorf("run: output lacks %q:\n%s", expected, output)
		}
	}

	if err := run([]string{"--passphrase"}, &out); err == nil {
		t.Errorf("run: expected an error for --passphrase without --mnemonic")
	}
	if err := run([]string{"--path", "x/1"}, &out); err == nil {
		t.Errorf("run: expected an error for a malformed path")
	}
}
