package main

import (
	"fmt"
	"io"
	"os"

	"github.com/graphicscoin/gfxd/domain/chainconfig"
	"github.com/graphicscoin/gfxd/util/addressencoding"
	"github.com/graphicscoin/gfxd/util/hdkey"
	"github.com/graphicscoin/gfxd/util/random"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

const seedSize = 32

// keyPair is everything printed for a generated key.
type keyPair struct {
	mnemonic           string
	extendedPrivateKey string
	extendedPublicKey  string
	privateKey         string
	address            string
}

func newMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return bip39.NewMnemonic(entropy)
}

func newSeed() ([]byte, error) {
	seed := make([]byte, 0, seedSize)
	for len(seed) < seedSize {
		value, err := random.Uint64()
		if err != nil {
			return nil, err
		}
		for i := 0; i < 8; i++ {
			seed = append(seed, byte(value>>(8*i)))
		}
	}
	return seed, nil
}

// generateKeyPair derives the key at path from seed and encodes it with the
// prefixes of params.
func generateKeyPair(seed []byte, path string, params *chainconfig.Params) (*keyPair, error) {
	master, err := hdkey.NewMaster(seed, params)
	if err != nil {
		return nil, err
	}
	extendedKey, err := master.DeriveFromPath(path)
	if err != nil {
		return nil, err
	}
	extendedPublicKey, err := extendedKey.Public()
	if err != nil {
		return nil, err
	}

	privateKey, err := extendedKey.PrivateKey()
	if err != nil {
		return nil, err
	}
	wif, err := addressencoding.EncodePrivateKey(params, privateKey.Serialize()[:], true)
	if err != nil {
		return nil, err
	}
	address, err := extendedKey.Address()
	if err != nil {
		return nil, err
	}

	return &keyPair{
		extendedPrivateKey: extendedKey.String(),
		extendedPublicKey:  extendedPublicKey.String(),
		privateKey:         wif,
		address:            address,
	}, nil
}

func (kp *keyPair) print(w io.Writer, params *chainconfig.Params) {
	fmt.Fprintf(w, "Network: %s\n", params.Name)
	if kp.mnemonic != "" {
		fmt.Fprintf(w, "Mnemonic: %s\n", kp.mnemonic)
	}
	fmt.Fprintf(w, "Extended private key: %s\n", kp.extendedPrivateKey)
	fmt.Fprintf(w, "Extended public key: %s\n", kp.extendedPublicKey)
	fmt.Fprintf(w, "Private key (WIF): %s\n", kp.privateKey)
	fmt.Fprintf(w, "Address: %s\n", kp.address)
}

func run(args []string, w io.Writer) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}
	if cfg.Passphrase && !cfg.Mnemonic {
		return errors.New("--passphrase requires --mnemonic")
	}
	params := cfg.NetParams()

	var seed []byte
	var mnemonic string
	if cfg.Mnemonic {
		mnemonic, err = newMnemonic()
		if err != nil {
			return err
		}
		passphrase := ""
		if cfg.Passphrase {
			password, err := getPassword("BIP39 passphrase: ")
			if err != nil {
				return err
			}
			passphrase = string(password)
		}
		seed = bip39.NewSeed(mnemonic, passphrase)
	} else {
		seed, err = newSeed()
		if err != nil {
			return err
		}
	}

	kp, err := generateKeyPair(seed, cfg.Path, params)
	if err != nil {
		return err
	}
	kp.mnemonic = mnemonic
	kp.print(w, params)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
