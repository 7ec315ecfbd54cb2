package main

import (
	"github.com/graphicscoin/gfxd/infrastructure/config"
	"github.com/jessevdk/go-flags"
)

type configFlags struct {
	Mnemonic   bool   `long:"mnemonic" description:"Derive the key pair from a new BIP39 mnemonic and print the mnemonic"`
	Passphrase bool   `long:"passphrase" description:"Prompt for a BIP39 passphrase (requires --mnemonic)"`
	Path       string `long:"path" description:"BIP32 derivation path of the printed key pair" default:"m"`
	config.NetworkFlags
}

func parseConfig(args []string) (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
