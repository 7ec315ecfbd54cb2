package main

import (
	"github.com/graphicscoin/gfxd/infrastructure/config"
	"github.com/jessevdk/go-flags"
)

type configFlags struct {
	Time       int64  `long:"time" description:"Unix time to start searching from (default: the compiled-in genesis time)"`
	Bits       uint32 `long:"bits" description:"Compact difficulty target to solve for (default: the network's proof of work limit)"`
	StartNonce uint32 `long:"startnonce" description:"Nonce to start searching from"`
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
