// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/graphicscoin/gfxd/domain/chainconfig"
	"github.com/graphicscoin/gfxd/infrastructure/config"
	"github.com/graphicscoin/gfxd/infrastructure/logger"
	"github.com/graphicscoin/gfxd/util/panics"
	"github.com/graphicscoin/gfxd/version"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// errExitEarly is returned by run when the requested action is complete and
// the node should not start.
var errExitEarly = errors.New("exit early")

func main() {
	defer panics.HandlePanic(log, nil)

	cfg, err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, errExitEarly) {
		return
	}
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return
		}
		if errors.Is(err, config.ErrMultipleNetworks) {
			panics.Exit(log, fmt.Sprintf("Cannot select a network: %s", err))
		}
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	if err := cfg.InitLog(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.BackendLog.Close()

	// Show version at startup.
	log.Infof("Version %s", version.Version())

	logIdentity(log, cfg.NetParams(), cfg)
}

// run loads the configuration and handles the flags that only print
// something. It returns errExitEarly when one of them was handled.
func run(args []string, w io.Writer) (*config.Config, error) {
	cfg, _, err := config.LoadConfig(args)
	if err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		fmt.Fprintln(w, "gfxd version", version.Version())
		return nil, errExitEarly
	}

	if cfg.DebugLevel == "show" {
		fmt.Fprintln(w, "Supported subsystems", logger.SupportedSubsystems())
		return nil, errExitEarly
	}

	if cfg.ShowParams {
		writeParams(w, cfg.NetParams())
		return nil, errExitEarly
	}

	return cfg, nil
}

// logIdentity logs the network gfxd runs on. The network is selected while
// loading the configuration, before the log backend runs.
func logIdentity(log *logger.Logger, params *chainconfig.Params, cfg *config.Config) {
	magic := params.Net.Bytes()
	log.Infof("Active network: %s (magic % x)", params.Name, magic[:])
	log.Infof("User agent: %s", version.UserAgent(params.Name))
	log.Infof("Genesis hash: %s", params.GenesisHash)
	log.Debugf("Genesis merkle root: %s", params.GenesisMerkleRoot)
	log.Infof("Data directory: %s", cfg.DataDir)
	log.Debugf("Fixed seeds: %d, DNS seeds: %d", len(params.FixedSeeds), len(params.DNSSeeds))
	for _, peer := range cfg.AddPeers {
		log.Infof("Configured peer %s", peer)
	}
}

// writeParams writes a human readable dump of params to w.
func writeParams(w io.Writer, params *chainconfig.Params) {
	fmt.Fprintf(w, "Network: %s\n", params.Name)
	magic := params.Net.Bytes()
	fmt.Fprintf(w, "Magic: % x\n", magic[:])
	fmt.Fprintf(w, "Peer port: %d\n", params.DefaultPort)
	fmt.Fprintf(w, "RPC port: %d\n", params.RPCPort)
	fmt.Fprintf(w, "Pow limit bits: %08x\n", params.PowLimitBits)
	fmt.Fprintf(w, "Genesis hash: %s\n", params.GenesisHash)
	fmt.Fprintf(w, "Genesis merkle root: %s\n", params.GenesisMerkleRoot)
	fmt.Fprintf(w, "Last POW block: %d\n", params.LastPOWBlock)
	for _, purpose := range chainconfig.AddressPurposes {
		fmt.Fprintf(w, "Prefix %s: %x\n", purpose, params.Prefix(purpose))
	}

	seeds := make([]string, len(params.FixedSeeds))
	for i, seed := range params.FixedSeeds {
		seeds[i] = seed.String()
	}
	fmt.Fprintf(w, "Fixed seeds: %s\n", strings.Join(seeds, ", "))
}
