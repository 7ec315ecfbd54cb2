package config

import (
	"fmt"
	"os"

	"github.com/graphicscoin/gfxd/domain/chainconfig"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// ErrMultipleNetworks is returned by ResolveNetwork when more than one network
// flag is set.
var ErrMultipleNetworks = errors.New("multiple networks selected")

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Mainnet bool `long:"mainnet" description:"Use the main network (default)"`
	Testnet bool `long:"testnet" description:"Use the test network"`

	ActiveNetParams *chainconfig.Params
}

// ResolveNetwork makes the network chosen on the command line the active one
// process-wide. The main network is used unless --testnet is given. It
// returns ErrMultipleNetworks, after writing the usage to stderr, if both
// --mainnet and --testnet are given.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	if networkFlags.Mainnet && networkFlags.Testnet {
		err := errors.Wrap(ErrMultipleNetworks, "the mainnet and testnet params can't be used "+
			"together -- choose one of the two")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return err
	}

	chainconfig.SelectFromConfiguration(networkFlags.Testnet)
	networkFlags.ActiveNetParams = chainconfig.ActiveParams()
	return nil
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *chainconfig.Params {
	return networkFlags.ActiveNetParams
}
