package chainconfig

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
)

var (
	// ErrGenesisMismatch describes an error where a constructed genesis
	// block does not reproduce the hash or merkle root compiled in for its
	// network.
	ErrGenesisMismatch = errors.New("genesis block mismatch")

	// ErrUnknownNetwork describes an error where a network was requested
	// that is not registered.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be registered because its id, magic or address prefixes
	// are already taken by another network.
	ErrDuplicateNet = errors.New("duplicate network")
)

// GenesisMismatchError identifies the network and the field whose computed
// value disagrees with the expected one.
type GenesisMismatchError struct {
	Network  NetworkID
	Field    string
	Computed chainhash.Hash
	Expected chainhash.Hash
}

func (e *GenesisMismatchError) Error() string {
	return fmt.Sprintf("%s: %s %s: computed %s, expected %s",
		ErrGenesisMismatch, e.Network, e.Field, e.Computed, e.Expected)
}

// Unwrap makes errors.Is(err, ErrGenesisMismatch) hold.
func (e *GenesisMismatchError) Unwrap() error {
	return ErrGenesisMismatch
}
