package chainconfig

import (
	"bytes"
	"sort"

	"github.com/graphicscoin/gfxd/wire"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// Registry holds the parameters of every known network and the one currently
// active. All methods are safe for concurrent use.
type Registry struct {
	params map[NetworkID]*Params
	ids    []NetworkID
	active atomic.Pointer[Params]
}

// NewRegistry returns a registry holding params. The network identified by
// defaultID is active until Select is called. It errors with ErrDuplicateNet
// if two networks share an id or magic bytes, or if an address prefix is used
// twice by any network and purpose. It errors with ErrUnknownNetwork if
// defaultID is not among params.
func NewRegistry(defaultID NetworkID, params ...*Params) (*Registry, error) {
	r := &Registry{
		params: make(map[NetworkID]*Params, len(params)),
	}
	for _, p := range params {
		if err := r.register(p); err != nil {
			return nil, err
		}
	}
	sort.Slice(r.ids, func(i, j int) bool { return r.ids[i] < r.ids[j] })

	defaultParams, ok := r.params[defaultID]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "default network %s is not registered", defaultID)
	}
	r.active.Store(defaultParams)
	return r, nil
}

func (r *Registry) register(params *Params) error {
	if _, ok := r.params[params.ID]; ok {
		return errors.Wrapf(ErrDuplicateNet, "network id %s", params.ID)
	}
	if err := checkPrefixes(params); err != nil {
		return err
	}
	for _, other := range r.params {
		if other.Net == params.Net {
			return errors.Wrapf(ErrDuplicateNet, "%s and %s share magic %s",
				other.ID, params.ID, params.Net)
		}
		// Prefixes are compared across purposes as well.
		for _, purpose := range AddressPurposes {
			for _, otherPurpose := range AddressPurposes {
				if bytes.Equal(other.Prefix(otherPurpose), params.Prefix(purpose)) {
					return errors.Wrapf(ErrDuplicateNet, "%s %s prefix %x is the %s %s prefix",
						params.ID, purpose, params.Prefix(purpose), other.ID, otherPurpose)
				}
			}
		}
	}
	r.params[params.ID] = params
	r.ids = append(r.ids, params.ID)
	return nil
}

// checkPrefixes errors with ErrDuplicateNet if two address purposes of
// params share a version prefix.
func checkPrefixes(params *Params) error {
	for i, purpose := range AddressPurposes {
		for _, otherPurpose := range AddressPurposes[i+1:] {
			if bytes.Equal(params.Prefix(purpose), params.Prefix(otherPurpose)) {
				return errors.Wrapf(ErrDuplicateNet, "%s uses prefix %x for both %s and %s",
					params.ID, params.Prefix(purpose), purpose, otherPurpose)
			}
		}
	}
	return nil
}

// Select makes the network identified by id the active one. Selecting the
// already active network is a no-op. The change is logged at debug level and
// is dropped if the log backend is not running yet; callers that select
// before logging starts log the active network themselves.
func (r *Registry) Select(id NetworkID) error {
	params, err := r.ParamsForNetwork(id)
	if err != nil {
		return err
	}
	previous := r.active.Swap(params)
	if previous != params {
		log.Debugf("Active network is now %s", params.Name)
	}
	return nil
}

// MustSelect performs the same function as Select except it panics if id is
// unknown.
func (r *Registry) MustSelect(id NetworkID) {
	if err := r.Select(id); err != nil {
		panic(err)
	}
}

// SelectFromConfiguration selects the test network if isTestnet is set and
// the main network otherwise.
func (r *Registry) SelectFromConfiguration(isTestnet bool) {
	id := Mainnet
	if isTestnet {
		id = Testnet
	}
	r.MustSelect(id)
}

// ActiveParams returns the parameters of the active network.
func (r *Registry) ActiveParams() *Params {
	return r.active.Load()
}

// ActiveNetworkID returns the id of the active network.
func (r *Registry) ActiveNetworkID() NetworkID {
	return r.active.Load().ID
}

// ParamsForNetwork returns the parameters of the network identified by id
// without changing the active network.
func (r *Registry) ParamsForNetwork(id NetworkID) (*Params, error) {
	params, ok := r.params[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "network id %d", uint8(id))
	}
	return params, nil
}

// Networks returns the ids of all registered networks in ascending order.
func (r *Registry) Networks() []NetworkID {
	return append([]NetworkID(nil), r.ids...)
}

// NetworkForMagic returns the parameters of the network using the given
// magic bytes.
func (r *Registry) NetworkForMagic(net wire.GfxNet) (*Params, error) {
	for _, id := range r.ids {
		if r.params[id].Net == net {
			return r.params[id], nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownNetwork, "no network uses magic %s", net)
}

// NetworkForPrefix returns the parameters of the network whose prefix for
// purpose equals prefix.
func (r *Registry) NetworkForPrefix(purpose AddressPurpose, prefix []byte) (*Params, error) {
	for _, id := range r.ids {
		if bytes.Equal(r.params[id].Prefix(purpose), prefix) {
			return r.params[id], nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownNetwork, "no network uses %s prefix %x", purpose, prefix)
}

// defaultRegistry is populated at init with every compiled-in network, with
// the main network active.
var defaultRegistry *Registry

func init() {
	registry, err := NewRegistry(Mainnet, mustBuild(Mainnet), mustBuild(Testnet))
	if err != nil {
		panic(errors.Wrap(err, "failed to register the default networks"))
	}
	defaultRegistry = registry
}

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Select makes the network identified by id active process-wide.
func Select(id NetworkID) error {
	return defaultRegistry.Select(id)
}

// MustSelect makes the network identified by id active process-wide and
// panics if it is unknown.
func MustSelect(id NetworkID) {
	defaultRegistry.MustSelect(id)
}

// SelectFromConfiguration selects the test network process-wide if
// isTestnet is set and the main network otherwise.
func SelectFromConfiguration(isTestnet bool) {
	defaultRegistry.SelectFromConfiguration(isTestnet)
}

// ActiveParams returns the parameters of the process-wide active network.
// Until a network is selected this is the main network.
func ActiveParams() *Params {
	return defaultRegistry.ActiveParams()
}

// ActiveNetworkID returns the id of the process-wide active network.
func ActiveNetworkID() NetworkID {
	return defaultRegistry.ActiveNetworkID()
}

// ParamsForNetwork returns the compiled-in parameters of the network
// identified by id.
func ParamsForNetwork(id NetworkID) (*Params, error) {
	return defaultRegistry.ParamsForNetwork(id)
}

// Networks returns the ids of all compiled-in networks in ascending order.
func Networks() []NetworkID {
	return defaultRegistry.Networks()
}

// NetworkForMagic returns the compiled-in network using the given magic.
func NetworkForMagic(net wire.GfxNet) (*Params, error) {
	return defaultRegistry.NetworkForMagic(net)
}

// NetworkForPrefix returns the compiled-in network using prefix for purpose.
func NetworkForPrefix(purpose AddressPurpose, prefix []byte) (*Params, error) {
	return defaultRegistry.NetworkForPrefix(purpose, prefix)
}
