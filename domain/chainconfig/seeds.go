package chainconfig

import (
	"net"
	"time"

	"github.com/graphicscoin/gfxd/util/random"
	"github.com/graphicscoin/gfxd/wire"
	"github.com/pkg/errors"
)

// SeedSpec is a compiled-in bootstrap peer. IPv4 addresses are stored in
// their IPv4-mapped IPv6 form.
type SeedSpec struct {
	Addr [16]byte
	Port uint16
}

const oneWeek = 7 * 24 * time.Hour

// mainnetSeeds lists the fixed bootstrap peers of the main network.
var mainnetSeeds = []SeedSpec{
	{Addr: [16]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 64, 150, 189, 104}, Port: 4096},
}

// ConvertSeeds turns the given seed specs into network addresses. Each
// address gets a random last-seen time between one and two weeks ago so that
// peers learned from the network, which carry newer timestamps, take
// precedence over the fixed seeds.
func ConvertSeeds(specs []SeedSpec) ([]*wire.NetAddress, error) {
	return convertSeeds(specs, time.Now(), random.Int64Inclusive)
}

// convertSeeds is ConvertSeeds with an injectable clock and random source.
// randInt must return a value in [0, max].
func convertSeeds(specs []SeedSpec, now time.Time,
	randInt func(max int64) (int64, error)) ([]*wire.NetAddress, error) {

	addresses := make([]*wire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		offset, err := randInt(int64(oneWeek / time.Second))
		if err != nil {
			return nil, errors.Wrap(err, "failed to draw a seed last-seen time")
		}
		lastSeen := now.Add(-oneWeek - time.Duration(offset)*time.Second)

		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])
		addresses = append(addresses,
			wire.NewNetAddressTimestamp(lastSeen, wire.SFNodeNetwork, ip, spec.Port))
	}
	return addresses, nil
}
