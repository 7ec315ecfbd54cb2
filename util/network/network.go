package network

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
)

// ErrInvalidAddress is returned for addresses that are not a host or a
// host:port pair even after the default port is appended.
var ErrInvalidAddress = errors.New("invalid address")

// NormalizeAddresses returns a new slice with all the passed addresses
// normalized with the given default port, and all duplicates removed. The
// first occurrence of an address keeps its position. addrs is not modified.
func NormalizeAddresses(addrs []string, defaultPort uint16) ([]string, error) {
	result := make([]string, 0, len(addrs))
	seen := make(map[string]struct{}, len(addrs))
	for _, addr := range addrs {
		normalized, err := NormalizeAddress(addr, defaultPort)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result, nil
}

// NormalizeAddress returns addr with defaultPort appended if there is not
// already a port specified.
func NormalizeAddress(addr string, defaultPort uint16) (string, error) {
	_, _, err := net.SplitHostPort(addr)
	if err == nil {
		return addr, nil
	}

	// SplitHostPort also fails for reasons other than a missing port, so
	// the result is checked again.
	addrWithPort := net.JoinHostPort(addr, strconv.Itoa(int(defaultPort)))
	_, _, err = net.SplitHostPort(addrWithPort)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidAddress, "%q: %s", addr, err)
	}
	return addrWithPort, nil
}
