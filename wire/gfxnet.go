// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
)

// GfxNet represents which network a message belongs to. On the wire it is
// the four message start bytes, read as a little endian uint32.
type GfxNet uint32

// Constants used to indicate the message network. They can also be used to
// seek to the next message when a stream's state is unknown, but this package
// does not provide that functionality since it's generally a better idea to
// simply disconnect clients that are misbehaving over TCP.
const (
	// Mainnet represents the main network. Message start 34 49 33 4a.
	Mainnet GfxNet = 0x4a334934

	// Testnet represents the test network. Message start 03 1c 6c 30.
	Testnet GfxNet = 0x306c1c03
)

// gfxNetStrings is a map of networks back to their constant names for
// pretty printing.
var gfxNetStrings = map[GfxNet]string{
	Mainnet: "Mainnet",
	Testnet: "Testnet",
}

// NewGfxNet builds a GfxNet out of the four message start bytes in the order
// they appear on the wire.
func NewGfxNet(magic [4]byte) GfxNet {
	return GfxNet(binary.LittleEndian.Uint32(magic[:]))
}

// Bytes returns the four message start bytes in the order they appear on the
// wire.
func (n GfxNet) Bytes() [4]byte {
	var magic [4]byte
	binary.LittleEndian.PutUint32(magic[:], uint32(n))
	return magic
}

// String returns the GfxNet in human-readable form.
func (n GfxNet) String() string {
	if s, ok := gfxNetStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown GfxNet (%d)", uint32(n))
}
