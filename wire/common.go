// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
)

// ProtocolVersion is the protocol version passed to the varint codec. The
// encoding of every structure in this package is identical across versions.
const ProtocolVersion uint32 = 60016

// MaxMessagePayload is the maximum bytes a single structure in this package
// may decode to. It bounds varint-prefixed allocations.
const MaxMessagePayload = 1024 * 1024 * 32

// littleEndian is a convenience variable since binary.LittleEndian is quite
// long.
var littleEndian = binary.LittleEndian

// bigEndian is a convenience variable since binary.BigEndian is quite long.
var bigEndian = binary.BigEndian

// uint32Time represents a unix timestamp encoded with a uint32. It is used as
// a way to signal the readElement function how to decode a timestamp into a Go
// time.Time since it is otherwise ambiguous.
type uint32Time time.Time

// writeElement writes the little endian representation of element to w.
func writeElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case int32:
		return binary.Write(w, littleEndian, e)
	case uint32:
		return binary.Write(w, littleEndian, e)
	case int64:
		return binary.Write(w, littleEndian, e)
	case uint64:
		return binary.Write(w, littleEndian, e)
	case ServiceFlag:
		return binary.Write(w, littleEndian, uint64(e))
	case GfxNet:
		return binary.Write(w, littleEndian, uint32(e))
	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err
	case chainhash.Hash:
		_, err := w.Write(e[:])
		return err
	case [16]byte:
		_, err := w.Write(e[:])
		return err
	}

	return errors.Errorf("writeElement: unsupported type %T", element)
}

// writeElements writes multiple items to w. It is equivalent to multiple
// calls to writeElement.
func writeElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := writeElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// readElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func readElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *int32:
		return binary.Read(r, littleEndian, e)
	case *uint32:
		return binary.Read(r, littleEndian, e)
	case *int64:
		return binary.Read(r, littleEndian, e)
	case *uint64:
		return binary.Read(r, littleEndian, e)
	case *ServiceFlag:
		var v uint64
		err := binary.Read(r, littleEndian, &v)
		if err != nil {
			return err
		}
		*e = ServiceFlag(v)
		return nil
	case *uint32Time:
		var sec uint32
		err := binary.Read(r, littleEndian, &sec)
		if err != nil {
			return err
		}
		*e = uint32Time(time.Unix(int64(sec), 0))
		return nil
	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err
	case *[16]byte:
		_, err := io.ReadFull(r, e[:])
		return err
	}

	return errors.Errorf("readElement: unsupported type %T", element)
}

// readElements reads multiple items from r. It is equivalent to multiple
// calls to readElement.
func readElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := readElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeVarBytes serializes a variable length byte array to w as a varint
// containing the number of bytes, followed by the bytes themselves.
func writeVarBytes(w io.Writer, b []byte) error {
	return btcwire.WriteVarBytes(w, ProtocolVersion, b)
}

// readVarBytes reads a variable length byte array. fieldName is only used in
// the error message.
func readVarBytes(r io.Reader, fieldName string) ([]byte, error) {
	return btcwire.ReadVarBytes(r, ProtocolVersion, MaxMessagePayload, fieldName)
}

// writeVarInt serializes val to w using a variable number of bytes depending
// on its value.
func writeVarInt(w io.Writer, val uint64) error {
	return btcwire.WriteVarInt(w, ProtocolVersion, val)
}

// readVarInt reads a variable length integer from r.
func readVarInt(r io.Reader) (uint64, error) {
	return btcwire.ReadVarInt(r, ProtocolVersion)
}

// varIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func varIntSerializeSize(val uint64) int {
	return btcwire.VarIntSerializeSize(val)
}
