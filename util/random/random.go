package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// Uint64 returns a cryptographically random uint64 value.
func Uint64() (uint64, error) {
	var buf [8]byte
	_, err := io.ReadFull(rand.Reader, buf[:])
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Int64Inclusive returns a cryptographically random value uniformly drawn from
// [0, max]. It panics if max is negative.
func Int64Inclusive(max int64) (int64, error) {
	if max < 0 {
		panic(errors.Errorf("Int64Inclusive called with negative max %d", max))
	}
	n, err := rand.Int(rand.Reader, big.NewInt(0).Add(big.NewInt(max), big.NewInt(1)))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return n.Int64(), nil
}
