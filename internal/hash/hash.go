// Package hash computes xxHash64 fingerprints of measurement data.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Checksum computes the xxHash64 of raw file content.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Columns computes the xxHash64 of numeric columns, hashing each value's
// IEEE-754 bits in little-endian order, column after column.
//
// Columns are length-prefixed, so moving a sample from the end of one column
// to the start of the next changes the result.
func Columns(cols ...[]float64) uint64 {
	d := xxhash.New()

	var buf [8]byte
	for _, col := range cols {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(col)))
		_, _ = d.Write(buf[:])

		for _, v := range col {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
