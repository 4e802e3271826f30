// Package hash provides the xxHash64 digests used to verify that a decoded
// stream matches the original input.
package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// SumReader computes the xxHash64 of everything readable from r.
func SumReader(r io.Reader) (uint64, error) {
	d := xxhash.New()
	if _, err := io.Copy(d, r); err != nil {
		return 0, err
	}

	return d.Sum64(), nil
}
