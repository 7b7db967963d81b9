// Package hash provides stable 64-bit content hashing built on xxhash.
package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/hxann/go-toolbox/pkg/utils"
)

// Sum64 returns the 64-bit xxhash digest of b.
func Sum64(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Sum64String returns the 64-bit xxhash digest of s without copying it.
func Sum64String(s string) uint64 {
	return xxhash.Sum64(utils.StringToBytes(s))
}

// Digest accumulates a streaming 64-bit hash. The zero value is not usable;
// create one with NewDigest.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty streaming digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteBytes folds b into the digest.
func (d *Digest) WriteBytes(b []byte) {
	_, _ = d.d.Write(b)
}

// WriteString folds s into the digest without copying it.
func (d *Digest) WriteString(s string) {
	_, _ = d.d.WriteString(s)
}

// WriteUint64 folds v into the digest in little-endian order.
func (d *Digest) WriteUint64(v uint64) {
	_, _ = d.d.Write(utils.Uint64ToBytes(v))
}

// Sum64 returns the hash of everything written so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

// Reset returns the digest to its empty state.
func (d *Digest) Reset() {
	d.d.Reset()
}
