package utils

import (
	"encoding/hex"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint wraps a reader and computes the BLAKE2b-256 digest and size of
// everything read through it.
type Fingerprint struct {
	r    io.Reader
	h    hash.Hash
	size int64
}

// NewFingerprint returns a Fingerprint reading from r.
func NewFingerprint(r io.Reader) *Fingerprint {
	// New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	return &Fingerprint{r: r, h: h}
}

func (f *Fingerprint) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if n > 0 {
		f.h.Write(p[:n])
		f.size += int64(n)
	}
	return n, err
}

// Sum returns the hex digest of the bytes read so far.
func (f *Fingerprint) Sum() string {
	return hex.EncodeToString(f.h.Sum(nil))
}

// Size returns the number of bytes read so far.
func (f *Fingerprint) Size() int64 {
	return f.size
}
