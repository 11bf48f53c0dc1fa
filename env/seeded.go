//
// seeded.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"crypto/sha256"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/chacha20"
)

// SeededRand is a deterministic random source producing the ChaCha20
// key stream for a seed. It is meant for reproducible tests and
// debugging; labels drawn from a known seed are not secret.
type SeededRand struct {
	stream *chacha20.Cipher
}

// NewSeededRand creates a deterministic random source from the seed.
func NewSeededRand(seed []byte) (*SeededRand, error) {
	key := sha256.Sum256(seed)
	var nonce [chacha20.NonceSize]byte

	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, errors.Wrap(err, "chacha20")
	}
	return &SeededRand{
		stream: stream,
	}, nil
}

// Read implements io.Reader. It always fills p.
func (r *SeededRand) Read(p []byte) (int, error) {
	clear(p)
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}

var _ io.Reader = &SeededRand{}
