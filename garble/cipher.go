//
// cipher.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package garble

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/yao/label"
	"golang.org/x/crypto/sha3"
)

// Row sizes in bytes.
const (
	TaggedRowSize  = 2 * label.Size
	ColoredRowSize = label.Size + 1
)

// Row is an encrypted garbled table row.
type Row []byte

// Cipher implements the gate cipher. It is a SHAKE128 stream keyed by
// the gate index and the gate input labels. Each read advances the
// stream so the garbler and the evaluator must perform the same
// sequence of operations on ciphers created with the same key.
type Cipher struct {
	shake sha3.ShakeHash
}

// NewCipher creates a gate cipher for the gate id and input labels.
// Only the label buffers are part of the key.
func NewCipher(id uint64, labels ...label.Label) *Cipher {
	var tweak [8]byte
	binary.BigEndian.PutUint64(tweak[:], id)

	shake := sha3.NewShake128()
	shake.Write(tweak[:])
	for _, l := range labels {
		shake.Write(l.Data[:])
	}
	return &Cipher{
		shake: shake,
	}
}

// NextBytes returns the next n bytes of the stream.
func (c *Cipher) NextBytes(n int) []byte {
	buf := make([]byte, n)
	c.shake.Read(buf)
	return buf
}

// NextBit returns the next stream bit. It consumes one stream byte.
func (c *Cipher) NextBit() byte {
	var buf [1]byte
	c.shake.Read(buf[:])
	return buf[0] & 1
}

// XorStream xors buf in place with the next len(buf) stream bytes and
// returns it.
func (c *Cipher) XorStream(buf []byte) []byte {
	pad := c.NextBytes(len(buf))
	for i := range buf {
		buf[i] ^= pad[i]
	}
	return buf
}

// EncryptTagged encrypts the label buffer into a row that the
// decryptor can recognize: a zero tag followed by the label buffer,
// both xored with the stream. The color bit is not encrypted.
func (c *Cipher) EncryptTagged(l label.Label) Row {
	row := make(Row, TaggedRowSize)
	c.XorStream(row[:label.Size])
	copy(row[label.Size:], l.Data[:])
	c.XorStream(row[label.Size:])
	return row
}

// DecryptTagged decrypts a tagged row. It returns false if the row
// tag does not match the cipher key.
func (c *Cipher) DecryptTagged(row Row) (label.Label, bool) {
	var l label.Label
	if len(row) != TaggedRowSize {
		return l, false
	}
	tag := c.NextBytes(label.Size)
	if subtle.ConstantTimeCompare(tag, row[:label.Size]) != 1 {
		return l, false
	}
	copy(l.Data[:], row[label.Size:])
	c.XorStream(l.Data[:])
	return l, true
}

// Encrypt encrypts the label buffer and color bit.
func (c *Cipher) Encrypt(l label.Label) Row {
	row := make(Row, ColoredRowSize)
	copy(row, l.Data[:])
	c.XorStream(row[:label.Size])
	row[label.Size] = l.Color ^ c.NextBit()
	return row
}

// Decrypt decrypts a row created with Encrypt.
func (c *Cipher) Decrypt(row Row) (label.Label, error) {
	var l label.Label
	if len(row) != ColoredRowSize {
		return l, errors.Wrapf(ErrInvalidTable, "row size %d", len(row))
	}
	copy(l.Data[:], row[:label.Size])
	c.XorStream(l.Data[:])
	l.Color = (row[label.Size] ^ c.NextBit()) & 1
	return l, nil
}

// DecryptZeroRow decrypts the implicit all-zero row.
func (c *Cipher) DecryptZeroRow() label.Label {
	var l label.Label
	c.XorStream(l.Data[:])
	l.Color = c.NextBit()
	return l
}

// DefaultLabel reads a label directly from the stream. For a fresh
// cipher this is the same label as DecryptZeroRow returns.
func (c *Cipher) DefaultLabel() label.Label {
	var l label.Label
	c.shake.Read(l.Data[:])
	l.Color = c.NextBit()
	return l
}
