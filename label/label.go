//
// label.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

// Package label implements garbled circuit wire labels and the label
// construction rules of the different garbling schemes.
package label

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Size defines the label buffer size in bytes.
const Size = 16

// Errors.
var (
	ErrInvalidValue = errors.New("invalid wire value")
	ErrUnknownLabel = errors.New("unknown label")
)

// Data contains the label buffer.
type Data [Size]byte

// Xor xors the data with the argument data.
func (d *Data) Xor(o Data) {
	for i := 0; i < Size; i++ {
		d[i] ^= o[i]
	}
}

func (d Data) String() string {
	return fmt.Sprintf("%x", d[:])
}

// Label implements a wire label: a secret buffer and a public color
// bit. Labels of the classical scheme do not use the color and keep
// it as 0.
type Label struct {
	Data  Data
	Color byte
}

func (l Label) String() string {
	return fmt.Sprintf("%s/%d", l.Data, l.Color)
}

// Equal tests if the labels are equal.
func (l Label) Equal(o Label) bool {
	return l.Data == o.Data && l.Color == o.Color
}

// Xor xors the label with the argument label, both the buffer and the
// color bit.
func (l *Label) Xor(o Label) {
	l.Data.Xor(o.Data)
	l.Color ^= o.Color
}

// NewData creates new random label data.
func NewData(rand io.Reader) (Data, error) {
	var d Data
	if _, err := io.ReadFull(rand, d[:]); err != nil {
		return d, errors.Wrap(err, "label data")
	}
	return d, nil
}

// NewLabel creates a new label with random data and the color bit.
func NewLabel(rand io.Reader, color byte) (Label, error) {
	d, err := NewData(rand)
	if err != nil {
		return Label{}, err
	}
	return Label{
		Data:  d,
		Color: color & 1,
	}, nil
}

// RandomBit returns a random bit.
func RandomBit(rand io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return 0, errors.Wrap(err, "random bit")
	}
	return buf[0] & 1, nil
}
