//
// rule.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package label

import (
	"io"
)

// Rule defines how the two labels of a wire are constructed.
type Rule interface {
	// NewWire creates a fresh wire.
	NewWire(rand io.Reader) (Wire, error)

	// WithLabel creates a wire whose label for bit is l. The other
	// label follows the rule.
	WithLabel(rand io.Reader, l Label, bit uint) (Wire, error)
}

// Independent creates wires with two independently random labels. If
// Colored is set, the labels carry opposite random color bits.
type Independent struct {
	Colored bool
}

// NewWire implements Rule.NewWire.
func (r Independent) NewWire(rand io.Reader) (Wire, error) {
	var color byte
	var err error
	if r.Colored {
		color, err = RandomBit(rand)
		if err != nil {
			return Wire{}, err
		}
	}
	l0, err := NewLabel(rand, color)
	if err != nil {
		return Wire{}, err
	}
	l1, err := r.other(rand, l0)
	if err != nil {
		return Wire{}, err
	}
	return Wire{L0: l0, L1: l1}, nil
}

// WithLabel implements Rule.WithLabel.
func (r Independent) WithLabel(rand io.Reader, l Label, bit uint) (
	Wire, error) {

	other, err := r.other(rand, l)
	if err != nil {
		return Wire{}, err
	}
	return compose(l, other, bit)
}

func (r Independent) other(rand io.Reader, l Label) (Label, error) {
	var color byte
	if r.Colored {
		color = l.Color ^ 1
	}
	for {
		other, err := NewLabel(rand, color)
		if err != nil {
			return Label{}, err
		}
		if other.Data != l.Data {
			return other, nil
		}
	}
}

// Offset creates wires whose labels differ by the global offset
// Delta: L1.Data = L0.Data ^ Delta and the colors are opposite.
type Offset struct {
	Delta Data
}

// NewDelta creates a random global offset. The lowest bit of the
// offset is always set.
func NewDelta(rand io.Reader) (Data, error) {
	delta, err := NewData(rand)
	if err != nil {
		return delta, err
	}
	delta[Size-1] |= 1
	return delta, nil
}

// NewWire implements Rule.NewWire.
func (r Offset) NewWire(rand io.Reader) (Wire, error) {
	color, err := RandomBit(rand)
	if err != nil {
		return Wire{}, err
	}
	l0, err := NewLabel(rand, color)
	if err != nil {
		return Wire{}, err
	}
	return Wire{L0: l0, L1: r.other(l0)}, nil
}

// WithLabel implements Rule.WithLabel.
func (r Offset) WithLabel(rand io.Reader, l Label, bit uint) (Wire, error) {
	return compose(l, r.other(l), bit)
}

func (r Offset) other(l Label) Label {
	other := l
	other.Data.Xor(r.Delta)
	other.Color ^= 1
	return other
}
