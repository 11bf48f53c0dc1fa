//
// scheme.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package garble implements Yao's garbled circuits with the classical
// scheme and the point-and-permute, garbled row reduction, and
// free-XOR optimizations.
package garble

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/yao/circuit"
	"github.com/markkurossi/yao/label"
)

// Errors.
var (
	ErrInvalidScheme = errors.New("invalid garbling scheme")
	ErrInvalidTable  = errors.New("invalid garbled table")
	ErrNoValidRow    = errors.New("no valid row in garbled table")
	ErrTableCount    = errors.New("garbled table count mismatch")
	ErrOutputCount   = errors.New("output wire count mismatch")
)

// Scheme defines a garbling scheme as a set of optimizations.
type Scheme struct {
	Name string

	// Permute selects table rows with the input label color bits
	// instead of trial decryption.
	Permute bool

	// GRR3 derives the color-(0,0) row from the gate cipher so it
	// is not stored in the table. Requires Permute.
	GRR3 bool

	// FreeXOR links all wire labels with a global offset and
	// evaluates XOR gates without tables. Requires Permute.
	FreeXOR bool
}

// Garbling schemes.
var (
	Classical = &Scheme{
		Name: "classical",
	}
	PointAndPermute = &Scheme{
		Name:    "point-and-permute",
		Permute: true,
	}
	RowReduction = &Scheme{
		Name:    "row-reduction",
		Permute: true,
		GRR3:    true,
	}
	FreeXOR = &Scheme{
		Name:    "free-xor",
		Permute: true,
		GRR3:    true,
		FreeXOR: true,
	}
)

// Schemes lists all predefined garbling schemes.
var Schemes = []*Scheme{
	Classical, PointAndPermute, RowReduction, FreeXOR,
}

// SchemeByName returns the predefined scheme by its name.
func SchemeByName(name string) (*Scheme, error) {
	for _, s := range Schemes {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, errors.Wrapf(ErrInvalidScheme, "unknown scheme '%s'", name)
}

func (s *Scheme) String() string {
	return s.Name
}

// Validate checks that the scheme's optimizations are compatible.
func (s *Scheme) Validate() error {
	if s == nil {
		return errors.Wrap(ErrInvalidScheme, "nil scheme")
	}
	if (s.GRR3 || s.FreeXOR) && !s.Permute {
		return errors.Wrapf(ErrInvalidScheme,
			"%s: row reduction and free-XOR require point-and-permute", s)
	}
	return nil
}

// HasTable tests if the gate function needs a garbled table.
func (s *Scheme) HasTable(op circuit.Op) bool {
	return !(s.FreeXOR && op == circuit.XOR)
}

// TableRows returns the number of populated rows in the garbled
// tables of the gate function.
func (s *Scheme) TableRows(op circuit.Op) int {
	switch {
	case !s.HasTable(op):
		return 0
	case s.GRR3:
		return 3
	default:
		return 4
	}
}

// Rule returns the wire label construction rule of the scheme.
func (s *Scheme) Rule(delta label.Data) label.Rule {
	if s.FreeXOR {
		return label.Offset{
			Delta: delta,
		}
	}
	return label.Independent{
		Colored: s.Permute,
	}
}

func (s *Scheme) zeroRow(l0, l1 label.Label) bool {
	return s.GRR3 && l0.Color == 0 && l1.Color == 0
}

func (s *Scheme) zeroRowLabel(c *Cipher) label.Label {
	if s.FreeXOR {
		return c.DefaultLabel()
	}
	return c.DecryptZeroRow()
}

func (s *Scheme) garbleGate(rand io.Reader, rule label.Rule, id uint64,
	op circuit.Op, a, b label.Wire) (label.Wire, *Table, error) {

	if !s.HasTable(op) {
		l := a.L0
		l.Xor(b.L0)
		c, err := rule.WithLabel(rand, l, 0)
		return c, nil, err
	}

	truth, err := op.TruthTable()
	if err != nil {
		return label.Wire{}, nil, err
	}

	var c label.Wire
	if s.GRR3 {
		for _, row := range truth {
			la := selectLabel(a, row.A)
			lb := selectLabel(b, row.B)
			if s.zeroRow(la, lb) {
				lc := s.zeroRowLabel(NewCipher(id, la, lb))
				c, err = rule.WithLabel(rand, lc, row.C)
				break
			}
		}
	} else {
		c, err = rule.NewWire(rand)
	}
	if err != nil {
		return label.Wire{}, nil, err
	}

	table := new(Table)
	var count int
	for _, row := range truth {
		la := selectLabel(a, row.A)
		lb := selectLabel(b, row.B)
		lc := selectLabel(c, row.C)
		if s.zeroRow(la, lb) {
			continue
		}
		cipher := NewCipher(id, la, lb)
		if s.Permute {
			table.Rows[index(la, lb)] = cipher.Encrypt(lc)
		} else {
			table.Rows[count] = cipher.EncryptTagged(lc)
			count++
		}
	}
	if !s.Permute {
		if err := table.shuffle(rand); err != nil {
			return label.Wire{}, nil, err
		}
	}
	return c, table, nil
}

func (s *Scheme) evalGate(id uint64, op circuit.Op, table *Table,
	a, b label.Label) (label.Label, error) {

	if !s.HasTable(op) {
		c := a
		c.Xor(b)
		return c, nil
	}
	if table == nil {
		return label.Label{}, errors.Wrap(ErrInvalidTable, "missing table")
	}
	if !s.Permute {
		for _, row := range table.Rows {
			c, ok := NewCipher(id, a, b).DecryptTagged(row)
			if ok {
				return c, nil
			}
		}
		return label.Label{}, ErrNoValidRow
	}
	cipher := NewCipher(id, a, b)
	if s.zeroRow(a, b) {
		return s.zeroRowLabel(cipher), nil
	}
	return cipher.Decrypt(table.Rows[index(a, b)])
}

// selectLabel returns the wire label for a truth table bit. The truth
// table bits are always 0 or 1.
func selectLabel(w label.Wire, bit uint) label.Label {
	if bit == 0 {
		return w.L0
	}
	return w.L1
}

func index(a, b label.Label) int {
	return int(a.Color&1)<<1 | int(b.Color&1)
}
