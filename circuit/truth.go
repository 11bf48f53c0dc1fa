//
// truth.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"github.com/cockroachdb/errors"
)

// Row defines one truth table row: inputs A and B give output C.
type Row struct {
	A uint
	B uint
	C uint
}

// TruthTable defines the truth table of a binary gate function.
type TruthTable [4]Row

var (
	andTable = TruthTable{
		{0, 0, 0},
		{0, 1, 0},
		{1, 0, 0},
		{1, 1, 1},
	}
	xorTable = TruthTable{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
)

// TruthTable returns the truth table of the binary gate function.
func (op Op) TruthTable() (TruthTable, error) {
	switch op {
	case AND:
		return andTable, nil
	case XOR:
		return xorTable, nil
	default:
		return TruthTable{}, errors.Wrapf(ErrInvalidCircuit,
			"no truth table for %s", op)
	}
}

// Eval evaluates the binary gate function.
func (op Op) Eval(a, b uint) (uint, error) {
	table, err := op.TruthTable()
	if err != nil {
		return 0, err
	}
	for _, row := range table {
		if row.A == a && row.B == b {
			return row.C, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidInput, "%s %d %d", op, a, b)
}
