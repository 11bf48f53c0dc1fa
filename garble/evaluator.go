//
// evaluator.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package garble

import (
	"github.com/cockroachdb/errors"
	"github.com/markkurossi/yao/circuit"
	"github.com/markkurossi/yao/label"
)

// Evaluate evaluates the garbled circuit with one label per input
// wire. The tables must be the garbler's tables in gate order. The
// output labels are decoded with the output wires.
func Evaluate(circ *circuit.Circuit, scheme *Scheme, inputs []label.Label,
	outputs []label.Wire, tables []*Table) ([]uint, error) {

	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	if err := circ.Validate(); err != nil {
		return nil, err
	}
	if len(inputs) != circ.NumInputs() {
		return nil, errors.Wrapf(circuit.ErrInvalidInput,
			"got %d input labels, expected %d", len(inputs), circ.NumInputs())
	}
	if len(outputs) != circ.NumOutputs() {
		return nil, errors.Wrapf(ErrOutputCount, "got %d, expected %d",
			len(outputs), circ.NumOutputs())
	}

	labels := make([]label.Label, len(circ.Gates))
	var result []uint
	var in, out, tbl int

	for id, gate := range circ.Gates {
		switch gate.Op {
		case circuit.Input:
			labels[id] = inputs[in]
			in++

		case circuit.Output:
			bit, err := outputs[out].GetValue(labels[gate.A])
			if err != nil {
				return nil, errors.Wrapf(err, "output %d", out)
			}
			result = append(result, bit)
			out++

		default:
			var table *Table
			if scheme.HasTable(gate.Op) {
				if tbl >= len(tables) {
					return nil, errors.Wrapf(ErrTableCount,
						"gate %d: tables exhausted", id)
				}
				table = tables[tbl]
				tbl++
			}
			l, err := scheme.evalGate(uint64(id), gate.Op, table,
				labels[gate.A], labels[gate.B])
			if err != nil {
				return nil, errors.Wrapf(err, "gate %d", id)
			}
			labels[id] = l
		}
	}
	if tbl != len(tables) {
		return nil, errors.Wrapf(ErrTableCount, "%d unused tables",
			len(tables)-tbl)
	}
	return result, nil
}
