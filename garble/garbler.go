//
// garbler.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package garble

import (
	"github.com/cockroachdb/errors"
	"github.com/markkurossi/yao/circuit"
	"github.com/markkurossi/yao/env"
	"github.com/markkurossi/yao/label"
)

// Garbled contains the garbled circuit. The Inputs wires and the
// Delta offset are private to the garbler. The evaluator receives the
// Tables, the Outputs wires for decoding, and one label per input
// wire.
type Garbled struct {
	Scheme  *Scheme
	Inputs  []label.Wire
	Outputs []label.Wire
	Tables  []*Table
	Delta   label.Data
}

// Garble garbles the circuit with the scheme. Each call draws fresh
// wire labels and a fresh free-XOR offset from the config's random
// source.
func Garble(cfg *env.Config, circ *circuit.Circuit, scheme *Scheme) (
	*Garbled, error) {

	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	if err := circ.Validate(); err != nil {
		return nil, err
	}
	rand := cfg.GetRandom()

	garbled := &Garbled{
		Scheme: scheme,
	}
	if scheme.FreeXOR {
		delta, err := label.NewDelta(rand)
		if err != nil {
			return nil, err
		}
		garbled.Delta = delta
	}
	rule := scheme.Rule(garbled.Delta)

	wires := make([]label.Wire, len(circ.Gates))

	for id, gate := range circ.Gates {
		switch gate.Op {
		case circuit.Input:
			w, err := rule.NewWire(rand)
			if err != nil {
				return nil, err
			}
			wires[id] = w
			garbled.Inputs = append(garbled.Inputs, w)

		case circuit.Output:
			garbled.Outputs = append(garbled.Outputs, wires[gate.A])

		default:
			w, table, err := scheme.garbleGate(rand, rule, uint64(id),
				gate.Op, wires[gate.A], wires[gate.B])
			if err != nil {
				return nil, errors.Wrapf(err, "gate %d", id)
			}
			wires[id] = w
			if table != nil {
				garbled.Tables = append(garbled.Tables, table)
			}
		}
	}
	return garbled, nil
}

// Encode returns the input wire labels encoding the input bits.
func (g *Garbled) Encode(bits []uint) ([]label.Label, error) {
	if len(bits) != len(g.Inputs) {
		return nil, errors.Wrapf(circuit.ErrInvalidInput,
			"got %d inputs, expected %d", len(bits), len(g.Inputs))
	}
	result := make([]label.Label, len(bits))
	for i, bit := range bits {
		l, err := g.Inputs[i].GetLabel(bit)
		if err != nil {
			return nil, errors.Wrapf(err, "input %d", i)
		}
		result[i] = l
	}
	return result, nil
}

// Stats describes the size of the garbled material.
type Stats struct {
	Tables int
	Rows   int
	Bytes  FileSize
}

// Stats returns statistics about the garbled tables.
func (g *Garbled) Stats() Stats {
	var stats Stats
	for _, t := range g.Tables {
		stats.Tables++
		stats.Rows += t.NumRows()
		stats.Bytes += FileSize(t.Size())
	}
	return stats
}
