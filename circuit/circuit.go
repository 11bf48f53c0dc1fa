//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

// Package circuit implements topologically ordered Boolean circuits
// for the garbling engine.
package circuit

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Errors.
var (
	ErrInvalidCircuit = errors.New("invalid circuit")
	ErrInvalidInput   = errors.New("invalid circuit input")
)

// Op specifies gate function.
type Op byte

// Gate functions.
const (
	Input Op = iota
	Output
	AND
	XOR
)

// Stats holds statistics about circuit operations.
type Stats [XOR + 1]int

func (op Op) String() string {
	switch op {
	case Input:
		return "input"
	case Output:
		return "output"
	case AND:
		return "and"
	case XOR:
		return "xor"
	default:
		return fmt.Sprintf("{Op %d}", op)
	}
}

// Arity returns the number of operands of the gate function.
func (op Op) Arity() int {
	switch op {
	case Input:
		return 0
	case Output:
		return 1
	default:
		return 2
	}
}

// Gate specifies a circuit gate. The operands A and B are positions of
// earlier gates in the circuit.
type Gate struct {
	Op Op
	A  int
	B  int
}

func (g Gate) String() string {
	switch g.Op.Arity() {
	case 0:
		return g.Op.String()
	case 1:
		return fmt.Sprintf("%s %d", g.Op, g.A)
	default:
		return fmt.Sprintf("%s %d %d", g.Op, g.A, g.B)
	}
}

// Circuit specifies a Boolean circuit as a topologically ordered gate
// list. Each gate, apart from the output markers, defines a wire
// identified by the gate's position.
type Circuit struct {
	Gates []Gate
}

func (c *Circuit) String() string {
	stats := c.Stats()
	var str string
	for k := Input; k <= XOR; k++ {
		if len(str) > 0 {
			str += " "
		}
		str += fmt.Sprintf("%s=%d", k, stats[k])
	}
	return fmt.Sprintf("#gates=%d (%s)", len(c.Gates), str)
}

// Stats counts the circuit gates by function.
func (c *Circuit) Stats() Stats {
	var stats Stats
	for _, g := range c.Gates {
		if g.Op <= XOR {
			stats[g.Op]++
		}
	}
	return stats
}

// NumInputs returns the number of circuit input wires.
func (c *Circuit) NumInputs() int {
	return c.Stats()[Input]
}

// NumOutputs returns the number of circuit output wires.
func (c *Circuit) NumOutputs() int {
	return c.Stats()[Output]
}

// Dump prints a debug dump of the circuit.
func (c *Circuit) Dump(w io.Writer) {
	fmt.Fprintf(w, "circuit %s\n", c)
	for id, gate := range c.Gates {
		fmt.Fprintf(w, "%04d\t%s\n", id, gate)
	}
}

// Validate checks that all gate operands reference earlier wire
// positions.
func (c *Circuit) Validate() error {
	for id, g := range c.Gates {
		if g.Op > XOR {
			return errors.Wrapf(ErrInvalidCircuit, "gate %d: invalid op %s",
				id, g.Op)
		}
		operands := []int{g.A, g.B}[:g.Op.Arity()]
		for _, o := range operands {
			if o < 0 || o >= id {
				return errors.Wrapf(ErrInvalidCircuit,
					"gate %d: operand %d out of range", id, o)
			}
			if c.Gates[o].Op == Output {
				return errors.Wrapf(ErrInvalidCircuit,
					"gate %d: operand %d is an output marker", id, o)
			}
		}
	}
	return nil
}

// Compute evaluates the circuit in plaintext. The inputs are assigned
// to the input wires in order.
func (c *Circuit) Compute(inputs []uint) ([]uint, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(inputs) != c.NumInputs() {
		return nil, errors.Wrapf(ErrInvalidInput, "got %d inputs, expected %d",
			len(inputs), c.NumInputs())
	}
	values := make([]uint, len(c.Gates))
	var outputs []uint
	var in int

	for id, g := range c.Gates {
		switch g.Op {
		case Input:
			v := inputs[in]
			if v > 1 {
				return nil, errors.Wrapf(ErrInvalidInput, "input %d: bit %d",
					in, v)
			}
			values[id] = v
			in++

		case Output:
			outputs = append(outputs, values[g.A])

		default:
			v, err := g.Op.Eval(values[g.A], values[g.B])
			if err != nil {
				return nil, err
			}
			values[id] = v
		}
	}
	return outputs, nil
}
