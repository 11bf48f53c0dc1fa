//
// builder.go
//
// Copyright (c) 2020-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

// Builder constructs circuits gate by gate. The gate constructors
// return the position of the wire they define.
type Builder struct {
	gates []Gate
}

// NewBuilder creates a new circuit builder.
func NewBuilder() *Builder {
	return new(Builder)
}

func (b *Builder) add(g Gate) int {
	b.gates = append(b.gates, g)
	return len(b.gates) - 1
}

// Input adds a circuit input wire.
func (b *Builder) Input() int {
	return b.add(Gate{Op: Input})
}

// Inputs adds n circuit input wires.
func (b *Builder) Inputs(n int) []int {
	result := make([]int, n)
	for i := 0; i < n; i++ {
		result[i] = b.Input()
	}
	return result
}

// Output marks the wire w as a circuit output.
func (b *Builder) Output(w int) {
	b.add(Gate{Op: Output, A: w})
}

// AND adds an AND gate.
func (b *Builder) AND(x, y int) int {
	return b.add(Gate{Op: AND, A: x, B: y})
}

// XOR adds an XOR gate.
func (b *Builder) XOR(x, y int) int {
	return b.add(Gate{Op: XOR, A: x, B: y})
}

// OR adds x|y as (x&y)^(x^y).
func (b *Builder) OR(x, y int) int {
	and := b.AND(x, y)
	xor := b.XOR(x, y)
	return b.XOR(and, xor)
}

// Circuit returns the circuit built so far.
func (b *Builder) Circuit() *Circuit {
	gates := make([]Gate, len(b.gates))
	copy(gates, b.gates)
	return &Circuit{
		Gates: gates,
	}
}

// NewGtComparator creates a circuit testing if x>y. The circuit takes
// nbits of x followed by nbits of y, most significant bit first, and
// has one output.
func NewGtComparator(nbits int) *Circuit {
	b := NewBuilder()

	x := b.Inputs(nbits)
	y := b.Inputs(nbits)

	diff := make([]int, nbits)
	for i := 0; i < nbits; i++ {
		diff[i] = b.XOR(x[i], y[i])
	}
	// gt[i] = x[i] & !y[i]
	gt := make([]int, nbits)
	for i := 0; i < nbits; i++ {
		gt[i] = b.AND(x[i], diff[i])
	}

	// flag is set after the first differing bit.
	out := gt[0]
	flag := diff[0]
	for i := 1; i < nbits; i++ {
		out = b.XOR(out, b.AND(gt[i], b.XOR(flag, gt[i])))
		if i != nbits-1 {
			flag = b.OR(flag, diff[i])
		}
	}
	b.Output(out)

	return b.Circuit()
}
