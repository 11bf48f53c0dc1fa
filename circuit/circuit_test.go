//
// Copyright (c) 2022-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		gates []Gate
		valid bool
	}{
		{
			gates: []Gate{{Op: Input}, {Op: Input}, {Op: AND, A: 0, B: 1},
				{Op: Output, A: 2}},
			valid: true,
		},
		{
			// Forward reference.
			gates: []Gate{{Op: Input}, {Op: AND, A: 0, B: 2}, {Op: Input}},
		},
		{
			// Self reference.
			gates: []Gate{{Op: Input}, {Op: XOR, A: 0, B: 1}},
		},
		{
			// Negative operand.
			gates: []Gate{{Op: Input}, {Op: Output, A: -1}},
		},
		{
			// Output marker as operand.
			gates: []Gate{{Op: Input}, {Op: Output, A: 0},
				{Op: XOR, A: 0, B: 1}},
		},
		{
			gates: []Gate{{Op: Op(42)}},
		},
	}
	for idx, test := range tests {
		c := &Circuit{Gates: test.gates}
		err := c.Validate()
		if test.valid && err != nil {
			t.Errorf("test %d: unexpected error: %v", idx, err)
		}
		if !test.valid && !errors.Is(err, ErrInvalidCircuit) {
			t.Errorf("test %d: expected ErrInvalidCircuit, got %v", idx, err)
		}
	}
}

func TestStats(t *testing.T) {
	c := NewGtComparator(8)
	stats := c.Stats()
	if stats[Input] != 16 || c.NumInputs() != 16 {
		t.Fatalf("invalid input count: %d", stats[Input])
	}
	if stats[Output] != 1 || c.NumOutputs() != 1 {
		t.Fatalf("invalid output count: %d", stats[Output])
	}
	if stats[Input]+stats[Output]+stats[AND]+stats[XOR] != len(c.Gates) {
		t.Fatalf("stats do not cover all gates: %v", c)
	}
}

func TestCompute(t *testing.T) {
	for _, op := range []Op{AND, XOR} {
		b := NewBuilder()
		x := b.Input()
		y := b.Input()
		if op == AND {
			b.Output(b.AND(x, y))
		} else {
			b.Output(b.XOR(x, y))
		}
		c := b.Circuit()

		table, err := op.TruthTable()
		if err != nil {
			t.Fatalf("TruthTable failed: %v", err)
		}
		for _, row := range table {
			out, err := c.Compute([]uint{row.A, row.B})
			if err != nil {
				t.Fatalf("Compute failed: %v", err)
			}
			if len(out) != 1 || out[0] != row.C {
				t.Errorf("%d %s %d = %v, expected %d",
					row.A, op, row.B, out, row.C)
			}
		}
	}
}

func TestComputeInvalidInput(t *testing.T) {
	c := NewGtComparator(2)
	_, err := c.Compute([]uint{0, 1, 0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	_, err = c.Compute([]uint{0, 1, 0, 2})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTruthTable(t *testing.T) {
	if _, err := Input.TruthTable(); !errors.Is(err, ErrInvalidCircuit) {
		t.Fatalf("expected ErrInvalidCircuit, got %v", err)
	}
	for _, op := range []Op{AND, XOR} {
		for a := uint(0); a < 2; a++ {
			for b := uint(0); b < 2; b++ {
				v, err := op.Eval(a, b)
				if err != nil {
					t.Fatalf("Eval failed: %v", err)
				}
				var expected uint
				if op == AND {
					expected = a & b
				} else {
					expected = a ^ b
				}
				if v != expected {
					t.Errorf("%d %s %d = %d, expected %d", a, op, b, v,
						expected)
				}
			}
		}
	}
}

func TestGtComparator(t *testing.T) {
	const nbits = 4
	c := NewGtComparator(nbits)
	if err := c.Validate(); err != nil {
		t.Fatalf("comparator is invalid: %v", err)
	}
	for x := uint64(0); x < 1<<nbits; x++ {
		for y := uint64(0); y < 1<<nbits; y++ {
			in := append(Serialize(x, nbits), Serialize(y, nbits)...)
			out, err := c.Compute(in)
			if err != nil {
				t.Fatalf("Compute failed: %v", err)
			}
			var expected uint
			if x > y {
				expected = 1
			}
			if out[0] != expected {
				t.Errorf("%d>%d = %d, expected %d", x, y, out[0], expected)
			}
		}
	}
}

func TestGtComparator64(t *testing.T) {
	c := NewGtComparator(64)
	tests := []struct {
		x, y     uint64
		expected uint
	}{
		{1337, 1336, 1},
		{1336, 1337, 0},
		{1337, 1337, 0},
		{0, 0, 0},
		{1 << 63, 1<<63 - 1, 1},
		{1<<64 - 1, 1<<64 - 2, 1},
		{0, 1<<64 - 1, 0},
	}
	for _, test := range tests {
		in := append(Serialize(test.x, 64), Serialize(test.y, 64)...)
		out, err := c.Compute(in)
		if err != nil {
			t.Fatalf("Compute failed: %v", err)
		}
		if out[0] != test.expected {
			t.Errorf("%d>%d = %d, expected %d", test.x, test.y, out[0],
				test.expected)
		}
	}
}

func TestSerialize(t *testing.T) {
	bits := Serialize(6, 4)
	expected := []uint{0, 1, 1, 0}
	for i := range expected {
		if bits[i] != expected[i] {
			t.Fatalf("Serialize(6, 4) = %v, expected %v", bits, expected)
		}
	}
	for _, v := range []uint64{0, 1, 1336, 1337, 1<<64 - 1} {
		if got := Deserialize(Serialize(v, 64)); got != v {
			t.Errorf("Deserialize(Serialize(%d)) = %d", v, got)
		}
	}
	if got := Deserialize(Serialize(0xff, 4)); got != 0xf {
		t.Errorf("Serialize did not truncate: %x", got)
	}
}
