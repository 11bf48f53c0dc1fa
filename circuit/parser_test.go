//
// parser_test.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

var data = `# x & y
input
input

and 0 1
output 2
`

func TestParse(t *testing.T) {
	circ, err := Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	if len(circ.Gates) != 4 {
		t.Fatalf("got %d gates, expected 4", len(circ.Gates))
	}
	if circ.Gates[2] != (Gate{Op: AND, A: 0, B: 1}) {
		t.Fatalf("invalid gate: %v", circ.Gates[2])
	}
	if circ.Gates[3] != (Gate{Op: Output, A: 2}) {
		t.Fatalf("invalid gate: %v", circ.Gates[3])
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"nand 0 1\n",
		"input\nand 0\n",
		"input\noutput 0 0\n",
		"input\noutput x\n",
		"input\nxor 0 3\n",
	}
	for _, input := range inputs {
		_, err := Parse(strings.NewReader(input))
		if !errors.Is(err, ErrInvalidCircuit) {
			t.Errorf("Parse(%q): expected ErrInvalidCircuit, got %v",
				input, err)
		}
	}
}

func TestMarshalParse(t *testing.T) {
	circ := NewGtComparator(8)

	var buf bytes.Buffer
	if err := circ.Marshal(&buf); err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(parsed.Gates) != len(circ.Gates) {
		t.Fatalf("got %d gates, expected %d", len(parsed.Gates),
			len(circ.Gates))
	}
	for i := range circ.Gates {
		if parsed.Gates[i] != circ.Gates[i] {
			t.Fatalf("gate %d: got %v, expected %v", i, parsed.Gates[i],
				circ.Gates[i])
		}
	}
}
