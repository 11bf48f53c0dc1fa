//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"
)

// Dot creates graphviz dot output of the circuit.
func (c *Circuit) Dot(out io.Writer) {
	fmt.Fprintf(out, "digraph circuit\n{\n")
	fmt.Fprintf(out, "  overlap=scale;\n")
	fmt.Fprintf(out, "  node\t[fontname=\"Helvetica\"];\n")

	fmt.Fprintf(out, "  {\n    node [shape=plaintext];\n")
	for idx, gate := range c.Gates {
		switch gate.Op {
		case Input:
			fmt.Fprintf(out, "    g%d\t[label=\"in%d\"];\n", idx, idx)
		case Output:
			fmt.Fprintf(out, "    g%d\t[label=\"out%d\"];\n", idx, idx)
		}
	}
	fmt.Fprintf(out, "  }\n")

	fmt.Fprintf(out, "  {\n    node [shape=box];\n")
	for idx, gate := range c.Gates {
		if gate.Op.Arity() == 2 {
			fmt.Fprintf(out, "    g%d\t[label=\"%s\"];\n", idx, gate.Op)
		}
	}
	fmt.Fprintf(out, "  }\n")

	for _, op := range []Op{Input, Output} {
		fmt.Fprintf(out, "  {  rank=same")
		for idx, gate := range c.Gates {
			if gate.Op == op {
				fmt.Fprintf(out, "; g%d", idx)
			}
		}
		fmt.Fprintf(out, ";}\n")
	}

	for idx, gate := range c.Gates {
		switch gate.Op.Arity() {
		case 2:
			fmt.Fprintf(out, "  g%d -> g%d;\n", gate.A, idx)
			fmt.Fprintf(out, "  g%d -> g%d;\n", gate.B, idx)
		case 1:
			fmt.Fprintf(out, "  g%d -> g%d;\n", gate.A, idx)
		}
	}
	fmt.Fprintf(out, "}\n")
}
