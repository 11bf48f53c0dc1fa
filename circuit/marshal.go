//
// Copyright (c) 2020-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bufio"
	"fmt"
	"io"
)

// Marshal marshals the circuit in the gate list format.
func (c *Circuit) Marshal(out io.Writer) error {
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# %s\n", c)
	for _, g := range c.Gates {
		if _, err := fmt.Fprintln(w, g); err != nil {
			return err
		}
	}
	return w.Flush()
}
