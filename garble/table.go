//
// table.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package garble

import (
	"io"

	"github.com/cockroachdb/errors"
)

// Table implements a garbled gate table. With point-and-permute, the
// rows are indexed by the input label colors as colorA<<1|colorB and
// the reduced rows are nil. Classical tables hold the rows in random
// order.
type Table struct {
	Rows [4]Row
}

// NumRows returns the number of populated table rows.
func (t *Table) NumRows() int {
	var count int
	for _, row := range t.Rows {
		if row != nil {
			count++
		}
	}
	return count
}

// Size returns the table size in bytes.
func (t *Table) Size() int {
	var size int
	for _, row := range t.Rows {
		size += len(row)
	}
	return size
}

func (t *Table) shuffle(rand io.Reader) error {
	for i := len(t.Rows) - 1; i > 0; i-- {
		j, err := randomInt(rand, i+1)
		if err != nil {
			return err
		}
		t.Rows[i], t.Rows[j] = t.Rows[j], t.Rows[i]
	}
	return nil
}

// randomInt returns a uniformly random integer in [0, n) for n <= 256.
func randomInt(rand io.Reader, n int) (int, error) {
	limit := 256 - 256%n
	var buf [1]byte
	for {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return 0, errors.Wrap(err, "shuffle")
		}
		if int(buf[0]) < limit {
			return int(buf[0]) % n, nil
		}
	}
}
