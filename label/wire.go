//
// wire.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package label

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Wire implements a wire with 0 and 1 labels.
type Wire struct {
	L0 Label
	L1 Label
}

func (w Wire) String() string {
	return fmt.Sprintf("%s/%s", w.L0, w.L1)
}

// GetLabel returns the label encoding the bit value.
func (w Wire) GetLabel(bit uint) (Label, error) {
	switch bit {
	case 0:
		return w.L0, nil
	case 1:
		return w.L1, nil
	default:
		return Label{}, errors.Wrapf(ErrInvalidValue, "bit %d", bit)
	}
}

// GetValue resolves a label back into its bit value.
func (w Wire) GetValue(l Label) (uint, error) {
	switch {
	case l.Equal(w.L0):
		return 0, nil
	case l.Equal(w.L1):
		return 1, nil
	default:
		return 0, errors.Wrapf(ErrUnknownLabel, "label %s", l)
	}
}

// compose creates a wire where label encodes bit and other encodes
// its complement.
func compose(l, other Label, bit uint) (Wire, error) {
	switch bit {
	case 0:
		return Wire{L0: l, L1: other}, nil
	case 1:
		return Wire{L0: other, L1: l}, nil
	default:
		return Wire{}, errors.Wrapf(ErrInvalidValue, "bit %d", bit)
	}
}
