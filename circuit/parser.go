//
// parser.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var reParts = regexp.MustCompilePOSIX("[[:space:]]+")

// Parse parses a circuit in the gate list format: one gate per line,
// `input`, `output A`, `and A B`, or `xor A B`. Empty lines and lines
// starting with '#' are ignored. The parsed circuit is validated.
func Parse(in io.Reader) (*Circuit, error) {
	scanner := bufio.NewScanner(in)
	circ := new(Circuit)

	var lineno int
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		parts := reParts.Split(line, -1)
		gate, err := parseGate(parts)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineno)
		}
		circ.Gates = append(circ.Gates, gate)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := circ.Validate(); err != nil {
		return nil, err
	}
	return circ, nil
}

func parseGate(parts []string) (Gate, error) {
	var op Op
	switch strings.ToLower(parts[0]) {
	case "input":
		op = Input
	case "output":
		op = Output
	case "and":
		op = AND
	case "xor":
		op = XOR
	default:
		return Gate{}, errors.Wrapf(ErrInvalidCircuit,
			"invalid operation '%s'", parts[0])
	}
	if len(parts) != 1+op.Arity() {
		return Gate{}, errors.Wrapf(ErrInvalidCircuit,
			"%s: got %d operands, expected %d", op, len(parts)-1, op.Arity())
	}
	var operands [2]int
	for i := 1; i < len(parts); i++ {
		v, err := strconv.Atoi(parts[i])
		if err != nil {
			return Gate{}, errors.Wrapf(ErrInvalidCircuit,
				"invalid operand '%s'", parts[i])
		}
		operands[i-1] = v
	}
	return Gate{
		Op: op,
		A:  operands[0],
		B:  operands[1],
	}, nil
}
