//
// main.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/yao/circuit"
	"github.com/markkurossi/yao/env"
	"github.com/markkurossi/yao/garble"
	"github.com/markkurossi/yao/label"
)

var (
	verbose = false
)

func main() {
	fScheme := flag.String("s", "all", "Garbling scheme or 'all'")
	fBits := flag.Int("b", 64, "Comparator input size in bits")
	fX := flag.Uint64("x", 1337, "Comparator input x")
	fY := flag.Uint64("y", 1336, "Comparator input y")
	fCirc := flag.String("c", "", "Circuit file in the gate list format")
	fInput := flag.String("i", "", "Circuit input bits, e.g. 0110")
	fOut := flag.String("o", "", "Write the circuit to the file and exit")
	fSeed := flag.String("seed", "", "Deterministic random seed (insecure)")
	fVerbose := flag.Bool("v", false, "Verbose output")
	fTiming := flag.Bool("t", false, "Print timing and size statistics")
	fDump := flag.Bool("dump", false, "Dump the circuit")
	flag.Parse()

	verbose = *fVerbose

	log.SetFlags(0)

	var circ *circuit.Circuit
	var input []uint
	var err error

	if len(*fCirc) > 0 {
		circ, err = loadCircuit(*fCirc)
		if err != nil {
			log.Fatalf("failed to parse circuit file '%s': %v", *fCirc, err)
		}
		input, err = parseBits(*fInput)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		if *fBits <= 0 || *fBits > 64 {
			log.Fatalf("invalid comparator size %d", *fBits)
		}
		circ = circuit.NewGtComparator(*fBits)
		input = append(circuit.Serialize(*fX, *fBits),
			circuit.Serialize(*fY, *fBits)...)
	}
	if *fDump {
		circ.Dump(os.Stdout)
	}
	if len(*fOut) > 0 {
		if err := writeCircuit(*fOut, circ); err != nil {
			log.Fatal(err)
		}
		return
	}

	var schemes []*garble.Scheme
	if *fScheme == "all" {
		schemes = garble.Schemes
	} else {
		scheme, err := garble.SchemeByName(*fScheme)
		if err != nil {
			log.Fatal(err)
		}
		schemes = append(schemes, scheme)
	}

	cfg := new(env.Config)
	if len(*fSeed) > 0 {
		cfg.Rand, err = env.NewSeededRand([]byte(*fSeed))
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Circuit: %v\n", circ)
	expected, err := circ.Compute(input)
	if err != nil {
		log.Fatal(err)
	}

	for _, scheme := range schemes {
		result, err := run(cfg, circ, scheme, input, *fTiming)
		if err != nil {
			log.Fatalf("%s: %v", scheme, err)
		}
		fmt.Printf("%s:\t%s\n", scheme, formatBits(result))
		for i := range expected {
			if result[i] != expected[i] {
				log.Fatalf("%s: output %d: got %d, expected %d",
					scheme, i, result[i], expected[i])
			}
		}
	}
}

func run(cfg *env.Config, circ *circuit.Circuit, scheme *garble.Scheme,
	input []uint, timing bool) ([]uint, error) {

	t := garble.NewTiming()

	if verbose {
		fmt.Printf(" - Garbling with %s...\n", scheme)
	}
	garbled, err := garble.Garble(cfg, circ, scheme)
	if err != nil {
		return nil, err
	}
	stats := garbled.Stats()
	t.Sample("Garble", []string{stats.Bytes.String()})

	labels, err := garbled.Encode(input)
	if err != nil {
		return nil, err
	}
	t.Sample("Encode", []string{
		garble.FileSize(len(labels) * (label.Size + 1)).String(),
	})

	if verbose {
		fmt.Printf(" - Evaluating %d tables, %d rows...\n",
			stats.Tables, stats.Rows)
	}
	result, err := garble.Evaluate(circ, scheme, labels, garbled.Outputs,
		garbled.Tables)
	if err != nil {
		return nil, err
	}
	t.Sample("Eval", nil)

	if timing {
		t.Print(os.Stdout, stats)
	}
	return result, nil
}

func loadCircuit(file string) (*circuit.Circuit, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return circuit.Parse(f)
}

func writeCircuit(file string, circ *circuit.Circuit) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := circ.Marshal(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseBits(input string) ([]uint, error) {
	var result []uint
	for _, r := range strings.TrimSpace(input) {
		switch r {
		case '0':
			result = append(result, 0)
		case '1':
			result = append(result, 1)
		case '_', ' ':
		default:
			return nil, errors.Wrapf(circuit.ErrInvalidInput,
				"invalid input bit '%c'", r)
		}
	}
	return result, nil
}

func formatBits(bits []uint) string {
	var sb strings.Builder
	for _, bit := range bits {
		fmt.Fprintf(&sb, "%d", bit)
	}
	if len(bits) > 1 && len(bits) <= 64 {
		fmt.Fprintf(&sb, " (%d)", circuit.Deserialize(bits))
	}
	return sb.String()
}
