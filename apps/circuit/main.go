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

	"github.com/markkurossi/yao/circuit"
	"github.com/markkurossi/yao/garble"
)

func main() {
	fBits := flag.Int("b", 0, "Create a comparator circuit of the size")
	fDot := flag.Bool("dot", false, "Print graphviz dot output")
	fStats := flag.Bool("stats", false, "Print garbled table statistics")
	flag.Parse()

	log.SetFlags(0)

	var circuits []*circuit.Circuit
	if *fBits > 0 {
		circuits = append(circuits, circuit.NewGtComparator(*fBits))
	}
	for _, file := range flag.Args() {
		f, err := os.Open(file)
		if err != nil {
			log.Fatal(err)
		}
		c, err := circuit.Parse(f)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v", file, err)
		}
		circuits = append(circuits, c)
	}

	for _, c := range circuits {
		if *fDot {
			c.Dot(os.Stdout)
			continue
		}
		fmt.Printf("circuit %s\n", c)
		if *fStats {
			printStats(c)
		}
	}
}

func printStats(c *circuit.Circuit) {
	stats := c.Stats()
	for _, scheme := range garble.Schemes {
		rows := scheme.TableRows(circuit.AND)*stats[circuit.AND] +
			scheme.TableRows(circuit.XOR)*stats[circuit.XOR]
		size := garble.ColoredRowSize
		if !scheme.Permute {
			size = garble.TaggedRowSize
		}
		fmt.Printf(" - %s:\t%d rows, %s\n", scheme, rows,
			garble.FileSize(rows*size))
	}
}
