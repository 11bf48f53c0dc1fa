//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/yao/circuit"
)

func TestParseBits(t *testing.T) {
	bits, err := parseBits(" 01_10 ")
	if err != nil {
		t.Fatalf("parseBits failed: %v", err)
	}
	expected := []uint{0, 1, 1, 0}
	if len(bits) != len(expected) {
		t.Fatalf("got %v, expected %v", bits, expected)
	}
	for i := range expected {
		if bits[i] != expected[i] {
			t.Fatalf("got %v, expected %v", bits, expected)
		}
	}
	if _, err := parseBits("012"); !errors.Is(err, circuit.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFormatBits(t *testing.T) {
	if s := formatBits([]uint{1}); s != "1" {
		t.Errorf("formatBits: got %q", s)
	}
	if s := formatBits([]uint{1, 1, 0}); s != "110 (6)" {
		t.Errorf("formatBits: got %q", s)
	}
}
