//
// bits.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package circuit

// Serialize returns the nbits least significant bits of x, most
// significant bit first.
func Serialize(x uint64, nbits int) []uint {
	result := make([]uint, nbits)
	for i := 0; i < nbits; i++ {
		shift := nbits - 1 - i
		if shift < 64 {
			result[i] = uint(x>>shift) & 1
		}
	}
	return result
}

// Deserialize converts the bits, most significant bit first, into an
// integer.
func Deserialize(bits []uint) uint64 {
	var x uint64
	for _, bit := range bits {
		x <<= 1
		x |= uint64(bit & 1)
	}
	return x
}
