//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements the global environment for the garbling
// engine.
package env

import (
	"crypto/rand"
	"io"
)

// Config defines the configuration for garbling and evaluation. Config
// must not be modified after being passed to the garbler. It is safe
// for concurrent use as the garbler does not modify it.
type Config struct {
	// Rand is the source of entropy for wire labels, the free-XOR
	// offset, and table shuffles. If unset, crypto/rand.Reader is
	// used.
	Rand io.Reader
}

// GetRandom returns the source of entropy for garbling. A nil config
// uses crypto/rand.Reader.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}
