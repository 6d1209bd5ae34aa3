// File: facade/config.go
// License: Apache-2.0

package facade

import (
	"log"
	"math/rand"
)

// Config holds parameters immutable per engine instance.
type Config struct {
	Logger *log.Logger // destination for resolution-failure diagnostics
	Rand   *rand.Rand  // source for RandomSample; nil uses the global source
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Logger: log.Default(),
		Rand:   nil,
	}
}
