// Package randsrc wraps lukechampine.com/frand behind a small
// interface so that dice rolling and board generation can be given a
// deterministic, seeded source in tests while defaulting to frand's
// global CSPRNG in production.
package randsrc

import (
	"crypto/sha256"

	"lukechampine.com/frand"
)

// Source is the subset of frand's API that dice/generator need.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// global uses frand's package-level functions, which draw from an
// unseeded, continuously-reseeded CSPRNG.
type global struct{}

func (global) Intn(n int) int                     { return frand.Intn(n) }
func (global) Shuffle(n int, swap func(i, j int)) { frand.Shuffle(n, swap) }

// Global is the default, non-deterministic Source.
var Global Source = global{}

// Seeded returns a deterministic Source for tests, derived from the
// given seed bytes via frand's custom RNG constructor. The seed may be
// any length; it is hashed down to the 32-byte key frand requires.
func Seeded(seed []byte) Source {
	key := sha256.Sum256(seed)
	return frand.NewCustom(key[:], 32, 20)
}
