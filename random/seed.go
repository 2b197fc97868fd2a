// Package random builds the seeded random sources handed to the engine.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewSource returns a PCG-backed generator. The same seed always yields the
// same sequence of rolls.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Fixed replays a preset sequence of values and then panics. Each value is
// returned as-is from Intn, so a die roll of r is written as r-1.
type Fixed struct {
	values []int
	next   int
}

// NewFixedRolls builds a Fixed source from 1-based die rolls.
func NewFixedRolls(rolls ...int) *Fixed {
	values := make([]int, len(rolls))
	for i, r := range rolls {
		values[i] = r - 1
	}
	return &Fixed{values: values}
}

func (f *Fixed) Intn(n int) int {
	if f.next >= len(f.values) {
		panic("random: fixed source exhausted")
	}
	v := f.values[f.next]
	f.next++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("random: fixed value %d out of range [0, %d)", v, n))
	}
	return v
}

// Used returns how many values have been consumed.
func (f *Fixed) Used() int {
	return f.next
}
