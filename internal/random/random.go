// Package random picks codes for driving loops.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source draws random values. It is safe for concurrent use.
type Source struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a Source seeded with seed. Equal seeds give equal sequences.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewUnseeded returns a Source seeded from the runtime's random state.
func NewUnseeded() *Source {
	return &Source{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Float returns a value in [-1, 1).
func (s *Source) Float() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (s.r.Float32() - 0.5) * 2
}

// Int returns any int32.
func (s *Source) Int() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int32(s.r.Uint32())
}

// IntBetween returns a value in [min, max). It returns min when max <= min.
func (s *Source) IntBetween(min, max int32) int32 {
	if max <= min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + int32(s.r.Int64N(int64(max)-int64(min)))
}

// FromList returns a uniformly chosen element of list, or 0 if list is empty.
func (s *Source) FromList(list []int32) int32 {
	if len(list) == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return list[s.r.IntN(len(list))]
}

var global = NewUnseeded()

// Float returns a value in [-1, 1) from the package source.
func Float() float32 { return global.Float() }

// Int returns any int32 from the package source.
func Int() int32 { return global.Int() }

// IntBetween returns a value in [min, max) from the package source.
func IntBetween(min, max int32) int32 { return global.IntBetween(min, max) }

// FromList returns an element of list from the package source, or 0 if list is empty.
func FromList(list []int32) int32 { return global.FromList(list) }
