package services

import (
	"math/rand/v2"
	"sync"
)

// Random is the source used for decoration and placeholder values.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// lockedRand makes a *rand.Rand safe for the per-category goroutines.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRandom returns a goroutine-safe source with reproducible output.
func NewSeededRandom(seed uint64) Random {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func newRandom() Random {
	return &lockedRand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// intBetween returns a value in [min, max].
func intBetween(r Random, min, max int) int {
	return min + r.IntN(max-min+1)
}
