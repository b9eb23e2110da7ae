package simulator

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Chance decides the randomised branches of the simulator.
type Chance interface {
	// Outcome reports true with the given probability in [0, 1].
	Outcome(probability float64) bool
}

// RandomChance draws from a seedable PCG source. Safe for concurrent use.
type RandomChance struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomChance seeds the source with seed, or from the clock when seed is zero.
func NewRandomChance(seed uint64) *RandomChance {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomChance{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (c *RandomChance) Outcome(probability float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.Float64() < probability
}

// FixedChance always returns its own value.
type FixedChance bool

func (c FixedChance) Outcome(float64) bool {
	return bool(c)
}
