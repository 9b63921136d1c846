package request

import (
	"math/rand"
	"sync"
	"time"
)

// Sampler draws synthetic request queues without replacement: no cylinder
// repeats within one draw. It is safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler creates a sampler from the given seed. Seed 0 means seed from
// the clock.
func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Draw returns count distinct cylinders in [0, diskSize-1], in draw order.
// Callers validate count against diskSize first; see Validator.Sample.
func (s *Sampler) Draw(count, diskSize int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Perm(diskSize)[:count]
}
