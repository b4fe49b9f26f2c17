package collections

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// randomReferenceGenerator issues references shaped like ALR/2026/08/4821:
// organization code, year, month, random 4-digit suffix. References are
// independent per document; no global uniqueness is guaranteed.
type randomReferenceGenerator struct {
	orgCode string
	now     Clock
	mu      sync.Mutex
	rng     *rand.Rand
}

// NewReferenceGenerator creates the production reference generator
func NewReferenceGenerator(orgCode string) ReferenceGenerator {
	return &randomReferenceGenerator{
		orgCode: orgCode,
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next returns a fresh reference number
func (g *randomReferenceGenerator) Next() string {
	g.mu.Lock()
	suffix := 1000 + g.rng.Intn(9000)
	g.mu.Unlock()

	now := g.now()
	return fmt.Sprintf("%s/%d/%02d/%04d", g.orgCode, now.Year(), int(now.Month()), suffix)
}
