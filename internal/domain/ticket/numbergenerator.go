package ticket

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// NumberGenerator produces human-readable ticket numbers.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultNumberGenerator issues MT-YYYYMMDD-NNNN numbers with a per-day
// in-process counter. Uniqueness across restarts is enforced by the unique
// index on the tickets table; a collision surfaces as a duplicate error.
type DefaultNumberGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewDefaultNumberGenerator() *DefaultNumberGenerator {
	return &DefaultNumberGenerator{
		counters: make(map[string]int),
	}
}

func (g *DefaultNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateKey := time.Now().Format("20060102")
	g.counters[dateKey]++

	return fmt.Sprintf("MT-%s-%04d", dateKey, g.counters[dateKey]), nil
}
