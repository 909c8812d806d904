package billing

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// InvoiceNumberGenerator produces human-readable invoice numbers.
type InvoiceNumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultInvoiceNumberGenerator issues INV-YYYYMMDD-NNNN numbers with a
// per-day in-process counter, backed by the unique index on the invoices
// table.
type DefaultInvoiceNumberGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewDefaultInvoiceNumberGenerator() *DefaultInvoiceNumberGenerator {
	return &DefaultInvoiceNumberGenerator{
		counters: make(map[string]int),
	}
}

func (g *DefaultInvoiceNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateKey := time.Now().Format("20060102")
	g.counters[dateKey]++

	return fmt.Sprintf("INV-%s-%04d", dateKey, g.counters[dateKey]), nil
}
