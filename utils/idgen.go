package utils

import (
	"fmt"
	"sync"
)

// EntityKind identifies which counter an ID is drawn from.
type EntityKind string

const (
	KindCustomer  EntityKind = "customer"
	KindBooking   EntityKind = "booking"
	KindPayment   EntityKind = "payment"
	KindComplaint EntityKind = "complaint"
	KindEmployee  EntityKind = "employee"
)

var idPrefixes = map[EntityKind]string{
	KindCustomer:  "BG-CUST",
	KindBooking:   "BG-BK",
	KindPayment:   "BG-PAY",
	KindComplaint: "BG-CMP",
	KindEmployee:  "BG-EMP",
}

// IDGenerator issues unique, human-readable IDs per entity kind
// (e.g. BG-CUST-001). Counters start at zero and are incremented
// before formatting. Sequences past 999 widen to four or more digits
// rather than truncating. Safe for concurrent use.
type IDGenerator struct {
	mu       sync.Mutex
	counters map[EntityKind]int
}

// NewIDGenerator returns a generator with all counters at zero.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{counters: make(map[EntityKind]int)}
}

// Next issues the next ID for the given entity kind.
func (g *IDGenerator) Next(kind EntityKind) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counters[kind]++
	return fmt.Sprintf("%s-%03d", idPrefixes[kind], g.counters[kind])
}

// Seed sets the counter for a kind so the next ID issued is n+1.
// Used when records already exist in the database.
func (g *IDGenerator) Seed(kind EntityKind, n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counters[kind] = n
}
