package engine

import (
	"math"
	"sync"
)

// Policy decides how Activate treats a purchase the ledger cannot cover
type Policy uint8

const (
	// PolicyRejectUnaffordable applies nothing and reports false
	PolicyRejectUnaffordable Policy = iota
	// PolicyAllowDebt always applies and debits unconditionally, amounts may go negative
	PolicyAllowDebt
)

// String returns the policy name shown in the status bar
func (p Policy) String() string {
	switch p {
	case PolicyAllowDebt:
		return "debt"
	default:
		return "strict"
	}
}

// Option configures an Engine at construction
type Option func(*Engine)

// WithPolicy selects the purchase policy
func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// Snapshot is a value copy of engine state for readers outside the loop
type Snapshot struct {
	Amounts    Ledger
	Affordable [KindCount]bool
	Version    uint64
	Prestiges  int
}

// Engine owns the ledger and applies production, purchases and prestige resets
// All methods are safe for concurrent use; callers are expected to serialize anyway
type Engine struct {
	mu sync.Mutex

	ledger Ledger
	policy Policy

	// version advances on every mutation, readers redraw when it moves
	version   uint64
	prestiges int
}

// NewEngine creates an engine with an all-zero ledger
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the configured purchase policy
func (e *Engine) Policy() Policy {
	return e.policy
}

// Tick advances continuous production by elapsed seconds
// Any AGI held triggers a full reset instead of production
func (e *Engine) Tick(elapsed float64) {
	if elapsed < 0 || math.IsNaN(elapsed) {
		elapsed = 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ledger[PrestigeKind] > 0 {
		e.ledger.Clear()
		e.prestiges++
		e.version++
		return
	}

	if elapsed == 0 {
		return
	}

	// Producers are read from the pre-tick ledger so chain order cannot cascade
	before := e.ledger
	changed := false
	for _, pair := range productionChain {
		gain := before[pair[0]] * elapsed
		if gain == 0 {
			continue
		}
		e.ledger[pair[1]] += gain
		changed = true
	}
	if changed {
		e.version++
	}
}

// Activate applies one purchase of k: +1 of k, minus its cost
// Returns false when nothing was applied
func (e *Engine) Activate(k Kind) bool {
	if !k.Valid() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	rule := rules[k]
	if rule.HasCost && e.policy == PolicyRejectUnaffordable && !e.ledger.Covers(rule.Cost) {
		return false
	}

	e.ledger[k]++
	if rule.HasCost {
		e.ledger[rule.Cost.Kind] -= rule.Cost.Amount
	}
	e.version++
	return true
}

// Amount returns the current amount of k
func (e *Engine) Amount(k Kind) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Get(k)
}

// IsAffordable reports whether one activation of k can be paid for now
func (e *Engine) IsAffordable(k Kind) bool {
	if !k.Valid() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.affordableLocked(k)
}

func (e *Engine) affordableLocked(k Kind) bool {
	rule := rules[k]
	if !rule.HasCost {
		return true
	}
	return e.ledger.Covers(rule.Cost)
}

// Version returns the mutation counter
func (e *Engine) Version() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.version
}

// Prestiges returns how many resets AGI has triggered
func (e *Engine) Prestiges() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prestiges
}

// Snapshot copies amounts and affordability under one lock
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		Amounts:   e.ledger,
		Version:   e.version,
		Prestiges: e.prestiges,
	}
	for i := range s.Affordable {
		s.Affordable[i] = e.affordableLocked(Kind(i))
	}
	return s
}

// Set overwrites the amount of k, used for seeding tests and debug starts
func (e *Engine) Set(k Kind, amount float64) {
	if !k.Valid() {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.ledger[k] = amount
	e.version++
}

// Reset zeroes the ledger without counting a prestige
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ledger.Clear()
	e.version++
}
