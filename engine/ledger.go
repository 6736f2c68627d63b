package engine

// Ledger holds the amount of every tier
// Fixed-size array makes every kind present by construction
type Ledger [KindCount]float64

// Get returns the amount of k, 0 for invalid kinds
func (l *Ledger) Get(k Kind) float64 {
	if !k.Valid() {
		return 0
	}
	return l[k]
}

// Add adds delta to k, ignoring invalid kinds
func (l *Ledger) Add(k Kind, delta float64) {
	if !k.Valid() {
		return
	}
	l[k] += delta
}

// Clear zeroes every tier
func (l *Ledger) Clear() {
	*l = Ledger{}
}

// Covers reports whether the ledger holds at least c
func (l *Ledger) Covers(c Cost) bool {
	return l.Get(c.Kind) >= c.Amount
}
