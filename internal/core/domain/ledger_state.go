package domain

// LedgerState is the entire durable state of the application: months keyed by
// id and budgets keyed by category. Display order is always recomputed by
// sorting, so map iteration order never matters.
type LedgerState struct {
	Months  map[string]Month  `json:"months"`
	Budgets map[string]Budget `json:"budgets"`
}

// NewLedgerState returns an empty state with both collections allocated.
func NewLedgerState() LedgerState {
	return LedgerState{
		Months:  make(map[string]Month),
		Budgets: make(map[string]Budget),
	}
}

// Clone returns a deep copy of the state, including every month's expense
// sequence.
func (s LedgerState) Clone() LedgerState {
	out := NewLedgerState()
	for id, m := range s.Months {
		out.Months[id] = m.Clone()
	}
	for category, b := range s.Budgets {
		out.Budgets[category] = b
	}
	return out
}
