package orderview

import (
	"furniture_store/internal/models"
)

// MutationState tracks the outcome of an optimistic order mutation.
type MutationState int

const (
	MutationPending MutationState = iota
	MutationConfirmed
	MutationRolledBack
)

// Mutation wraps an optimistic in-memory change to an order. Begin snapshots
// the order before the caller mutates it; Confirm overwrites it with the
// store's authoritative copy; Rollback restores the snapshot. A mutation
// settles exactly once.
type Mutation struct {
	order    *models.Order
	snapshot models.Order
	state    MutationState
}

func Begin(order *models.Order) *Mutation {
	return &Mutation{
		order:    order,
		snapshot: *order,
		state:    MutationPending,
	}
}

// Confirm replaces the local order with the authoritative store response.
func (m *Mutation) Confirm(authoritative *models.Order) {
	if m.state != MutationPending {
		return
	}
	if authoritative != nil {
		*m.order = *authoritative
	}
	m.state = MutationConfirmed
}

// Rollback restores the order to its pre-mutation snapshot.
func (m *Mutation) Rollback() {
	if m.state != MutationPending {
		return
	}
	*m.order = m.snapshot
	m.state = MutationRolledBack
}

func (m *Mutation) State() MutationState {
	return m.state
}

// Snapshot returns the order as it was when the mutation began.
func (m *Mutation) Snapshot() models.Order {
	return m.snapshot
}
