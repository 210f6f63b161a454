package orderview

import (
	"testing"
	"time"

	"furniture_store/internal/models"

	"github.com/stretchr/testify/require"
)

func sampleOrders() []models.Order {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Order{
		{ID: 1, OrderCode: "ORD-A", Status: string(models.OrderPending), TotalAmount: 300, OrderDate: base},
		{ID: 2, OrderCode: "ORD-B", Status: string(models.OrderToShip), TotalAmount: 100, OrderDate: base.Add(24 * time.Hour)},
		{ID: 3, OrderCode: "ORD-C", Status: string(models.OrderPending), TotalAmount: 200, OrderDate: base.Add(48 * time.Hour)},
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := Reduce(NewState(), OrdersLoaded{Orders: sampleOrders()})

	next := Reduce(state, FilterChanged{Status: models.OrderPending})
	require.Equal(t, models.OrderStatus(""), state.StatusFilter)
	require.Equal(t, models.OrderPending, next.StatusFilter)

	next = Reduce(state, OrderUpdated{Order: models.Order{ID: 1, Status: string(models.OrderToShip)}})
	require.Equal(t, string(models.OrderPending), state.Orders[0].Status)
	require.Equal(t, string(models.OrderToShip), next.Orders[0].Status)
}

func TestVisibleFiltersByStatus(t *testing.T) {
	state := Reduce(NewState(), OrdersLoaded{Orders: sampleOrders()})
	state = Reduce(state, FilterChanged{Status: models.OrderPending})

	visible := state.Visible()
	require.Len(t, visible, 2)
	for _, o := range visible {
		require.Equal(t, string(models.OrderPending), o.Status)
	}

	// Clearing the filter restores everything
	state = Reduce(state, FilterChanged{Status: ""})
	require.Len(t, state.Visible(), 3)
}

func TestVisibleSorting(t *testing.T) {
	state := Reduce(NewState(), OrdersLoaded{Orders: sampleOrders()})

	// Default: newest first
	visible := state.Visible()
	require.Equal(t, uint(3), visible[0].ID)
	require.Equal(t, uint(1), visible[2].ID)

	state = Reduce(state, SortChanged{Field: SortByDate, Ascending: true})
	visible = state.Visible()
	require.Equal(t, uint(1), visible[0].ID)
	require.Equal(t, uint(3), visible[2].ID)

	state = Reduce(state, SortChanged{Field: SortByTotal, Ascending: true})
	visible = state.Visible()
	require.Equal(t, float64(100), visible[0].TotalAmount)
	require.Equal(t, float64(300), visible[2].TotalAmount)

	state = Reduce(state, SortChanged{Field: SortByTotal, Ascending: false})
	visible = state.Visible()
	require.Equal(t, float64(300), visible[0].TotalAmount)
	require.Equal(t, float64(100), visible[2].TotalAmount)
}

func TestOrderUpdatedReplacesSingleOrder(t *testing.T) {
	state := Reduce(NewState(), OrdersLoaded{Orders: sampleOrders()})

	updated := models.Order{ID: 2, OrderCode: "ORD-B", Status: string(models.OrderToReceive), TotalAmount: 100}
	state = Reduce(state, OrderUpdated{Order: updated})

	require.Equal(t, string(models.OrderToReceive), state.Orders[1].Status)
	require.Equal(t, string(models.OrderPending), state.Orders[0].Status)

	// Unknown order ids are ignored
	before := state.Orders
	state = Reduce(state, OrderUpdated{Order: models.Order{ID: 99}})
	require.Equal(t, before, state.Orders)
}

func TestMutationConfirm(t *testing.T) {
	order := &models.Order{ID: 1, Status: string(models.OrderPending)}

	m := Begin(order)
	require.Equal(t, MutationPending, m.State())

	order.Status = string(models.OrderToShip)
	authoritative := &models.Order{ID: 1, Status: string(models.OrderToShip), IsLocked: false}
	m.Confirm(authoritative)

	require.Equal(t, MutationConfirmed, m.State())
	require.Equal(t, string(models.OrderToShip), order.Status)
}

func TestMutationRollback(t *testing.T) {
	order := &models.Order{ID: 1, Status: string(models.OrderPending), TotalAmount: 250}

	m := Begin(order)
	order.Status = string(models.OrderToShip)
	m.Rollback()

	require.Equal(t, MutationRolledBack, m.State())
	require.Equal(t, string(models.OrderPending), order.Status)
	require.Equal(t, float64(250), order.TotalAmount)
}

func TestMutationSettlesOnce(t *testing.T) {
	order := &models.Order{ID: 1, Status: string(models.OrderPending)}

	m := Begin(order)
	order.Status = string(models.OrderToShip)
	m.Confirm(nil)
	require.Equal(t, MutationConfirmed, m.State())

	// Late rollback is a no-op
	m.Rollback()
	require.Equal(t, MutationConfirmed, m.State())
	require.Equal(t, string(models.OrderToShip), order.Status)

	require.Equal(t, string(models.OrderPending), m.Snapshot().Status)
}
