package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextStatusValidEdges(t *testing.T) {
	tests := []struct {
		name    string
		current OrderStatus
		action  OrderAction
		want    OrderStatus
	}{
		{"approve pending", OrderPending, ActionApprove, OrderToShip},
		{"cancel pending", OrderPending, ActionCancel, OrderCancelled},
		{"mark receiving", OrderToShip, ActionMarkReceiving, OrderToReceive},
		{"reject to ship", OrderToShip, ActionReject, OrderPending},
		{"mark completed", OrderToReceive, ActionMarkCompleted, OrderCompleted},
		{"return to receive", OrderToReceive, ActionReturn, OrderPending},
		{"reopen completed", OrderCompleted, ActionReopen, OrderPending},
		{"reopen cancelled", OrderCancelled, ActionReopen, OrderPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextStatus(tt.current, tt.action)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNextStatusRejectsInvalidEdges(t *testing.T) {
	tests := []struct {
		name    string
		current OrderStatus
		action  OrderAction
	}{
		{"no direct completion from pending", OrderPending, ActionMarkCompleted},
		{"no approve from to ship", OrderToShip, ActionApprove},
		{"no cancel from to receive", OrderToReceive, ActionCancel},
		{"no approve from completed", OrderCompleted, ActionApprove},
		{"no return from cancelled", OrderCancelled, ActionReturn},
		{"unknown action", OrderPending, OrderAction("teleport")},
		{"unknown status", OrderStatus("Lost"), ActionApprove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := NextStatus(tt.current, tt.action)
			require.False(t, ok)
		})
	}
}

func TestActionsFor(t *testing.T) {
	require.ElementsMatch(t, []OrderAction{ActionApprove, ActionCancel}, ActionsFor(OrderPending))
	require.ElementsMatch(t, []OrderAction{ActionMarkReceiving, ActionReject}, ActionsFor(OrderToShip))
	require.ElementsMatch(t, []OrderAction{ActionMarkCompleted, ActionReturn}, ActionsFor(OrderToReceive))
	require.ElementsMatch(t, []OrderAction{ActionReopen}, ActionsFor(OrderCompleted))
	require.ElementsMatch(t, []OrderAction{ActionReopen}, ActionsFor(OrderCancelled))
	require.Empty(t, ActionsFor(OrderStatus("Lost")))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderToShip, OrderToReceive, OrderCompleted, OrderCancelled} {
		require.True(t, ValidStatus(s))
	}
	require.False(t, ValidStatus(OrderStatus("Shipped")))
	require.False(t, ValidStatus(OrderStatus("")))
}
