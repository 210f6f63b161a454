package orderview

import (
	"sort"
	"strings"

	"furniture_store/internal/models"
)

// State is an immutable snapshot of the admin orders view: the loaded orders
// plus the active status filter and sort configuration. New states are
// produced only through Reduce.
type State struct {
	Orders        []models.Order
	StatusFilter  models.OrderStatus // empty means all statuses
	SortField     string             // date, total, status
	SortAscending bool
}

const (
	SortByDate   = "date"
	SortByTotal  = "total"
	SortByStatus = "status"
)

// Action mutates the view state through Reduce.
type Action interface{ isViewAction() }

// OrdersLoaded replaces the order list with a fresh store response.
type OrdersLoaded struct{ Orders []models.Order }

// FilterChanged sets the status filter; empty clears it.
type FilterChanged struct{ Status models.OrderStatus }

// SortChanged sets the sort field and direction.
type SortChanged struct {
	Field     string
	Ascending bool
}

// OrderUpdated replaces a single order in place after a confirmed mutation.
type OrderUpdated struct{ Order models.Order }

func (OrdersLoaded) isViewAction()  {}
func (FilterChanged) isViewAction() {}
func (SortChanged) isViewAction()   {}
func (OrderUpdated) isViewAction()  {}

// NewState returns the default view: all statuses, newest orders first.
func NewState() State {
	return State{SortField: SortByDate, SortAscending: false}
}

// Reduce applies an action to a state and returns the resulting state. The
// input state is never modified.
func Reduce(state State, action Action) State {
	next := state
	next.Orders = make([]models.Order, len(state.Orders))
	copy(next.Orders, state.Orders)

	switch a := action.(type) {
	case OrdersLoaded:
		next.Orders = make([]models.Order, len(a.Orders))
		copy(next.Orders, a.Orders)
	case FilterChanged:
		next.StatusFilter = a.Status
	case SortChanged:
		next.SortField = a.Field
		next.SortAscending = a.Ascending
	case OrderUpdated:
		for i := range next.Orders {
			if next.Orders[i].ID == a.Order.ID {
				next.Orders[i] = a.Order
				break
			}
		}
	}
	return next
}

// Visible returns the orders matching the current filter, in sort order.
func (s State) Visible() []models.Order {
	visible := make([]models.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		if s.StatusFilter != "" && models.OrderStatus(o.Status) != s.StatusFilter {
			continue
		}
		visible = append(visible, o)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		var less bool
		switch s.SortField {
		case SortByTotal:
			less = visible[i].TotalAmount < visible[j].TotalAmount
		case SortByStatus:
			less = strings.Compare(visible[i].Status, visible[j].Status) < 0
		default:
			less = visible[i].OrderDate.Before(visible[j].OrderDate)
		}
		if !s.SortAscending {
			return !less && !equalField(visible[i], visible[j], s.SortField)
		}
		return less
	})
	return visible
}

func equalField(a, b models.Order, field string) bool {
	switch field {
	case SortByTotal:
		return a.TotalAmount == b.TotalAmount
	case SortByStatus:
		return a.Status == b.Status
	default:
		return a.OrderDate.Equal(b.OrderDate)
	}
}
