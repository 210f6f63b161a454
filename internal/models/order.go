package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	OrderCode     string         `json:"order_code" gorm:"unique;not null"`
	UserID        uint           `json:"user_id" gorm:"not null;index"`
	Items         []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	Status        string         `json:"status" gorm:"default:'Pending'"` // Pending, To Ship, To Receive, Completed, Cancelled
	PaymentMethod string         `json:"payment_method" gorm:"not null"`  // gcash, cod
	TotalAmount   float64        `json:"total_amount" gorm:"not null"`
	OrderDate     time.Time      `json:"order_date" gorm:"not null"`
	IsLocked      bool           `json:"is_locked" gorm:"default:false"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderToShip    OrderStatus = "To Ship"
	OrderToReceive OrderStatus = "To Receive"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

type OrderAction string

const (
	ActionApprove       OrderAction = "approve"
	ActionCancel        OrderAction = "cancel"
	ActionMarkReceiving OrderAction = "mark_receiving"
	ActionReject        OrderAction = "reject"
	ActionMarkCompleted OrderAction = "mark_completed"
	ActionReturn        OrderAction = "return"
	ActionReopen        OrderAction = "reopen"
)

// statusTransitions maps each status to its allowed outbound actions and the
// status each action produces.
var statusTransitions = map[OrderStatus]map[OrderAction]OrderStatus{
	OrderPending: {
		ActionApprove: OrderToShip,
		ActionCancel:  OrderCancelled,
	},
	OrderToShip: {
		ActionMarkReceiving: OrderToReceive,
		ActionReject:        OrderPending,
	},
	OrderToReceive: {
		ActionMarkCompleted: OrderCompleted,
		ActionReturn:        OrderPending,
	},
	OrderCompleted: {
		ActionReopen: OrderPending,
	},
	OrderCancelled: {
		ActionReopen: OrderPending,
	},
}

// NextStatus returns the status produced by applying action to current.
// The second return value is false when the action is not a valid outbound
// edge for the current status.
func NextStatus(current OrderStatus, action OrderAction) (OrderStatus, bool) {
	actions, ok := statusTransitions[current]
	if !ok {
		return "", false
	}
	next, ok := actions[action]
	return next, ok
}

// ActionsFor returns the allowed outbound actions for a status.
func ActionsFor(current OrderStatus) []OrderAction {
	actions := make([]OrderAction, 0, len(statusTransitions[current]))
	for action := range statusTransitions[current] {
		actions = append(actions, action)
	}
	return actions
}

// ValidStatus reports whether s is one of the five order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderToShip, OrderToReceive, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}
