package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"furniture_store/internal/history"
	"furniture_store/internal/models"
	"furniture_store/internal/orderview"
	"furniture_store/internal/repository"

	"github.com/google/uuid"
)

// Notifier sends order status updates to customers. Implemented by
// pkg/notify.Client; a nil notifier disables notifications.
type Notifier interface {
	Enabled() bool
	SendStatusUpdate(phone, orderCode, status string) error
}

// CheckoutItem is one requested line at checkout.
type CheckoutItem struct {
	ProductID uint
	Quantity  int
}

type OrderService interface {
	Checkout(userID uint, items []CheckoutItem, paymentMethod string) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetOrdersByUser(userID uint) ([]models.Order, error)
	GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error)
	GetAllOrders() ([]models.Order, error)
	ApplyTransition(orderID uint, action models.OrderAction) (*models.Order, error)
	CancelByOwner(orderID, userID uint) (*models.Order, error)
	Reorder(orderID, userID uint) (*models.Order, error)
	ToggleLock(orderID uint) (*models.Order, error)
	History() []history.Entry
	Undo(entryID int64) (*models.Order, error)
	DeleteOrder(id uint) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	log         *history.Log
	notifier    Notifier
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	log *history.Log,
	notifier Notifier,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		log:         log,
		notifier:    notifier,
	}
}

func (s *orderService) Checkout(userID uint, items []CheckoutItem, paymentMethod string) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		OrderCode:     newOrderCode(),
		UserID:        userID,
		Status:        string(models.OrderPending),
		PaymentMethod: paymentMethod,
		OrderDate:     time.Now(),
	}

	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, asNotFound(err, ErrProductNotFound)
		}
		if !product.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, product.Name)
		}
		if product.Stock < item.Quantity {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
		}

		order.Items = append(order.Items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  float64(item.Quantity) * product.Price,
		})
		order.TotalAmount += float64(item.Quantity) * product.Price
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Reserve stock after the order is durable
	for _, item := range order.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			continue
		}
		product.Stock -= item.Quantity
		if err := s.productRepo.Update(product); err != nil {
			log.Printf("Warning: failed to update stock for product %d: %v", product.ID, err)
		}
	}

	return order, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err, ErrOrderNotFound)
	}
	return order, nil
}

func (s *orderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

func (s *orderService) GetOrdersByStatus(status models.OrderStatus) ([]models.Order, error) {
	return s.orderRepo.GetByStatus(status)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// ApplyTransition moves an order along one edge of the status table. The lock
// gate is checked first, then the edge is validated, then the store write is
// issued; the local copy is rolled back if the store rejects the write. A
// successful operator transition is recorded for undo.
func (s *orderService) ApplyTransition(orderID uint, action models.OrderAction) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, asNotFound(err, ErrOrderNotFound)
	}
	if order.IsLocked {
		return nil, ErrOrderLocked
	}

	from := models.OrderStatus(order.Status)
	next, ok := models.NextStatus(from, action)
	if !ok {
		return nil, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, from)
	}

	mutation := orderview.Begin(order)
	order.Status = string(next)

	updated, err := s.orderRepo.UpdateStatus(order.ID, next)
	if err != nil {
		mutation.Rollback()
		return nil, fmt.Errorf("failed to update order status: %w", asNotFound(err, ErrOrderNotFound))
	}
	mutation.Confirm(updated)

	s.log.Record(order.ID, order.OrderCode, from, next)
	s.notifyStatusChange(order)

	return order, nil
}

// CancelByOwner lets the owning customer cancel an order that has not yet
// shipped. Owner cancellations do not enter the operator history log.
func (s *orderService) CancelByOwner(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, asNotFound(err, ErrOrderNotFound)
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	if order.IsLocked {
		return nil, ErrOrderLocked
	}

	from := models.OrderStatus(order.Status)
	if from != models.OrderPending && from != models.OrderToShip {
		return nil, ErrCancelNotAllowed
	}

	mutation := orderview.Begin(order)
	order.Status = string(models.OrderCancelled)

	updated, err := s.orderRepo.UpdateStatus(order.ID, models.OrderCancelled)
	if err != nil {
		mutation.Rollback()
		return nil, fmt.Errorf("failed to cancel order: %w", asNotFound(err, ErrOrderNotFound))
	}
	mutation.Confirm(updated)

	s.notifyStatusChange(order)
	return order, nil
}

// Reorder clones a finished order into a brand-new Pending order. The source
// order is never modified.
func (s *orderService) Reorder(orderID, userID uint) (*models.Order, error) {
	source, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, asNotFound(err, ErrOrderNotFound)
	}
	if source.UserID != userID {
		return nil, ErrNotOrderOwner
	}

	from := models.OrderStatus(source.Status)
	if from != models.OrderCompleted && from != models.OrderCancelled {
		return nil, ErrReorderNotAllowed
	}

	clone := &models.Order{
		OrderCode:     newOrderCode(),
		UserID:        source.UserID,
		Status:        string(models.OrderPending),
		PaymentMethod: source.PaymentMethod,
		TotalAmount:   source.TotalAmount,
		OrderDate:     time.Now(),
	}
	for _, item := range source.Items {
		clone.Items = append(clone.Items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	if err := s.orderRepo.Create(clone); err != nil {
		return nil, fmt.Errorf("failed to create reorder: %w", err)
	}
	return clone, nil
}

// ToggleLock flips the advisory lock flag. There is no precondition: a locked
// order can always be unlocked and vice versa.
func (s *orderService) ToggleLock(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, asNotFound(err, ErrOrderNotFound)
	}

	mutation := orderview.Begin(order)
	order.IsLocked = !order.IsLocked

	updated, err := s.orderRepo.SetLock(order.ID, order.IsLocked)
	if err != nil {
		mutation.Rollback()
		return nil, fmt.Errorf("failed to toggle lock: %w", asNotFound(err, ErrOrderNotFound))
	}
	mutation.Confirm(updated)

	return order, nil
}

func (s *orderService) History() []history.Entry {
	return s.log.Entries()
}

// Undo reverses a recorded transition by writing its From status back. The
// reversal bypasses the transition table but still respects the lock gate,
// and it does not re-enter the history log.
func (s *orderService) Undo(entryID int64) (*models.Order, error) {
	entry, ok := s.log.Get(entryID)
	if !ok {
		return nil, ErrHistoryEntryNotFound
	}

	order, err := s.orderRepo.GetByID(entry.OrderID)
	if err != nil {
		return nil, asNotFound(err, ErrOrderNotFound)
	}
	if order.IsLocked {
		return nil, ErrOrderLocked
	}

	mutation := orderview.Begin(order)
	order.Status = string(entry.From)

	updated, err := s.orderRepo.UpdateStatus(order.ID, entry.From)
	if err != nil {
		mutation.Rollback()
		return nil, fmt.Errorf("failed to undo transition: %w", asNotFound(err, ErrOrderNotFound))
	}
	mutation.Confirm(updated)

	s.log.Remove(entryID)
	s.notifyStatusChange(order)

	return order, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	if _, err := s.orderRepo.GetByID(id); err != nil {
		return asNotFound(err, ErrOrderNotFound)
	}
	return s.orderRepo.Delete(id)
}

// notifyStatusChange delivers a best-effort status notification. Failures are
// logged and never affect the transition itself.
func (s *orderService) notifyStatusChange(order *models.Order) {
	if s.notifier == nil || !s.notifier.Enabled() {
		return
	}

	user, err := s.userRepo.GetByID(order.UserID)
	if err != nil || user.PhoneNumber == "" {
		return
	}

	if err := s.notifier.SendStatusUpdate(user.PhoneNumber, order.OrderCode, order.Status); err != nil {
		log.Printf("Warning: failed to notify user %d about order %s: %v", user.ID, order.OrderCode, err)
	}
}

func newOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
