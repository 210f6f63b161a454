package services

import (
	"time"

	"furniture_store/internal/redis"
	"furniture_store/internal/repository"
)

// CartStore is the persistence behind per-user carts. Implemented by the
// Redis client.
type CartStore interface {
	SetCart(userID uint, cart *redis.Cart, ttl time.Duration) error
	GetCart(userID uint) (*redis.Cart, error)
	DeleteCart(userID uint) error
}

// CartLine is a cart item priced against the current catalog.
type CartLine struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	ImageURL    string  `json:"image_url"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

type CartService interface {
	AddItem(userID, productID uint, quantity int) (*CartView, error)
	UpdateItem(userID, productID uint, quantity int) (*CartView, error)
	RemoveItem(userID, productID uint) (*CartView, error)
	GetCart(userID uint) (*CartView, error)
	CheckoutItems(userID uint) ([]CheckoutItem, error)
	Clear(userID uint) error
}

type cartService struct {
	store       CartStore
	productRepo repository.ProductRepository
	ttl         time.Duration
}

func NewCartService(store CartStore, productRepo repository.ProductRepository, ttl time.Duration) CartService {
	return &cartService{store: store, productRepo: productRepo, ttl: ttl}
}

func (s *cartService) AddItem(userID, productID uint, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, asNotFound(err, ErrProductNotFound)
	}
	if !product.IsActive {
		return nil, ErrProductUnavailable
	}

	cart, err := s.store.GetCart(userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, redis.CartItem{ProductID: productID, Quantity: quantity})
	}

	if err := s.save(userID, cart); err != nil {
		return nil, err
	}
	return s.price(cart)
}

func (s *cartService) UpdateItem(userID, productID uint, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return s.RemoveItem(userID, productID)
	}

	cart, err := s.store.GetCart(userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, ErrProductNotFound
	}

	if err := s.save(userID, cart); err != nil {
		return nil, err
	}
	return s.price(cart)
}

func (s *cartService) RemoveItem(userID, productID uint) (*CartView, error) {
	cart, err := s.store.GetCart(userID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			break
		}
	}

	if err := s.save(userID, cart); err != nil {
		return nil, err
	}
	return s.price(cart)
}

func (s *cartService) GetCart(userID uint) (*CartView, error) {
	cart, err := s.store.GetCart(userID)
	if err != nil {
		return nil, err
	}
	return s.price(cart)
}

// CheckoutItems converts the cart into checkout lines for the order service.
func (s *cartService) CheckoutItems(userID uint) ([]CheckoutItem, error) {
	cart, err := s.store.GetCart(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]CheckoutItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CheckoutItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return items, nil
}

func (s *cartService) Clear(userID uint) error {
	return s.store.DeleteCart(userID)
}

func (s *cartService) save(userID uint, cart *redis.Cart) error {
	cart.UpdatedAt = time.Now()
	return s.store.SetCart(userID, cart, s.ttl)
}

// price resolves cart lines against the catalog. Products that disappeared or
// were deactivated since they were added are skipped.
func (s *cartService) price(cart *redis.Cart) (*CartView, error) {
	view := &CartView{Items: []CartLine{}}
	for _, item := range cart.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			continue
		}
		if !product.IsActive {
			continue
		}

		line := CartLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			ImageURL:    product.ImageURL,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			TotalPrice:  float64(item.Quantity) * product.Price,
		}
		view.Items = append(view.Items, line)
		view.Total += line.TotalPrice
	}
	return view, nil
}
