package services

import (
	"testing"
	"time"

	"furniture_store/internal/models"
	"furniture_store/internal/redis"

	"github.com/stretchr/testify/require"
)

type fakeCartStore struct {
	carts map[uint]*redis.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[uint]*redis.Cart)}
}

func (s *fakeCartStore) SetCart(userID uint, cart *redis.Cart, ttl time.Duration) error {
	stored := *cart
	stored.Items = append([]redis.CartItem(nil), cart.Items...)
	s.carts[userID] = &stored
	return nil
}

func (s *fakeCartStore) GetCart(userID uint) (*redis.Cart, error) {
	cart, ok := s.carts[userID]
	if !ok {
		return &redis.Cart{}, nil
	}
	copied := *cart
	copied.Items = append([]redis.CartItem(nil), cart.Items...)
	return &copied, nil
}

func (s *fakeCartStore) DeleteCart(userID uint) error {
	delete(s.carts, userID)
	return nil
}

func newCartFixture() (CartService, *fakeCartStore) {
	store := newFakeCartStore()
	productRepo := newFakeProductRepo(
		models.Product{ID: 1, Name: "Oak Dining Table", Price: 450, Stock: 5, IsActive: true},
		models.Product{ID: 2, Name: "Walnut Chair", Price: 120, Stock: 10, IsActive: true},
		models.Product{ID: 3, Name: "Retired Sofa", Price: 900, Stock: 2, IsActive: false},
	)
	return NewCartService(store, productRepo, time.Hour), store
}

func TestCartAddAndGet(t *testing.T) {
	cart, _ := newCartFixture()

	view, err := cart.AddItem(7, 1, 2)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, float64(900), view.Total)

	// Adding the same product again merges quantities
	view, err = cart.AddItem(7, 1, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, 3, view.Items[0].Quantity)
	require.Equal(t, float64(1350), view.Total)

	view, err = cart.AddItem(7, 2, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	require.Equal(t, float64(1470), view.Total)
}

func TestCartAddRejectsBadInput(t *testing.T) {
	cart, _ := newCartFixture()

	_, err := cart.AddItem(7, 1, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = cart.AddItem(7, 99, 1)
	require.ErrorIs(t, err, ErrProductNotFound)

	_, err = cart.AddItem(7, 3, 1)
	require.ErrorIs(t, err, ErrProductUnavailable)
}

func TestCartUpdateItem(t *testing.T) {
	cart, _ := newCartFixture()

	_, err := cart.AddItem(7, 1, 2)
	require.NoError(t, err)

	view, err := cart.UpdateItem(7, 1, 5)
	require.NoError(t, err)
	require.Equal(t, 5, view.Items[0].Quantity)

	// Zero quantity removes the line
	view, err = cart.UpdateItem(7, 1, 0)
	require.NoError(t, err)
	require.Empty(t, view.Items)

	_, err = cart.UpdateItem(7, 2, 1)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartRemoveAndClear(t *testing.T) {
	cart, store := newCartFixture()

	_, err := cart.AddItem(7, 1, 1)
	require.NoError(t, err)
	_, err = cart.AddItem(7, 2, 1)
	require.NoError(t, err)

	view, err := cart.RemoveItem(7, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, uint(2), view.Items[0].ProductID)

	require.NoError(t, cart.Clear(7))
	_, ok := store.carts[7]
	require.False(t, ok)

	view, err = cart.GetCart(7)
	require.NoError(t, err)
	require.Empty(t, view.Items)
	require.Zero(t, view.Total)
}

func TestCartCheckoutItems(t *testing.T) {
	cart, _ := newCartFixture()

	_, err := cart.CheckoutItems(7)
	require.ErrorIs(t, err, ErrEmptyCart)

	_, err = cart.AddItem(7, 1, 2)
	require.NoError(t, err)
	_, err = cart.AddItem(7, 2, 3)
	require.NoError(t, err)

	items, err := cart.CheckoutItems(7)
	require.NoError(t, err)
	require.ElementsMatch(t, []CheckoutItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 3},
	}, items)
}

func TestCartPricingSkipsRetiredProducts(t *testing.T) {
	cart, store := newCartFixture()

	// A product deactivated after being added must not price into the view
	store.carts[7] = &redis.Cart{Items: []redis.CartItem{
		{ProductID: 1, Quantity: 1},
		{ProductID: 3, Quantity: 1},
	}}

	view, err := cart.GetCart(7)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, float64(450), view.Total)
}
