// Package checkout captures customer identity at payment time and
// completes the order: the customer record is written to its own slot, the
// cart slot is deleted and every product returns to full stock.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tiendago/storefront/internal/shop/cart"
	"github.com/tiendago/storefront/internal/shop/catalog"
	"github.com/tiendago/storefront/internal/shop/slot"
)

// ErrValidation is returned when required checkout fields are missing.
var ErrValidation = errors.New("checkout validation failed")

// CustomerOrder is the identity captured at checkout confirmation. It is
// written once to the customerData slot and never read back by the shop.
type CustomerOrder struct {
	ID       string    `json:"id"`
	Name     string    `json:"name" validate:"required"`
	Email    string    `json:"email" validate:"required"`
	PlacedAt time.Time `json:"placedAt"`
}

// Line is a single payment-summary entry.
type Line struct {
	Index int
	Name  string
	Price float64
}

// Summary is the payment payload computed when the payment view opens. It
// is a snapshot of the cart at that moment, not a live binding.
type Summary struct {
	Lines []Line
	Total float64
}

// BuildSummary projects the catalog's cart occupants into a Summary.
func BuildSummary(cat catalog.Catalog) Summary {
	var sum Summary
	for i, p := range cat {
		if p.InCart() {
			sum.Lines = append(sum.Lines, Line{Index: i, Name: p.Name, Price: p.Price})
			sum.Total += p.Price
		}
	}
	return sum
}

// Recorder observes confirmed orders.
type Recorder interface {
	OrderConfirmed()
}

// Service validates and persists confirmed orders, then resets the cart.
type Service struct {
	cart     *cart.Store
	slots    slot.Store
	validate *validator.Validate
	recorder Recorder
	now      func() time.Time
	newID    func() string
}

// Option customises a Service.
type Option func(*Service)

// WithRecorder wires an order recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithClock overrides the order timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires the checkout service.
func NewService(cartStore *cart.Store, slots slot.Store, opts ...Option) *Service {
	s := &Service{
		cart:     cartStore,
		slots:    slots,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Confirm validates the customer fields and completes the checkout. On
// validation failure nothing is persisted and the cart is untouched.
func (s *Service) Confirm(ctx context.Context, name, email string) (CustomerOrder, error) {
	order := CustomerOrder{
		ID:       s.newID(),
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		PlacedAt: s.now(),
	}
	if err := s.validate.Struct(order); err != nil {
		return CustomerOrder{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return CustomerOrder{}, fmt.Errorf("encode customer order: %w", err)
	}
	if err := s.slots.Put(ctx, slot.CustomerData, payload); err != nil {
		return CustomerOrder{}, fmt.Errorf("persist customer order: %w", err)
	}
	if err := s.cart.ClearSlot(ctx); err != nil {
		return CustomerOrder{}, fmt.Errorf("clear cart slot: %w", err)
	}
	if err := s.cart.Empty(ctx); err != nil {
		return CustomerOrder{}, err
	}
	if s.recorder != nil {
		s.recorder.OrderConfirmed()
	}
	return order, nil
}
