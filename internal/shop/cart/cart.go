// Package cart implements the shop's cart state machine. Stock doubles as
// the cart-membership signal: a product sits in the cart exactly when its
// stock is below catalog.MaxStock, so the quantity per product is always
// zero or one. Every successful transition writes the full catalog back to
// the cart persistence slot.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tiendago/storefront/internal/shop/catalog"
	"github.com/tiendago/storefront/internal/shop/slot"
)

var (
	// ErrOutOfStock is returned when Add targets a product with nothing
	// left on the shelf.
	ErrOutOfStock = errors.New("product out of stock")
	// ErrBadIndex is returned when a transition targets a position outside
	// the catalog.
	ErrBadIndex = errors.New("product index out of range")
)

// Recorder observes applied transitions. Implementations must be safe for
// concurrent use.
type Recorder interface {
	Transition(name, outcome string)
}

// Store owns the mutable catalog and applies cart transitions to it.
type Store struct {
	mu       sync.Mutex
	catalog  catalog.Catalog
	slots    slot.Store
	recorder Recorder
}

// Option customises a Store.
type Option func(*Store)

// WithRecorder wires a transition recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Store) { s.recorder = r }
}

// New constructs a Store over its own copy of cat.
func New(cat catalog.Catalog, slots slot.Store, opts ...Option) *Store {
	s := &Store{catalog: cat.Clone(), slots: slots}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open builds the store from the persisted cart snapshot when one exists,
// falling back to src otherwise. When the source fails, the returned store
// is still usable with an empty catalog and the load error is returned
// alongside it so the UI can surface the notice.
func Open(ctx context.Context, slots slot.Store, src catalog.Source, opts ...Option) (*Store, error) {
	if snapshot, ok := Restore(ctx, slots); ok {
		return New(snapshot, slots, opts...), nil
	}
	loaded, err := src.Load(ctx)
	if err != nil {
		return New(nil, slots, opts...), err
	}
	return New(loaded, slots, opts...), nil
}

// Restore reads the cart slot. Any read or decode failure degrades to "no
// saved cart" rather than surfacing an error.
func Restore(ctx context.Context, slots slot.Store) (catalog.Catalog, bool) {
	payload, ok, err := slots.Get(ctx, slot.Cart)
	if err != nil || !ok {
		return nil, false
	}
	var snapshot catalog.Catalog
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, false
	}
	if snapshot == nil {
		return nil, false
	}
	return snapshot, true
}

// Add moves one unit of the product at index into the cart.
func (s *Store) Add(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.catalog) {
		s.record("add", "rejected")
		return fmt.Errorf("%w: %d", ErrBadIndex, index)
	}
	if s.catalog[index].Stock <= 0 {
		s.record("add", "rejected")
		return fmt.Errorf("%w: %s", ErrOutOfStock, s.catalog[index].Name)
	}
	s.catalog[index].Stock--
	s.record("add", "ok")
	return s.persistLocked(ctx)
}

// Remove returns the product at index to the shelf. Removing a product
// that is not in the cart is a silent no-op.
func (s *Store) Remove(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.catalog) {
		s.record("remove", "rejected")
		return fmt.Errorf("%w: %d", ErrBadIndex, index)
	}
	if s.catalog[index].Stock >= catalog.MaxStock {
		s.record("remove", "noop")
		return nil
	}
	s.catalog[index].Stock++
	s.record("remove", "ok")
	return s.persistLocked(ctx)
}

// Empty returns every product to full stock.
func (s *Store) Empty(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.catalog {
		s.catalog[i].Stock = catalog.MaxStock
	}
	s.record("empty", "ok")
	return s.persistLocked(ctx)
}

// Snapshot returns a copy of the current catalog for rendering.
func (s *Store) Snapshot() catalog.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Clone()
}

// ClearSlot deletes the persisted cart snapshot. Checkout completion calls
// this before running Empty, which re-persists the reset catalog.
func (s *Store) ClearSlot(ctx context.Context) error {
	return s.slots.Delete(ctx, slot.Cart)
}

func (s *Store) persistLocked(ctx context.Context) error {
	payload, err := json.Marshal(s.catalog)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := s.slots.Put(ctx, slot.Cart, payload); err != nil {
		return fmt.Errorf("persist cart snapshot: %w", err)
	}
	return nil
}

func (s *Store) record(name, outcome string) {
	if s.recorder != nil {
		s.recorder.Transition(name, outcome)
	}
}
