// Package slot provides named key-value persistence slots. The shop keeps
// its cart snapshot and the confirmed customer record in two such slots,
// so both survive process restarts.
package slot

import "context"

// Well-known slot names.
const (
	// Cart holds the serialized catalog snapshot, rewritten after every
	// mutating transition and deleted when checkout completes.
	Cart = "cart"
	// CustomerData holds the confirmed customer order. It is written once
	// per checkout and never read back by the shop.
	CustomerData = "customerData"
)

// Store persists opaque payloads under named slots.
type Store interface {
	// Get returns the payload stored under name. The boolean is false when
	// the slot has never been written or was deleted.
	Get(ctx context.Context, name string) ([]byte, bool, error)

	// Put overwrites the slot with payload.
	Put(ctx context.Context, name string, payload []byte) error

	// Delete removes the slot outright. Deleting an absent slot is not an
	// error.
	Delete(ctx context.Context, name string) error

	// Close releases the underlying resources.
	Close() error
}
