package chainpoll

import (
	"context"
	"errors"
)

// ErrNoCursorFound is returned by LoadCursor when the address has
// never been polled successfully.
var ErrNoCursorFound = errors.New("no cursor found for address")

// CursorStorage persists the per-address poll cursor: the highest
// block number whose transactions were already handed to the
// dispatcher. One cursor exists per distinct tracked address, shared
// by every subscriber of that address.
type CursorStorage interface {
	// SaveCursor records block as the latest processed block for the
	// address, overwriting any previous value.
	SaveCursor(ctx context.Context, address string, block int64) error

	// LoadCursor returns the latest processed block for the address, or
	// ErrNoCursorFound when none was ever saved. After a restart the
	// poller resumes from this value, never from "now".
	LoadCursor(ctx context.Context, address string) (int64, error)

	// DeleteCursor removes the cursor of an address that lost its last
	// subscriber.
	DeleteCursor(ctx context.Context, address string) error
}

// nopCursorStorage keeps no cursor state: every load misses. Only
// suitable for tests and local development; production wires Redis.
type nopCursorStorage struct{}

var _ CursorStorage = (*nopCursorStorage)(nil)

func (nopCursorStorage) SaveCursor(ctx context.Context, address string, block int64) error {
	return nil
}

func (nopCursorStorage) LoadCursor(ctx context.Context, address string) (int64, error) {
	return 0, ErrNoCursorFound
}

func (nopCursorStorage) DeleteCursor(ctx context.Context, address string) error {
	return nil
}
