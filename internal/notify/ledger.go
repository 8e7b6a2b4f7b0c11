package notify

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrAlreadyDelivered indicates the (subscriber, transaction) pair
	// was notified before; the event must be silently skipped.
	ErrAlreadyDelivered = errors.New("notification already delivered")

	// ErrDeliveryInProgress indicates another worker holds the claim
	// for this (subscriber, transaction) pair. The batch is retried
	// after the claim expires rather than risking a duplicate send.
	ErrDeliveryInProgress = errors.New("notification delivery in progress")
)

// DeliveryLedger is the write-once dedup ledger keyed by
// (subscriber, transaction hash). It follows a two-phase protocol:
// ClaimDelivery reserves the pair before the send, and
// MarkDeliveryComplete seals it once the sink accepted the message.
// Completed entries are retained long enough to absorb upstream
// re-emission (transaction hashes are never reused, so time-based
// garbage collection is safe).
type DeliveryLedger interface {
	// ClaimDelivery reserves exclusive delivery rights for the pair.
	// Returns ErrAlreadyDelivered when the pair was completed before,
	// ErrDeliveryInProgress when a live claim exists, nil when the
	// claim was acquired. The claim expires after ttl so a crashed
	// worker cannot block the pair forever.
	ClaimDelivery(ctx context.Context, subscriberID int64, txHash string, ttl time.Duration) error

	// MarkDeliveryComplete seals the pair after the sink confirmed
	// acceptance, preventing any future delivery of the same
	// transaction to the same subscriber.
	MarkDeliveryComplete(ctx context.Context, subscriberID int64, txHash string) error
}

// nopDeliveryLedger grants every claim and remembers nothing. Only
// for local development; duplicate notifications become possible.
type nopDeliveryLedger struct{}

var _ DeliveryLedger = (*nopDeliveryLedger)(nil)

func (nopDeliveryLedger) ClaimDelivery(ctx context.Context, subscriberID int64, txHash string, ttl time.Duration) error {
	return nil
}

func (nopDeliveryLedger) MarkDeliveryComplete(ctx context.Context, subscriberID int64, txHash string) error {
	return nil
}
