package notify

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrSinkPermanent marks a delivery failure that will never succeed on
// retry, e.g. the subscriber blocked the bot. Sink implementations
// wrap it so the dispatcher can deactivate the subscriber instead of
// retrying forever. Any other sink error is treated as transient.
var ErrSinkPermanent = errors.New("permanent notification delivery failure")

// Transaction is one transfer to be announced to subscribers.
// Immutable; produced by the polling side and converted by the
// orchestrator.
type Transaction struct {
	Hash        string
	BlockNumber int64
	Timestamp   time.Time
	From        string
	To          string
	Direction   string // "in", "out", or "self", relative to Address
	Amount      decimal.Decimal
	TokenSymbol string
}

// Notification carries the template fields for one message to one
// subscriber. Rendering and localization belong to the sink adapter;
// the dispatcher only populates the fields.
type Notification struct {
	Address string // watched address the transaction involves
	Label   string // subscriber's label for the address, may be empty
	Tx      Transaction
}

// NotificationSink is the outbound delivery channel. Send returns nil
// once the transport accepted the message for delivery (not
// necessarily read by the user). Errors wrapping ErrSinkPermanent are
// not retried.
type NotificationSink interface {
	Send(ctx context.Context, subscriberID int64, notification Notification) error
}

// Subscriber identifies one recipient of an address's notifications.
type Subscriber struct {
	ID    int64  // chat to deliver to
	Label string // the subscriber's label for the address
}

// SubscriberDirectory resolves the active subscribers of an address
// and deactivates the ones the sink can no longer reach.
type SubscriberDirectory interface {
	// ActiveSubscribers returns every subscriber currently tracking the
	// address, with their label for it.
	ActiveSubscribers(ctx context.Context, address string) ([]Subscriber, error)

	// DeactivateSubscriber drops all subscriptions of the subscriber.
	// Called when the sink reports a permanent failure for them.
	DeactivateSubscriber(ctx context.Context, subscriberID int64) error
}
