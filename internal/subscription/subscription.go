package subscription

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/kaiawatch/kaiawatch/internal/pkg/validator"
)

var (
	// ErrDuplicateSubscription indicates the subscriber already tracks
	// the given address.
	ErrDuplicateSubscription = errors.New("address is already tracked by this subscriber")

	// ErrSubscriptionNotFound indicates no subscription matched the
	// given address or label for the subscriber.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrAmbiguousLabel indicates a label matched more than one of the
	// subscriber's subscriptions, so the untrack target is unclear.
	ErrAmbiguousLabel = errors.New("label matches more than one subscription")

	// ErrInvalidAddress indicates the provided wallet address is not a
	// valid 0x-prefixed 40-digit hex string.
	ErrInvalidAddress = errors.New("invalid wallet address")
)

// Subscription ties a subscriber (a Telegram chat) to a tracked wallet
// address, optionally named with a label for easier untracking.
type Subscription struct {
	ID           string    // unique subscription identifier
	SubscriberID int64     // chat that receives notifications
	Address      string    // tracked address, normalized lowercase hex
	Label        string    // optional user-chosen name
	CreatedAt    time.Time // when tracking started
}

// Storage is the persistence contract for subscriptions. The watch
// state is shared: an address appears in WatchedAddresses as long as
// at least one subscriber tracks it, regardless of how many do.
type Storage interface {
	// CreateSubscription persists a new subscription. It returns
	// ErrDuplicateSubscription if the (subscriber, address) pair
	// already exists.
	CreateSubscription(ctx context.Context, sub Subscription) error

	// DeleteSubscription removes the subscriber's subscription for the
	// given address. It returns ErrSubscriptionNotFound when there is
	// nothing to remove. When the last subscriber of an address is
	// removed, the address must disappear from WatchedAddresses.
	DeleteSubscription(ctx context.Context, subscriberID int64, address string) error

	// ListSubscriptions returns all active subscriptions of a
	// subscriber, oldest first.
	ListSubscriptions(ctx context.Context, subscriberID int64) ([]Subscription, error)

	// WatchedAddresses returns every address with at least one active
	// subscriber.
	WatchedAddresses(ctx context.Context) ([]string, error)

	// ActiveSubscriptions returns the subscriptions of every subscriber
	// currently tracking the given address.
	ActiveSubscriptions(ctx context.Context, address string) ([]Subscription, error)
}

// trackRequest is the validated input of Track.
type trackRequest struct {
	Address string `validate:"required,eth_addr"` // wallet address to track
	Label   string `validate:"omitempty,max=64"`  // optional label
}

// NormalizeAddress lowercases a wallet address so that lookups and
// dedup keys are case-insensitive, as EVM addresses are.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// buildTrackRequest normalizes and validates the Track input. A
// malformed address yields an error chain containing both
// ErrInvalidAddress and validator.ErrValidationFailed.
func buildTrackRequest(address, label string) (trackRequest, error) {
	req := trackRequest{
		Address: NormalizeAddress(address),
		Label:   strings.TrimSpace(label),
	}

	if err := validator.Validate(req); err != nil {
		return trackRequest{}, errors.Join(ErrInvalidAddress, err)
	}

	return req, nil
}
