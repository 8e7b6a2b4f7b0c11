// Package subscription manages the durable set of (subscriber, address,
// label) tracking subscriptions behind the /track, /list, and /untrack
// commands. Watch state is reference-counted per address by the
// storage backend so many subscribers can share one upstream poll.
package subscription

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service exposes subscription management to the command transports
// (Telegram handlers and the CLI) and deactivation to the dispatcher.
type Service interface {
	// Track registers the subscriber for transaction notifications on
	// the given address, optionally labelled. It returns the created
	// subscription, or ErrInvalidAddress / ErrDuplicateSubscription.
	Track(ctx context.Context, subscriberID int64, address, label string) (Subscription, error)

	// Untrack removes one subscription identified by key, which may be
	// either an address or a label. Label resolution must be
	// unambiguous: it returns ErrAmbiguousLabel when several
	// subscriptions share the label and ErrSubscriptionNotFound when
	// nothing matches. On ambiguity nothing is removed.
	Untrack(ctx context.Context, subscriberID int64, key string) error

	// List returns the subscriber's active subscriptions, oldest first.
	List(ctx context.Context, subscriberID int64) ([]Subscription, error)

	// Deactivate drops every subscription of the subscriber. It is
	// invoked by the delivery dispatcher when the sink reports a
	// permanent failure, e.g. the subscriber blocked the bot.
	Deactivate(ctx context.Context, subscriberID int64) error
}

type service struct {
	storage Storage
}

var _ Service = (*service)(nil)

// New creates a subscription service on top of the given storage.
func New(storage Storage) *service {
	return &service{storage: storage}
}

func (s *service) Track(ctx context.Context, subscriberID int64, address, label string) (Subscription, error) {
	req, err := buildTrackRequest(address, label)
	if err != nil {
		return Subscription{}, err
	}

	sub := Subscription{
		ID:           uuid.NewString(),
		SubscriberID: subscriberID,
		Address:      req.Address,
		Label:        req.Label,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.storage.CreateSubscription(ctx, sub); err != nil {
		return Subscription{}, err
	}

	return sub, nil
}

// resolveUntrackTarget maps an address-or-label key onto a single
// subscription address. Address matches take precedence over labels so
// a label that happens to equal another subscription's address cannot
// shadow it.
func resolveUntrackTarget(subs []Subscription, key string) (string, error) {
	normalized := NormalizeAddress(key)
	for _, sub := range subs {
		if sub.Address == normalized {
			return sub.Address, nil
		}
	}

	label := strings.TrimSpace(key)
	matches := make([]Subscription, 0, 1)
	for _, sub := range subs {
		if sub.Label != "" && sub.Label == label {
			matches = append(matches, sub)
		}
	}

	switch len(matches) {
	case 0:
		return "", ErrSubscriptionNotFound
	case 1:
		return matches[0].Address, nil
	default:
		return "", ErrAmbiguousLabel
	}
}

func (s *service) Untrack(ctx context.Context, subscriberID int64, key string) error {
	subs, err := s.storage.ListSubscriptions(ctx, subscriberID)
	if err != nil {
		return err
	}

	address, err := resolveUntrackTarget(subs, key)
	if err != nil {
		return err
	}

	return s.storage.DeleteSubscription(ctx, subscriberID, address)
}

func (s *service) List(ctx context.Context, subscriberID int64) ([]Subscription, error) {
	return s.storage.ListSubscriptions(ctx, subscriberID)
}

func (s *service) Deactivate(ctx context.Context, subscriberID int64) error {
	subs, err := s.storage.ListSubscriptions(ctx, subscriberID)
	if err != nil {
		return err
	}

	for _, sub := range subs {
		if err := s.storage.DeleteSubscription(ctx, subscriberID, sub.Address); err != nil {
			return err
		}
	}

	return nil
}
