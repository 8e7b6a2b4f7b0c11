package botproc

import (
	"context"

	"github.com/kaiawatch/kaiawatch/internal/notify"
	"github.com/kaiawatch/kaiawatch/internal/subscription"
)

// SubscriberLookup resolves the active subscribers of an address. It is
// the read half of the notifier's directory; storage implements it
// directly.
type SubscriberLookup interface {
	ActiveSubscribers(ctx context.Context, address string) ([]notify.Subscriber, error)
}

// Directory adapts the subscription layer to the notifier's
// SubscriberDirectory contract. Reads go straight to storage, but a
// deactivation is routed through the subscription service so sink-driven
// cleanup shares the same removal rules as a user-issued untrack.
type Directory struct {
	lookup        SubscriberLookup
	subscriptions subscription.Service
}

var _ notify.SubscriberDirectory = (*Directory)(nil)

// NewDirectory bridges storage and the subscription service into the
// directory the notifier consumes.
func NewDirectory(lookup SubscriberLookup, subscriptions subscription.Service) *Directory {
	return &Directory{
		lookup:        lookup,
		subscriptions: subscriptions,
	}
}

func (d *Directory) ActiveSubscribers(ctx context.Context, address string) ([]notify.Subscriber, error) {
	return d.lookup.ActiveSubscribers(ctx, address)
}

func (d *Directory) DeactivateSubscriber(ctx context.Context, subscriberID int64) error {
	return d.subscriptions.Deactivate(ctx, subscriberID)
}
