package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/kaiawatch/kaiawatch/internal/botproc"
	"github.com/kaiawatch/kaiawatch/internal/notify"
	"github.com/kaiawatch/kaiawatch/internal/subscription"

	redis "github.com/redis/go-redis/v9"
)

// subscriptionKeyPrefix is the Redis key namespace for the
// subscription book.
const subscriptionKeyPrefix = "subscription"

// subscriberKey holds one subscriber's subscriptions as a hash of
// address -> subscription record.
//
// Format: "subscription:subscriber:{subscriberID}"
func subscriberKey(subscriberID int64) string {
	return fmt.Sprintf("%s:subscriber:%d", subscriptionKeyPrefix, subscriberID)
}

// addressKey holds every subscriber of one address as a hash of
// subscriber id -> subscription record.
//
// Format: "subscription:address:{address}"
func addressKey(address string) string {
	return fmt.Sprintf("%s:address:%s", subscriptionKeyPrefix, address)
}

// watchedAddressesKey is the set of addresses with at least one
// subscriber. It is what the poller sweeps.
const watchedAddressesKey = subscriptionKeyPrefix + ":watched"

// subscriptionRecord is the stored JSON shape of a subscription.
type subscriptionRecord struct {
	ID           string    `json:"id"`
	SubscriberID int64     `json:"subscriber_id"`
	Address      string    `json:"address"`
	Label        string    `json:"label,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r subscriptionRecord) toSubscription() subscription.Subscription {
	return subscription.Subscription{
		ID:           r.ID,
		SubscriberID: r.SubscriberID,
		Address:      r.Address,
		Label:        r.Label,
		CreatedAt:    r.CreatedAt,
	}
}

// CreateSubscription stores the subscription under both the
// subscriber and address hashes and adds the address to the watched
// set. The HSetNX on the subscriber hash is what detects duplicates.
func (c *client) CreateSubscription(ctx context.Context, sub subscription.Subscription) error {
	record, err := json.Marshal(subscriptionRecord{
		ID:           sub.ID,
		SubscriberID: sub.SubscriberID,
		Address:      sub.Address,
		Label:        sub.Label,
		CreatedAt:    sub.CreatedAt,
	})
	if err != nil {
		return err
	}

	created, err := c.conn.HSetNX(ctx, subscriberKey(sub.SubscriberID), sub.Address, record).Result()
	if err != nil {
		return err
	}
	if !created {
		return subscription.ErrDuplicateSubscription
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, addressKey(sub.Address), strconv.FormatInt(sub.SubscriberID, 10), record)
		pipe.SAdd(ctx, watchedAddressesKey, sub.Address)
		return nil
	})
	return err
}

// DeleteSubscription removes the pair from both hashes. When the
// address hash empties, the address leaves the watched set so the
// poller stops sweeping it.
func (c *client) DeleteSubscription(ctx context.Context, subscriberID int64, address string) error {
	removed, err := c.conn.HDel(ctx, subscriberKey(subscriberID), address).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return subscription.ErrSubscriptionNotFound
	}

	if err := c.conn.HDel(ctx, addressKey(address), strconv.FormatInt(subscriberID, 10)).Err(); err != nil {
		return err
	}

	remaining, err := c.conn.HLen(ctx, addressKey(address)).Result()
	if err != nil {
		return err
	}
	if remaining == 0 {
		return c.conn.SRem(ctx, watchedAddressesKey, address).Err()
	}

	return nil
}

func (c *client) ListSubscriptions(ctx context.Context, subscriberID int64) ([]subscription.Subscription, error) {
	records, err := c.conn.HVals(ctx, subscriberKey(subscriberID)).Result()
	if err != nil {
		return nil, err
	}

	subs, err := parseSubscriptionRecords(records)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(subs, func(a, b subscription.Subscription) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return subs, nil
}

func (c *client) WatchedAddresses(ctx context.Context) ([]string, error) {
	return c.conn.SMembers(ctx, watchedAddressesKey).Result()
}

func (c *client) ActiveSubscriptions(ctx context.Context, address string) ([]subscription.Subscription, error) {
	records, err := c.conn.HVals(ctx, addressKey(address)).Result()
	if err != nil {
		return nil, err
	}

	return parseSubscriptionRecords(records)
}

// ActiveSubscribers projects the address's subscriptions into the
// delivery view the notifier consumes.
func (c *client) ActiveSubscribers(ctx context.Context, address string) ([]notify.Subscriber, error) {
	subs, err := c.ActiveSubscriptions(ctx, address)
	if err != nil {
		return nil, err
	}

	subscribers := make([]notify.Subscriber, len(subs))
	for i, sub := range subs {
		subscribers[i] = notify.Subscriber{
			ID:    sub.SubscriberID,
			Label: sub.Label,
		}
	}

	return subscribers, nil
}

func parseSubscriptionRecords(records []string) ([]subscription.Subscription, error) {
	subs := make([]subscription.Subscription, len(records))
	for i, raw := range records {
		var record subscriptionRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, err
		}

		subs[i] = record.toSubscription()
	}

	return subs, nil
}

// The subscription book doubles as the poller's watchlist and the read
// half of the notifier's subscriber directory.
var (
	_ subscription.Storage     = (*client)(nil)
	_ botproc.SubscriberLookup = (*client)(nil)
)
