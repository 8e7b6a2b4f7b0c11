package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kaiawatch/kaiawatch/internal/notify"

	redis "github.com/redis/go-redis/v9"
)

const (
	// notifyKeyPrefix is the Redis key namespace for the delivery
	// ledger.
	notifyKeyPrefix = "notify"

	// deliveryDone is the terminal value marking a (subscriber,
	// transaction) pair as delivered.
	deliveryDone = "done"

	// deliveryDoneRetention is how long a completed delivery mark is
	// kept. Long enough that a transaction cannot resurface through
	// cursor resets or upstream pagination overlap.
	deliveryDoneRetention = 7 * 24 * time.Hour
)

// deliveryKey tracks the delivery state of one notification.
//
// Format: "notify:delivery:{subscriberID}:{txHash}"
func deliveryKey(subscriberID int64, txHash string) string {
	return fmt.Sprintf("%s:delivery:%d:%s", notifyKeyPrefix, subscriberID, txHash)
}

// ClaimDelivery reserves exclusive delivery rights for the pair.
//
// Behavior:
//   - If the key holds the terminal value, the notification was
//     already delivered and notify.ErrAlreadyDelivered is returned.
//   - If the key exists with a live claim, another worker owns the
//     pair and notify.ErrDeliveryInProgress is returned.
//   - Otherwise an empty value is set with the given TTL to reserve
//     the claim.
func (c *client) ClaimDelivery(ctx context.Context, subscriberID int64, txHash string, ttl time.Duration) error {
	key := deliveryKey(subscriberID, txHash)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == deliveryDone {
		return notify.ErrAlreadyDelivered
	}

	ok, err := c.conn.SetNX(ctx, key, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return notify.ErrDeliveryInProgress
	}

	return nil
}

// MarkDeliveryComplete seals the pair after the sink accepted the
// message, replacing the claim with the terminal value.
func (c *client) MarkDeliveryComplete(ctx context.Context, subscriberID int64, txHash string) error {
	key := deliveryKey(subscriberID, txHash)
	return c.conn.Set(ctx, key, deliveryDone, deliveryDoneRetention).Err()
}

var _ notify.DeliveryLedger = (*client)(nil)
