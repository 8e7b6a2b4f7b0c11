// Package notify is the dedup and delivery dispatcher: it fans each
// observed transaction out to the subscribers of its address, at most
// once per (subscriber, transaction) pair, in block order per address.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kaiawatch/kaiawatch/internal/pkg/logger"
	"github.com/kaiawatch/kaiawatch/internal/pkg/resilience/retry"
	"github.com/kaiawatch/kaiawatch/internal/pkg/types"
)

// defaultClaimTTL bounds how long a delivery claim survives a crashed
// worker before the pair becomes claimable again.
const defaultClaimTTL = 10 * time.Minute

// Service delivers address activity to subscribers.
type Service interface {
	// NotifyAddressActivity delivers the given transactions, sorted by
	// ascending block number, to every active subscriber of the
	// address. A nil return guarantees each transaction was either
	// accepted by the sink or found already delivered, so the caller
	// may advance its cursor past the batch. Any error means the batch
	// must be re-submitted; the ledger absorbs the resulting
	// duplicates.
	NotifyAddressActivity(ctx context.Context, address string, txs []Transaction) error
}

type service struct {
	claimTTL time.Duration

	directory SubscriberDirectory
	ledger    DeliveryLedger
	sink      NotificationSink

	retry retry.Retry

	// addressLocks serializes batches for the same address so one
	// subscriber's notifications stay in block order. Different
	// addresses proceed concurrently.
	addressLocksMu sync.Mutex
	addressLocks   types.DefaultMap[string, *sync.Mutex]
}

var _ Service = (*service)(nil)

type config struct {
	claimTTL time.Duration
	ledger   DeliveryLedger
	retry    retry.Retry
}

// Option customizes the dispatcher built by New.
type Option func(*config)

// New builds a dispatcher over the given directory and sink. Defaults:
// 10 minute claim TTL, no-op ledger, no sink retry.
func New(directory SubscriberDirectory, sink NotificationSink, opts ...Option) *service {
	cfg := config{
		claimTTL: defaultClaimTTL,
		ledger:   nopDeliveryLedger{},
		retry:    nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		claimTTL:     cfg.claimTTL,
		directory:    directory,
		ledger:       cfg.ledger,
		sink:         sink,
		retry:        cfg.retry,
		addressLocks: types.NewDefaultMap[string](func() *sync.Mutex { return new(sync.Mutex) }),
	}
}

// WithDeliveryLedger makes deliveries idempotent across workers and
// restarts.
func WithDeliveryLedger(l DeliveryLedger) Option {
	return func(c *config) {
		c.ledger = l
	}
}

// WithClaimTTL overrides how long an in-progress claim blocks
// re-delivery of the same pair.
func WithClaimTTL(d time.Duration) Option {
	return func(c *config) {
		c.claimTTL = d
	}
}

// WithRetry retries transient sink failures with backoff before the
// batch is failed.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

func (s *service) lockAddress(address string) *sync.Mutex {
	s.addressLocksMu.Lock()
	mu := s.addressLocks.Get(address)
	s.addressLocksMu.Unlock()

	mu.Lock()
	return mu
}

func (s *service) NotifyAddressActivity(ctx context.Context, address string, txs []Transaction) error {
	mu := s.lockAddress(address)
	defer mu.Unlock()

	subscribers, err := s.directory.ActiveSubscribers(ctx, address)
	if err != nil {
		return fmt.Errorf("resolving subscribers of %s: %w", address, err)
	}
	if len(subscribers) == 0 {
		return nil
	}

	// Subscribers deactivated mid-batch are skipped for the remaining
	// transactions instead of failing them one by one.
	deactivated := types.NewSet[int64]()

	for _, tx := range txs {
		for _, subscriber := range subscribers {
			if deactivated.Contains(subscriber.ID) {
				continue
			}

			if err := s.deliver(ctx, address, subscriber, tx); err != nil {
				if errors.Is(err, ErrSinkPermanent) {
					s.deactivate(ctx, subscriber.ID)
					deactivated.Add(subscriber.ID)
					continue
				}
				return err
			}
		}
	}

	return nil
}

// deliver pushes one transaction to one subscriber under the ledger's
// two-phase protocol. The claim is written before the send, so a
// ledger outage prevents the send entirely rather than risking a
// duplicate. The completion mark is retried, and a final failure
// fails the batch: the pair stays claimed until the TTL expires, and
// the re-submitted batch skips everything already sealed.
func (s *service) deliver(ctx context.Context, address string, subscriber Subscriber, tx Transaction) error {
	err := s.ledger.ClaimDelivery(ctx, subscriber.ID, tx.Hash, s.claimTTL)
	switch {
	case errors.Is(err, ErrAlreadyDelivered):
		return nil
	case errors.Is(err, ErrDeliveryInProgress):
		return fmt.Errorf("tx %s for subscriber %d: %w", tx.Hash, subscriber.ID, err)
	case err != nil:
		return fmt.Errorf("claiming delivery of tx %s for subscriber %d: %w", tx.Hash, subscriber.ID, err)
	}

	notification := Notification{
		Address: address,
		Label:   subscriber.Label,
		Tx:      tx,
	}

	send := func() error {
		err := s.sink.Send(ctx, subscriber.ID, notification)
		if errors.Is(err, ErrSinkPermanent) {
			// Do not burn retry attempts on a failure that cannot heal.
			return retry.Unrecoverable(err)
		}
		return err
	}

	if s.retry != nil {
		err = s.retry.Execute(ctx, send)
	} else {
		err = send()
	}
	if err != nil {
		return err
	}

	if err := s.markComplete(ctx, subscriber.ID, tx.Hash); err != nil {
		return fmt.Errorf("sealing delivery of tx %s for subscriber %d: %w", tx.Hash, subscriber.ID, err)
	}

	return nil
}

func (s *service) markComplete(ctx context.Context, subscriberID int64, txHash string) error {
	mark := func() error {
		return s.ledger.MarkDeliveryComplete(ctx, subscriberID, txHash)
	}

	if s.retry != nil {
		return s.retry.Execute(ctx, mark)
	}
	return mark()
}

func (s *service) deactivate(ctx context.Context, subscriberID int64) {
	if err := s.directory.DeactivateSubscriber(ctx, subscriberID); err != nil {
		logger.Error(ctx, "failed to deactivate unreachable subscriber",
			"subscriber.id", subscriberID,
			"error", err,
		)
		return
	}

	logger.Info(ctx, "subscriber deactivated after permanent delivery failure",
		"subscriber.id", subscriberID,
	)
}
