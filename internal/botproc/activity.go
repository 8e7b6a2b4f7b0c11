package botproc

import (
	"context"

	"github.com/kaiawatch/kaiawatch/internal/chainpoll"
	"github.com/kaiawatch/kaiawatch/internal/notify"
)

// Dispatcher adapts the notification service to the poller's
// TransactionDispatcher contract. The poller and the dispatcher keep
// separate transaction types so neither package depends on the other;
// this orchestrator owns the bridge.
type Dispatcher struct {
	notifier notify.Service
}

var _ chainpoll.TransactionDispatcher = (*Dispatcher)(nil)

// NewDispatcher wraps the notification service for use by
// chainpoll.New.
func NewDispatcher(notifier notify.Service) *Dispatcher {
	return &Dispatcher{notifier: notifier}
}

// DispatchTransactions hands the activity to the notification
// dispatcher. A non-nil return keeps the poller from advancing the
// address cursor past the batch.
func (d *Dispatcher) DispatchTransactions(ctx context.Context, activity chainpoll.AddressActivity) error {
	return d.notifier.NotifyAddressActivity(ctx, activity.Address, toNotifyTransactions(activity.Transactions))
}

func toNotifyTransactions(txs []chainpoll.Transaction) []notify.Transaction {
	out := make([]notify.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = notify.Transaction{
			Hash:        tx.Hash,
			BlockNumber: tx.BlockNumber,
			Timestamp:   tx.Timestamp,
			From:        tx.From,
			To:          tx.To,
			Direction:   string(tx.Direction),
			Amount:      tx.Amount,
			TokenSymbol: tx.TokenSymbol,
		}
	}
	return out
}
