package chainpoll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates how a transaction relates to the watched address.
type Direction string

const (
	DirectionIn   Direction = "in"   // address is the recipient
	DirectionOut  Direction = "out"  // address is the sender
	DirectionSelf Direction = "self" // address sent to itself
)

// Transaction is a single transfer touching a watched address, as
// reported by the upstream explorer API. Immutable once produced.
type Transaction struct {
	Hash        string          // unique transaction hash
	BlockNumber int64           // block that included the transaction
	Timestamp   time.Time       // block timestamp
	From        string          // sender address, lowercase hex
	To          string          // recipient address, lowercase hex
	Direction   Direction       // relation to the watched address
	Amount      decimal.Decimal // transferred amount in display units
	TokenSymbol string          // token ticker, "KAIA" for native moves
}

// AddressActivity groups the new transactions observed for one watched
// address during a poll cycle, sorted by ascending block number.
type AddressActivity struct {
	Address      string
	Transactions []Transaction
}

// TransactionSource is the upstream chain data provider. The Kaiascan
// client implements it; tests supply mocks.
type TransactionSource interface {
	// FetchTransactions returns every transfer involving address with a
	// block number strictly greater than afterBlock, oldest first. The
	// upstream may paginate internally; implementations must not skip
	// transfers even if that means returning some below afterBlock
	// again (the dispatcher deduplicates).
	FetchTransactions(ctx context.Context, address string, afterBlock int64) ([]Transaction, error)

	// LatestBlock returns the block number of the address's most recent
	// transaction, or zero when the address has no history. Used to
	// seed the cursor of a freshly tracked address so its past activity
	// is not replayed as notifications.
	LatestBlock(ctx context.Context, address string) (int64, error)
}

// TransactionDispatcher consumes the activity produced by a poll
// cycle. The poller advances the address cursor only after a nil
// return, so implementations must either deliver or deduplicate every
// transaction they accept.
type TransactionDispatcher interface {
	DispatchTransactions(ctx context.Context, activity AddressActivity) error
}

// WatchlistSource reports which addresses currently have at least one
// active subscriber. Addresses absent from the list are not polled and
// their cursors are discarded.
type WatchlistSource interface {
	WatchedAddresses(ctx context.Context) ([]string, error)
}
