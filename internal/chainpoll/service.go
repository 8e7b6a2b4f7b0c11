// Package chainpoll drives the polling side of the notification
// pipeline. A single recurring ticker sweeps every watched address;
// within a sweep, per-address fetches run concurrently under a worker
// cap, each with its own timeout so one slow address never stalls the
// rest. The per-address cursor advances only after the fetched
// transactions were accepted by the dispatcher.
package chainpoll

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/kaiawatch/kaiawatch/internal/pkg/logger"
	"github.com/kaiawatch/kaiawatch/internal/pkg/resilience/retry"
	"github.com/kaiawatch/kaiawatch/internal/pkg/types"
)

// ErrServiceAlreadyStarted is returned if Start is called twice
// without an intervening Close.
var ErrServiceAlreadyStarted = errors.New("service already started")

const (
	defaultPollInterval         = 15 * time.Second
	defaultFetchTimeout         = 10 * time.Second
	defaultMaxConcurrentFetches = 10
)

// PollFailure describes an address poll that exhausted its retry
// budget during a sweep. The cursor of the address is left untouched;
// the next sweep retries from the same position.
type PollFailure struct {
	Address string  // address whose poll failed
	Cursor  int64   // cursor the poll started from
	Errors  []error // errors accumulated across attempts
}

type pollFailureHandler func(ctx context.Context, failure PollFailure)

// Service is the poller lifecycle. Start launches the sweep loop in
// the background and returns immediately; Close stops it.
type Service interface {
	Start(ctx context.Context) error
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	interval             time.Duration
	fetchTimeout         time.Duration
	maxConcurrentFetches int

	source     TransactionSource
	watchlist  WatchlistSource
	dispatcher TransactionDispatcher
	cursors    CursorStorage

	retry              retry.Retry
	pollFailureHandler pollFailureHandler

	inFlightMu sync.Mutex
	inFlight   types.Set[string] // addresses with a poll currently running

	lastWatchedMu sync.Mutex
	lastWatched   types.Set[string] // previous sweep's watchlist, for cursor GC
}

var _ Service = (*service)(nil)

type config struct {
	interval             time.Duration
	fetchTimeout         time.Duration
	maxConcurrentFetches int
	cursors              CursorStorage
	retry                retry.Retry
	pollFailureHandler   pollFailureHandler
}

// Option customizes the poller built by New.
type Option func(*config)

// New builds a poller over the given upstream source, watchlist, and
// dispatcher. Defaults: 15s interval, 10s per-address fetch timeout,
// 10 concurrent fetches, in-memory (nop) cursor storage, no retry,
// failures logged.
func New(source TransactionSource, watchlist WatchlistSource, dispatcher TransactionDispatcher, opts ...Option) *service {
	cfg := config{
		interval:             defaultPollInterval,
		fetchTimeout:         defaultFetchTimeout,
		maxConcurrentFetches: defaultMaxConcurrentFetches,
		cursors:              nopCursorStorage{},
		retry:                nil,
		pollFailureHandler:   defaultOnPollFailure,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		interval:             cfg.interval,
		fetchTimeout:         cfg.fetchTimeout,
		maxConcurrentFetches: cfg.maxConcurrentFetches,
		source:               source,
		watchlist:            watchlist,
		dispatcher:           dispatcher,
		cursors:              cfg.cursors,
		retry:                cfg.retry,
		pollFailureHandler:   cfg.pollFailureHandler,
		inFlight:             types.NewSet[string](),
		lastWatched:          types.NewSet[string](),
	}
}

func defaultOnPollFailure(ctx context.Context, failure PollFailure) {
	logger.Error(ctx, "address poll failure",
		"poll.address", failure.Address,
		"poll.cursor", failure.Cursor,
		"poll.errors", errors.Join(failure.Errors...),
	)
}

// WithPollInterval sets the time between sweeps.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithFetchTimeout bounds a single address poll. A poll exceeding it
// is abandoned for the cycle, cursor unchanged, and retried next sweep.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *config) {
		c.fetchTimeout = d
	}
}

// WithMaxConcurrentFetches caps the per-sweep fetch parallelism so the
// upstream provider is not overwhelmed.
func WithMaxConcurrentFetches(n int) Option {
	return func(c *config) {
		c.maxConcurrentFetches = n
	}
}

// WithCursorStorage makes cursors durable across restarts.
func WithCursorStorage(cs CursorStorage) Option {
	return func(c *config) {
		c.cursors = cs
	}
}

// WithRetry retries failed upstream fetches with backoff before the
// failure handler is invoked.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithPollFailureHandler replaces the default log-only handler for
// polls that exhausted their retries.
func WithPollFailureHandler(f pollFailureHandler) Option {
	return func(c *config) {
		c.pollFailureHandler = f
	}
}

// Start launches the sweep loop. The first sweep runs immediately;
// subsequent ones follow the configured interval. It returns
// ErrServiceAlreadyStarted when the service is already running.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	go s.run(ctx)

	s.closeFunc = closeFunc(cancel)
	s.isStarted = true
	return nil
}

// Close stops the sweep loop. In-flight polls finish or time out on
// their own; no new sweep starts. Safe to call when never started.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.closeFunc = nil
	s.isStarted = false
}

func (s *service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep reads the current watchlist and launches one bounded poll per
// address. Addresses still being polled from a previous sweep are
// skipped, which also preserves per-address ordering: at most one poll
// per address is ever in flight.
func (s *service) sweep(ctx context.Context) {
	addresses, err := s.watchlist.WatchedAddresses(ctx)
	if err != nil {
		logger.Error(ctx, "failed to load watchlist", "error", err)
		return
	}

	watched := types.NewSet(addresses...)
	s.dropStaleCursors(ctx, watched)

	sem := make(chan struct{}, s.maxConcurrentFetches)
	for address := range watched.ToIter() {
		if !s.claimAddress(address) {
			continue
		}

		go func(address string) {
			defer s.releaseAddress(address)

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			pollCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()

			s.pollAddress(pollCtx, address)
		}(address)
	}
}

// dropStaleCursors deletes the cursor of every address that was
// watched last sweep but has no subscriber anymore.
func (s *service) dropStaleCursors(ctx context.Context, watched types.Set[string]) {
	s.lastWatchedMu.Lock()
	previous := s.lastWatched
	s.lastWatched = watched
	s.lastWatchedMu.Unlock()

	for address := range previous.ToIter() {
		if watched.Contains(address) {
			continue
		}

		if err := s.cursors.DeleteCursor(ctx, address); err != nil {
			logger.Warn(ctx, "failed to drop cursor of unwatched address",
				"poll.address", address,
				"error", err,
			)
		}
	}
}

func (s *service) claimAddress(address string) bool {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()

	if s.inFlight.Contains(address) {
		return false
	}
	s.inFlight.Add(address)
	return true
}

func (s *service) releaseAddress(address string) {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()
	s.inFlight.Delete(address)
}

// pollAddress fetches the transactions newer than the address cursor,
// hands them to the dispatcher, and only then advances the cursor. On
// any failure the cursor stays put so the next sweep re-fetches the
// same range; over-emission is absorbed by the dispatcher's dedup
// ledger, silent loss is not recoverable and therefore never risked.
func (s *service) pollAddress(ctx context.Context, address string) {
	cursor, err := s.cursors.LoadCursor(ctx, address)
	if errors.Is(err, ErrNoCursorFound) {
		s.seedCursor(ctx, address)
		return
	}
	if err != nil {
		s.pollFailureHandler(ctx, PollFailure{Address: address, Errors: []error{err}})
		return
	}

	var txs []Transaction
	fetch := func() error {
		var ferr error
		txs, ferr = s.source.FetchTransactions(ctx, address, cursor)
		return ferr
	}

	if s.retry != nil {
		err = s.retry.Execute(ctx, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		s.pollFailureHandler(ctx, PollFailure{Address: address, Cursor: cursor, Errors: []error{err}})
		return
	}

	if len(txs) == 0 {
		return
	}

	slices.SortFunc(txs, func(a, b Transaction) int {
		return cmp.Compare(a.BlockNumber, b.BlockNumber)
	})

	activity := AddressActivity{Address: address, Transactions: txs}
	if err := s.dispatcher.DispatchTransactions(ctx, activity); err != nil {
		s.pollFailureHandler(ctx, PollFailure{Address: address, Cursor: cursor, Errors: []error{err}})
		return
	}

	latest := txs[len(txs)-1].BlockNumber
	if err := s.cursors.SaveCursor(ctx, address, latest); err != nil {
		// Not advancing is safe: the next sweep re-fetches and the
		// dispatcher drops what was already delivered.
		logger.Error(ctx, "failed to save cursor",
			"poll.address", address,
			"poll.block", latest,
			"error", err,
		)
	}
}

// seedCursor initializes the cursor of a freshly tracked address at
// its most recent transaction, so notifications start with the next
// transfer instead of replaying history.
func (s *service) seedCursor(ctx context.Context, address string) {
	latest, err := s.source.LatestBlock(ctx, address)
	if err != nil {
		s.pollFailureHandler(ctx, PollFailure{Address: address, Errors: []error{err}})
		return
	}

	if err := s.cursors.SaveCursor(ctx, address, latest); err != nil {
		s.pollFailureHandler(ctx, PollFailure{Address: address, Errors: []error{err}})
	}
}
