// Package botproc wires the bot's long-running pieces together: the
// chain poller feeding the notification dispatcher, and the Telegram
// update transport answering user commands.
package botproc

import (
	"context"
	"errors"
	"sync"

	"github.com/kaiawatch/kaiawatch/internal/chainpoll"
	"github.com/kaiawatch/kaiawatch/internal/pkg/logger"
)

// ErrServiceAlreadyStarted is returned if Start is called more than
// once without an intervening Close.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Transport is the inbound command surface, typically the Telegram
// long-poll loop. Run blocks until ctx is canceled.
type Transport interface {
	Run(ctx context.Context) error
}

// Service is the application lifecycle entrypoint.
type Service interface {
	// Start launches the poller and the command transport. Returns
	// ErrServiceAlreadyStarted on a second call.
	Start(ctx context.Context) error

	// Close stops everything started by Start. Safe to call when the
	// service never started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	poller    chainpoll.Service
	transport Transport
}

var _ Service = (*service)(nil)

// New composes the poller and the command transport into one
// lifecycle. The poller must already be wired to its dispatcher (see
// NewDispatcher).
func New(poller chainpoll.Service, transport Transport) *service {
	return &service{
		poller:    poller,
		transport: transport,
	}
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	if err := s.poller.Start(ctx); err != nil {
		cancel()
		return err
	}

	go func() {
		if err := s.transport.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "command transport stopped", "error", err)
		}
	}()

	s.closeFunc = func() {
		cancel()
		s.poller.Close()
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.closeFunc = nil
	s.isStarted = false
}
