package botproc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/kaiawatch/kaiawatch/internal/notify"
	"github.com/kaiawatch/kaiawatch/internal/subscription"
)

// PollerMock is a testify mock of chainpoll.Service.
type PollerMock struct {
	mock.Mock
}

func NewPollerMock(t *testing.T) *PollerMock {
	m := new(PollerMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PollerMock) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *PollerMock) Close() {
	m.Called()
}

// TransportMock is a testify mock of Transport.
type TransportMock struct {
	mock.Mock
}

var _ Transport = (*TransportMock)(nil)

func NewTransportMock(t *testing.T) *TransportMock {
	m := new(TransportMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TransportMock) Run(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// NotifierMock is a testify mock of notify.Service.
type NotifierMock struct {
	mock.Mock
}

var _ notify.Service = (*NotifierMock)(nil)

func NewNotifierMock(t *testing.T) *NotifierMock {
	m := new(NotifierMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *NotifierMock) NotifyAddressActivity(ctx context.Context, address string, txs []notify.Transaction) error {
	args := m.Called(ctx, address, txs)
	return args.Error(0)
}

// SubscriberLookupMock is a testify mock of SubscriberLookup.
type SubscriberLookupMock struct {
	mock.Mock
}

var _ SubscriberLookup = (*SubscriberLookupMock)(nil)

func NewSubscriberLookupMock(t *testing.T) *SubscriberLookupMock {
	m := new(SubscriberLookupMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SubscriberLookupMock) ActiveSubscribers(ctx context.Context, address string) ([]notify.Subscriber, error) {
	args := m.Called(ctx, address)
	if subscribers := args.Get(0); subscribers != nil {
		return subscribers.([]notify.Subscriber), args.Error(1)
	}
	return nil, args.Error(1)
}

// SubscriptionServiceMock is a testify mock of subscription.Service.
type SubscriptionServiceMock struct {
	mock.Mock
}

var _ subscription.Service = (*SubscriptionServiceMock)(nil)

func NewSubscriptionServiceMock(t *testing.T) *SubscriptionServiceMock {
	m := new(SubscriptionServiceMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SubscriptionServiceMock) Track(ctx context.Context, subscriberID int64, address, label string) (subscription.Subscription, error) {
	args := m.Called(ctx, subscriberID, address, label)
	return args.Get(0).(subscription.Subscription), args.Error(1)
}

func (m *SubscriptionServiceMock) Untrack(ctx context.Context, subscriberID int64, key string) error {
	args := m.Called(ctx, subscriberID, key)
	return args.Error(0)
}

func (m *SubscriptionServiceMock) List(ctx context.Context, subscriberID int64) ([]subscription.Subscription, error) {
	args := m.Called(ctx, subscriberID)
	if subs := args.Get(0); subs != nil {
		return subs.([]subscription.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SubscriptionServiceMock) Deactivate(ctx context.Context, subscriberID int64) error {
	args := m.Called(ctx, subscriberID)
	return args.Error(0)
}
