package cli

import (
	"context"
	"testing"

	"github.com/kaiawatch/kaiawatch/internal/botproc"
	"github.com/kaiawatch/kaiawatch/internal/subscription"

	"github.com/stretchr/testify/mock"
)

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

type BotprocServiceMock struct {
	mock.Mock
}

var _ botproc.Service = (*BotprocServiceMock)(nil)

func NewBotprocServiceMock(t *testing.T) *BotprocServiceMock {
	m := new(BotprocServiceMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *BotprocServiceMock) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *BotprocServiceMock) Close() {
	m.Called()
}
