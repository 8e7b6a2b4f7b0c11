package telegram

import (
	"context"
	"testing"

	"github.com/kaiawatch/kaiawatch/internal/account"
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

type AccountServiceMock struct {
	mock.Mock
}

var _ account.Service = (*AccountServiceMock)(nil)

func NewAccountServiceMock(t *testing.T) *AccountServiceMock {
	m := new(AccountServiceMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AccountServiceMock) Balance(ctx context.Context, address string) (account.Balance, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(account.Balance), args.Error(1)
}

func (m *AccountServiceMock) Tokens(ctx context.Context, address string) ([]account.TokenBalance, error) {
	args := m.Called(ctx, address)
	if tokens := args.Get(0); tokens != nil {
		return tokens.([]account.TokenBalance), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountServiceMock) NFTs(ctx context.Context, address string) (account.NFTHoldings, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(account.NFTHoldings), args.Error(1)
}
