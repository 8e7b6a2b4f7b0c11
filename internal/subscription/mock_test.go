package subscription

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// StorageMock is a testify mock of the Storage interface.
type StorageMock struct {
	mock.Mock
}

var _ Storage = (*StorageMock)(nil)

// NewStorageMock returns a StorageMock whose expectations are asserted
// automatically when the test finishes.
func NewStorageMock(t *testing.T) *StorageMock {
	m := new(StorageMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StorageMock) CreateSubscription(ctx context.Context, sub Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *StorageMock) DeleteSubscription(ctx context.Context, subscriberID int64, address string) error {
	args := m.Called(ctx, subscriberID, address)
	return args.Error(0)
}

func (m *StorageMock) ListSubscriptions(ctx context.Context, subscriberID int64) ([]Subscription, error) {
	args := m.Called(ctx, subscriberID)
	if subs := args.Get(0); subs != nil {
		return subs.([]Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StorageMock) WatchedAddresses(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if addrs := args.Get(0); addrs != nil {
		return addrs.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StorageMock) ActiveSubscriptions(ctx context.Context, address string) ([]Subscription, error) {
	args := m.Called(ctx, address)
	if subs := args.Get(0); subs != nil {
		return subs.([]Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}
