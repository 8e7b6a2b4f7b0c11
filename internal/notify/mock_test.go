package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// SubscriberDirectoryMock is a testify mock of SubscriberDirectory.
type SubscriberDirectoryMock struct {
	mock.Mock
}

var _ SubscriberDirectory = (*SubscriberDirectoryMock)(nil)

func NewSubscriberDirectoryMock(t *testing.T) *SubscriberDirectoryMock {
	m := new(SubscriberDirectoryMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SubscriberDirectoryMock) ActiveSubscribers(ctx context.Context, address string) ([]Subscriber, error) {
	args := m.Called(ctx, address)
	if subs := args.Get(0); subs != nil {
		return subs.([]Subscriber), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SubscriberDirectoryMock) DeactivateSubscriber(ctx context.Context, subscriberID int64) error {
	args := m.Called(ctx, subscriberID)
	return args.Error(0)
}

// DeliveryLedgerMock is a testify mock of DeliveryLedger.
type DeliveryLedgerMock struct {
	mock.Mock
}

var _ DeliveryLedger = (*DeliveryLedgerMock)(nil)

func NewDeliveryLedgerMock(t *testing.T) *DeliveryLedgerMock {
	m := new(DeliveryLedgerMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DeliveryLedgerMock) ClaimDelivery(ctx context.Context, subscriberID int64, txHash string, ttl time.Duration) error {
	args := m.Called(ctx, subscriberID, txHash, ttl)
	return args.Error(0)
}

func (m *DeliveryLedgerMock) MarkDeliveryComplete(ctx context.Context, subscriberID int64, txHash string) error {
	args := m.Called(ctx, subscriberID, txHash)
	return args.Error(0)
}

// NotificationSinkMock is a testify mock of NotificationSink.
type NotificationSinkMock struct {
	mock.Mock
}

var _ NotificationSink = (*NotificationSinkMock)(nil)

func NewNotificationSinkMock(t *testing.T) *NotificationSinkMock {
	m := new(NotificationSinkMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *NotificationSinkMock) Send(ctx context.Context, subscriberID int64, notification Notification) error {
	args := m.Called(ctx, subscriberID, notification)
	return args.Error(0)
}
