package chainpoll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// TransactionSourceMock is a testify mock of TransactionSource.
type TransactionSourceMock struct {
	mock.Mock
}

var _ TransactionSource = (*TransactionSourceMock)(nil)

func NewTransactionSourceMock(t *testing.T) *TransactionSourceMock {
	m := new(TransactionSourceMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TransactionSourceMock) FetchTransactions(ctx context.Context, address string, afterBlock int64) ([]Transaction, error) {
	args := m.Called(ctx, address, afterBlock)
	if txs := args.Get(0); txs != nil {
		return txs.([]Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TransactionSourceMock) LatestBlock(ctx context.Context, address string) (int64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(int64), args.Error(1)
}

// WatchlistSourceMock is a testify mock of WatchlistSource.
type WatchlistSourceMock struct {
	mock.Mock
}

var _ WatchlistSource = (*WatchlistSourceMock)(nil)

func NewWatchlistSourceMock(t *testing.T) *WatchlistSourceMock {
	m := new(WatchlistSourceMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WatchlistSourceMock) WatchedAddresses(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if addrs := args.Get(0); addrs != nil {
		return addrs.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

// TransactionDispatcherMock is a testify mock of TransactionDispatcher.
type TransactionDispatcherMock struct {
	mock.Mock
}

var _ TransactionDispatcher = (*TransactionDispatcherMock)(nil)

func NewTransactionDispatcherMock(t *testing.T) *TransactionDispatcherMock {
	m := new(TransactionDispatcherMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TransactionDispatcherMock) DispatchTransactions(ctx context.Context, activity AddressActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

// CursorStorageMock is a testify mock of CursorStorage.
type CursorStorageMock struct {
	mock.Mock
}

var _ CursorStorage = (*CursorStorageMock)(nil)

func NewCursorStorageMock(t *testing.T) *CursorStorageMock {
	m := new(CursorStorageMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CursorStorageMock) SaveCursor(ctx context.Context, address string, block int64) error {
	args := m.Called(ctx, address, block)
	return args.Error(0)
}

func (m *CursorStorageMock) LoadCursor(ctx context.Context, address string) (int64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CursorStorageMock) DeleteCursor(ctx context.Context, address string) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}
