package account

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type ChainReaderMock struct {
	mock.Mock
}

var _ ChainReader = (*ChainReaderMock)(nil)

func NewChainReaderMock(t *testing.T) *ChainReaderMock {
	m := new(ChainReaderMock)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ChainReaderMock) NativeBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *ChainReaderMock) NativeTokenPrice(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *ChainReaderMock) TokenBalances(ctx context.Context, address string) ([]TokenBalance, error) {
	args := m.Called(ctx, address)
	if balances := args.Get(0); balances != nil {
		return balances.([]TokenBalance), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ChainReaderMock) NFTHoldings(ctx context.Context, address string, standard NFTStandard) ([]NFTHolding, error) {
	args := m.Called(ctx, address, standard)
	if holdings := args.Get(0); holdings != nil {
		return holdings.([]NFTHolding), args.Error(1)
	}
	return nil, args.Error(1)
}
