// Package account answers the read-only wallet queries behind the
// /balance, /tokens, and /nfts commands: native balance with USD
// valuation, fungible token positions, and NFT holdings by standard.
package account

import (
	"cmp"
	"context"
	"slices"
)

// Service exposes the wallet query operations to the command
// transports.
type Service interface {
	// Balance returns the address's native balance and its USD value.
	Balance(ctx context.Context, address string) (Balance, error)

	// Tokens returns the address's fungible token positions.
	Tokens(ctx context.Context, address string) ([]TokenBalance, error)

	// NFTs returns the address's KIP17 and KIP37 holdings, each sorted
	// by descending token count.
	NFTs(ctx context.Context, address string) (NFTHoldings, error)
}

type service struct {
	reader ChainReader
}

var _ Service = (*service)(nil)

// New creates an account service over the given chain reader.
func New(reader ChainReader) *service {
	return &service{reader: reader}
}

func (s *service) Balance(ctx context.Context, address string) (Balance, error) {
	address, err := normalizeAddress(address)
	if err != nil {
		return Balance{}, err
	}

	balance, err := s.reader.NativeBalance(ctx, address)
	if err != nil {
		return Balance{}, err
	}

	price, err := s.reader.NativeTokenPrice(ctx)
	if err != nil {
		return Balance{}, err
	}

	return Balance{
		Address:  address,
		Balance:  balance,
		USDValue: balance.Mul(price),
	}, nil
}

func (s *service) Tokens(ctx context.Context, address string) ([]TokenBalance, error) {
	address, err := normalizeAddress(address)
	if err != nil {
		return nil, err
	}

	return s.reader.TokenBalances(ctx, address)
}

func (s *service) NFTs(ctx context.Context, address string) (NFTHoldings, error) {
	address, err := normalizeAddress(address)
	if err != nil {
		return NFTHoldings{}, err
	}

	kip17, err := s.reader.NFTHoldings(ctx, address, NFTStandardKIP17)
	if err != nil {
		return NFTHoldings{}, err
	}

	kip37, err := s.reader.NFTHoldings(ctx, address, NFTStandardKIP37)
	if err != nil {
		return NFTHoldings{}, err
	}

	byCountDesc := func(a, b NFTHolding) int {
		return cmp.Compare(b.TokenCount, a.TokenCount)
	}
	slices.SortFunc(kip17, byCountDesc)
	slices.SortFunc(kip37, byCountDesc)

	return NFTHoldings{
		Address: address,
		KIP17:   kip17,
		KIP37:   kip37,
	}, nil
}
