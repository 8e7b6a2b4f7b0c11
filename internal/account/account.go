package account

import (
	"context"
	"errors"
	"strings"

	"github.com/kaiawatch/kaiawatch/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ErrInvalidAddress indicates the queried wallet address is not a
// valid 0x-prefixed 40-digit hex string. Reported to the user
// immediately, never retried.
var ErrInvalidAddress = errors.New("invalid wallet address")

// Balance is an address's native KAIA holding with its dollar
// valuation at the current market price.
type Balance struct {
	Address  string
	Balance  decimal.Decimal // KAIA
	USDValue decimal.Decimal // Balance times the current USD price
}

// TokenBalance is one fungible token position of an address.
type TokenBalance struct {
	Name    string
	Symbol  string
	Balance decimal.Decimal
}

// NFTStandard selects which Kaia NFT standard to query.
type NFTStandard string

const (
	NFTStandardKIP17 NFTStandard = "kip17" // ERC721-style
	NFTStandardKIP37 NFTStandard = "kip37" // ERC1155-style
)

// NFTHolding is one NFT contract position, enriched with the contract
// name and symbol.
type NFTHolding struct {
	Name       string
	Symbol     string
	TokenCount int64
	TokenID    string // set for KIP37 holdings only
}

// NFTHoldings groups an address's NFT positions by standard, each
// list sorted by descending token count.
type NFTHoldings struct {
	Address string
	KIP17   []NFTHolding
	KIP37   []NFTHolding
}

// ChainReader is the upstream explorer surface the account service
// queries. The Kaiascan client implements it.
type ChainReader interface {
	// NativeBalance returns the address's KAIA balance.
	NativeBalance(ctx context.Context, address string) (decimal.Decimal, error)

	// NativeTokenPrice returns the current KAIA price in USD.
	NativeTokenPrice(ctx context.Context) (decimal.Decimal, error)

	// TokenBalances returns the address's fungible token positions.
	TokenBalances(ctx context.Context, address string) ([]TokenBalance, error)

	// NFTHoldings returns the address's positions for one NFT
	// standard, with contract metadata resolved.
	NFTHoldings(ctx context.Context, address string, standard NFTStandard) ([]NFTHolding, error)
}

// addressQuery is the validated input of every account operation.
type addressQuery struct {
	Address string `validate:"required,eth_addr"`
}

func normalizeAddress(address string) (string, error) {
	q := addressQuery{Address: strings.ToLower(strings.TrimSpace(address))}
	if err := validator.Validate(q); err != nil {
		return "", errors.Join(ErrInvalidAddress, err)
	}
	return q.Address, nil
}
