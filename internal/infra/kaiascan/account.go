package kaiascan

import (
	"context"
	"fmt"

	"github.com/kaiawatch/kaiawatch/internal/account"
	"github.com/kaiawatch/kaiawatch/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

// accountResponse is the GET /api/v1/accounts/{address} payload.
type accountResponse struct {
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
}

// kaiaInfoResponse is the GET /api/v1/kaia payload.
type kaiaInfoResponse struct {
	KlayPrice struct {
		USDPrice decimal.Decimal `json:"usd_price"`
	} `json:"klay_price"`
}

// tokenDetailsResponse is the GET /api/v1/accounts/{address}/token-details payload.
type tokenDetailsResponse struct {
	Results []struct {
		Contract struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
		} `json:"contract"`
		Balance decimal.Decimal `json:"balance"`
	} `json:"results"`
}

// nftBalancesResponse is the GET /api/v1/accounts/{address}/nft-balances/{standard} payload.
type nftBalancesResponse struct {
	Results []struct {
		Contract struct {
			ContractAddress string `json:"contract_address"`
			ContractType    string `json:"contract_type"`
		} `json:"contract"`
		TokenCount int64  `json:"token_count"`
		TokenID    string `json:"token_id"`
	} `json:"results"`
}

// nftContractResponse is the GET /api/v1/nfts/{contract_address} payload.
type nftContractResponse struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

func (c *client) NativeBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	var res accountResponse
	if err := c.getJSON(ctx, "/api/v1/accounts/"+address, &res); err != nil {
		return decimal.Decimal{}, err
	}

	return res.Balance, nil
}

func (c *client) NativeTokenPrice(ctx context.Context) (decimal.Decimal, error) {
	var res kaiaInfoResponse
	if err := c.getJSON(ctx, "/api/v1/kaia", &res); err != nil {
		return decimal.Decimal{}, err
	}

	return res.KlayPrice.USDPrice, nil
}

func (c *client) TokenBalances(ctx context.Context, address string) ([]account.TokenBalance, error) {
	var res tokenDetailsResponse
	if err := c.getJSON(ctx, "/api/v1/accounts/"+address+"/token-details?size=2000", &res); err != nil {
		return nil, err
	}

	tokens := make([]account.TokenBalance, len(res.Results))
	for i, result := range res.Results {
		tokens[i] = account.TokenBalance{
			Name:    result.Contract.Name,
			Symbol:  result.Contract.Symbol,
			Balance: result.Balance,
		}
	}

	return tokens, nil
}

func (c *client) NFTHoldings(ctx context.Context, address string, standard account.NFTStandard) ([]account.NFTHolding, error) {
	var res nftBalancesResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v1/accounts/%s/nft-balances/%s", address, standard), &res); err != nil {
		return nil, err
	}

	holdings := make([]account.NFTHolding, 0, len(res.Results))
	for _, result := range res.Results {
		var contract nftContractResponse
		if err := c.getJSON(ctx, "/api/v1/nfts/"+result.Contract.ContractAddress, &contract); err != nil {
			// A holding whose contract metadata cannot be resolved is
			// dropped from the listing rather than failing the query.
			logger.Warn(ctx, "kaiascan: failed to resolve nft contract metadata",
				"contract_address", result.Contract.ContractAddress,
				"error", err,
			)
			continue
		}

		holdings = append(holdings, account.NFTHolding{
			Name:       contract.Name,
			Symbol:     contract.Symbol,
			TokenCount: result.TokenCount,
			TokenID:    result.TokenID,
		})
	}

	return holdings, nil
}
