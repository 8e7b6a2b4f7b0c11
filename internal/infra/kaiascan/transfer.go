package kaiascan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kaiawatch/kaiawatch/internal/chainpoll"
	"github.com/shopspring/decimal"
)

// transferPageSize is how many transactions one history page holds.
const transferPageSize = 100

// transactionsResponse is the GET /api/v1/accounts/{address}/transactions
// payload. Results are ordered newest first.
type transactionsResponse struct {
	Results []struct {
		TransactionHash string          `json:"transaction_hash"`
		BlockID         int64           `json:"block_id"`
		Datetime        int64           `json:"datetime"` // unix seconds
		From            string          `json:"from"`
		To              string          `json:"to"`
		Amount          decimal.Decimal `json:"amount"`
	} `json:"results"`
	Paging struct {
		TotalCount  int64 `json:"total_count"`
		CurrentPage int   `json:"current_page"`
		TotalPage   int   `json:"total_page"`
	} `json:"paging"`
}

func (c *client) FetchTransactions(ctx context.Context, address string, afterBlock int64) ([]chainpoll.Transaction, error) {
	address = strings.ToLower(address)

	// The walk continues until a page dips to or below the cursor (or
	// history runs out), however many pages that takes: truncating the
	// walk would advance the cursor past transfers that were never
	// fetched. Dropping a transfer is worse than a slow poll; the
	// delivery ledger absorbs any overlap.
	var (
		transactions []chainpoll.Transaction
		totalPages   = 1
	)
	for page := 1; page <= totalPages; page++ {
		res, err := c.fetchTransactionsPage(ctx, address, page, transferPageSize)
		if err != nil {
			return nil, err
		}
		totalPages = res.Paging.TotalPage

		reachedCursor := false
		for _, result := range res.Results {
			if result.BlockID <= afterBlock {
				reachedCursor = true
				continue
			}

			transactions = append(transactions, chainpoll.Transaction{
				Hash:        result.TransactionHash,
				BlockNumber: result.BlockID,
				Timestamp:   time.Unix(result.Datetime, 0).UTC(),
				From:        strings.ToLower(result.From),
				To:          strings.ToLower(result.To),
				Direction:   transferDirection(address, result.From, result.To),
				Amount:      result.Amount,
				TokenSymbol: "KAIA",
			})
		}

		// Results come newest first, so once a page dips at or below
		// the cursor there is nothing new on later pages.
		if reachedCursor {
			break
		}
	}

	return transactions, nil
}

func (c *client) LatestBlock(ctx context.Context, address string) (int64, error) {
	res, err := c.fetchTransactionsPage(ctx, strings.ToLower(address), 1, 1)
	if err != nil {
		return 0, err
	}

	if len(res.Results) == 0 {
		return 0, nil
	}

	return res.Results[0].BlockID, nil
}

func (c *client) fetchTransactionsPage(ctx context.Context, address string, page, size int) (transactionsResponse, error) {
	var res transactionsResponse
	path := fmt.Sprintf("/api/v1/accounts/%s/transactions?page=%d&size=%d", address, page, size)
	if err := c.getJSON(ctx, path, &res); err != nil {
		return transactionsResponse{}, err
	}

	return res, nil
}

func transferDirection(address, from, to string) chainpoll.Direction {
	var (
		sent     = strings.EqualFold(from, address)
		received = strings.EqualFold(to, address)
	)

	switch {
	case sent && received:
		return chainpoll.DirectionSelf
	case sent:
		return chainpoll.DirectionOut
	default:
		return chainpoll.DirectionIn
	}
}
