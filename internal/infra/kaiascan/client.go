// Package kaiascan implements the Kaia explorer surface over the
// Kaiascan REST API: account balances, token and NFT positions, and
// the transaction history feed the address poller consumes.
package kaiascan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kaiawatch/kaiawatch/internal/account"
	"github.com/kaiawatch/kaiawatch/internal/chainpoll"
)

// DefaultBaseURL is the Kaia mainnet explorer API endpoint.
const DefaultBaseURL = "https://mainnet-oapi.kaiascan.io"

// ErrUnexpectedStatus indicates the explorer answered with a non-200
// status code.
var ErrUnexpectedStatus = errors.New("kaiascan: unexpected response status")

// client talks to the Kaiascan REST API. All requests carry the
// account's bearer token.
type client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// The one client covers both the wallet query reads and the
// transaction feed the poller runs on.
var (
	_ account.ChainReader         = (*client)(nil)
	_ chainpoll.TransactionSource = (*client)(nil)
)

// NewClient creates a Kaiascan API client. The provided HTTP client
// owns timeouts and transport-level retries; pass DefaultBaseURL for
// mainnet.
func NewClient(httpClient *http.Client, baseURL, apiToken string) *client {
	return &client{
		baseURL:    baseURL,
		apiToken:   apiToken,
		httpClient: httpClient,
	}
}

// getJSON performs a GET against path (relative to the base URL) and
// decodes the 200 response body into out.
func (c *client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "*/*")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: [%d] GET %s", ErrUnexpectedStatus, res.StatusCode, path)
	}

	return json.NewDecoder(res.Body).Decode(out)
}
