package ff

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hyperledger-labs/firefly-explorer/metrics"
	"github.com/hyperledger-labs/firefly-explorer/models"
)

var (
	// ErrNotFound reports a 404 from the core API. Views treat it as "no data
	// available" and render blank rather than surfacing an error.
	ErrNotFound = errors.New("the resource is not found in the core API")

	ErrEmptyNamespace = errors.New("namespace must not be empty")
)

const (
	pathGetNamespaces     = "/api/v1/namespaces"
	pathGetMessages       = "/api/v1/namespaces/%s/messages"
	pathGetMessage        = "/api/v1/namespaces/%s/messages/%s"
	pathGetTransactions   = "/api/v1/namespaces/%s/transactions"
	pathGetTransaction    = "/api/v1/namespaces/%s/transactions/%s"
	pathGetBatch          = "/api/v1/namespaces/%s/batches/%s"
	pathGetTokenAccounts  = "/api/v1/namespaces/%s/tokens/accounts"
	pathGetTokenTransfers = "/api/v1/namespaces/%s/tokens/transfers"
)

type Client struct {
	hc   *http.Client
	host string
}

type ClientOption interface {
	Apply(*Client)
}

type ClientOptionFunc func(*Client)

// Apply set up the option field to the client instance.
func (f ClientOptionFunc) Apply(client *Client) {
	f(client)
}

func WithTimeout(timeout time.Duration) ClientOption {
	return ClientOptionFunc(func(client *Client) {
		client.hc.Timeout = timeout
	})
}

func WithHTTPClient(hc *http.Client) ClientOption {
	return ClientOptionFunc(func(client *Client) {
		client.hc = hc
	})
}

// NewClient returns a client for the FireFly core REST API at host.
func NewClient(host string, opts ...ClientOption) (*Client, error) {
	if host == "" {
		return nil, fmt.Errorf("core API host must not be empty")
	}
	transport := &http.Transport{
		DisableCompression:  true,
		MaxIdleConnsPerHost: 100,
		MaxConnsPerHost:     100,
		IdleConnTimeout:     90 * time.Second,
	}
	client := &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
	ffClient := &Client{hc: client, host: host}
	for _, opt := range opts {
		opt.Apply(ffClient)
	}
	return ffClient, nil
}

// GetNamespaces lists the logical partitions the core API serves.
func (c *Client) GetNamespaces(ctx context.Context) ([]*models.Namespace, error) {
	namespaces := make([]*models.Namespace, 0)
	if err := c.get(ctx, "namespaces", pathGetNamespaces, nil, &namespaces); err != nil {
		return nil, err
	}
	return namespaces, nil
}

// GetMessages fetches the most recent messages of a namespace, newest first.
func (c *Client) GetMessages(ctx context.Context, ns string, limit int64) ([]*models.Message, error) {
	if ns == "" {
		return nil, ErrEmptyNamespace
	}
	query := url.Values{}
	query.Set("limit", strconv.FormatInt(limit, 10))
	messages := make([]*models.Message, 0)
	if err := c.get(ctx, "messages", fmt.Sprintf(pathGetMessages, ns), query, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// GetMessage fetches a single message by id.
func (c *Client) GetMessage(ctx context.Context, ns, msgID string) (*models.Message, error) {
	if ns == "" {
		return nil, ErrEmptyNamespace
	}
	msg := &models.Message{}
	if err := c.get(ctx, "messages", fmt.Sprintf(pathGetMessage, ns, msgID), nil, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// GetRecentTransactions fetches transactions created at or after createdAfter.
// The zero time disables the window filter.
func (c *Client) GetRecentTransactions(ctx context.Context, ns string, limit int64, createdAfter time.Time) ([]*models.Transaction, error) {
	if ns == "" {
		return nil, ErrEmptyNamespace
	}
	query := url.Values{}
	query.Set("limit", strconv.FormatInt(limit, 10))
	if !createdAfter.IsZero() {
		query.Set("created", fmt.Sprintf(">=%d", createdAfter.Unix()))
	}
	txs := make([]*models.Transaction, 0)
	if err := c.get(ctx, "transactions", fmt.Sprintf(pathGetTransactions, ns), query, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// GetTransaction fetches a single transaction by id.
func (c *Client) GetTransaction(ctx context.Context, ns, txID string) (*models.Transaction, error) {
	if ns == "" {
		return nil, ErrEmptyNamespace
	}
	tx := &models.Transaction{}
	if err := c.get(ctx, "transactions", fmt.Sprintf(pathGetTransaction, ns, txID), nil, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetTransactionSequence probes the latest transaction and returns its
// sequence number, or zero when the namespace has none.
func (c *Client) GetTransactionSequence(ctx context.Context, ns string) (int64, error) {
	txs, err := c.GetRecentTransactions(ctx, ns, 1, time.Time{})
	if err != nil {
		return 0, err
	}
	if len(txs) == 0 {
		return 0, nil
	}
	return txs[0].Sequence, nil
}

// GetBatch fetches a single batch record by id.
func (c *Client) GetBatch(ctx context.Context, ns, batchID string) (*models.Batch, error) {
	if ns == "" {
		return nil, ErrEmptyNamespace
	}
	batch := &models.Batch{}
	if err := c.get(ctx, "batches", fmt.Sprintf(pathGetBatch, ns, batchID), nil, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// GetTokenAccount fetches the token account of a pool by protocol id. The API
// returns a list; only the first element is meaningful. An empty list yields
// (nil, nil): the absent-entity case the views render as blank.
func (c *Client) GetTokenAccount(ctx context.Context, ns, poolProtocolID string) (*models.TokenAccount, error) {
	if ns == "" {
		return nil, ErrEmptyNamespace
	}
	query := url.Values{}
	query.Set("poolprotocolid", poolProtocolID)
	accounts := make([]*models.TokenAccount, 0)
	if err := c.get(ctx, "tokenaccounts", fmt.Sprintf(pathGetTokenAccounts, ns), query, &accounts); err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, nil
	}
	return accounts[0], nil
}

// GetTokenTransfers fetches one page of a pool's transfer history together
// with the server-reported total count.
func (c *Client) GetTokenTransfers(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error) {
	if ns == "" {
		return nil, ErrEmptyNamespace
	}
	query := url.Values{}
	query.Set("poolprotocolid", poolProtocolID)
	query.Set("limit", strconv.FormatInt(limit, 10))
	query.Set("skip", strconv.FormatInt(skip, 10))
	query.Set("count", "true")
	transfers := &models.TokenTransferList{Items: make([]*models.TokenTransfer, 0)}
	if err := c.get(ctx, "tokentransfers", fmt.Sprintf(pathGetTokenTransfers, ns), query, transfers); err != nil {
		return nil, err
	}
	return transfers, nil
}

func (c *Client) get(ctx context.Context, resource, path string, query url.Values, out interface{}) error {
	metrics.FetchCount.WithLabelValues(resource).Inc()
	target := c.host + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	r, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("error reading http response body %s", err)
	}
	if r.StatusCode != http.StatusOK {
		if r.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("received non-OK response status: %s", r.Status)
	}
	return json.Unmarshal(body, out)
}
