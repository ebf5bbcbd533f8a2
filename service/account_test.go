package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger-labs/firefly-explorer/models"
)

func transferPage(total int64, ids ...string) *models.TokenTransferList {
	items := make([]*models.TokenTransfer, 0, len(ids))
	for _, id := range ids {
		items = append(items, &models.TokenTransfer{LocalID: id, Type: models.TransferTypeTransfer})
	}
	return &models.TokenTransferList{Total: total, Items: items}
}

func TestAccountLoad(t *testing.T) {
	api := &fakeCoreAPI{
		getTokenAccount: func(ctx context.Context, ns, poolProtocolID string) (*models.TokenAccount, error) {
			assert.Equal(t, "default", ns)
			assert.Equal(t, "F1", poolProtocolID)
			return &models.TokenAccount{PoolProtocolID: "F1", Balance: "100"}, nil
		},
		getTokenTransfers: func(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error) {
			assert.Equal(t, int64(5), limit)
			assert.Equal(t, int64(0), skip)
			return transferPage(7, "tr-1", "tr-2", "tr-3", "tr-4", "tr-5"), nil
		},
	}
	svc := NewAccountService(api)

	svc.Load(context.Background(), "default", "F1")

	assert.False(t, svc.Loading())
	view := svc.View()
	require.NotNil(t, view.Account)
	assert.Equal(t, "100", view.Account.Balance)
	assert.Len(t, view.Transfers, 5)
	assert.Equal(t, int64(7), view.Pagination.TotalCount)
}

func TestAccountAbsent(t *testing.T) {
	api := &fakeCoreAPI{
		getTokenAccount: func(ctx context.Context, ns, poolProtocolID string) (*models.TokenAccount, error) {
			return nil, nil
		},
		getTokenTransfers: func(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error) {
			return transferPage(0), nil
		},
	}
	svc := NewAccountService(api)

	svc.Load(context.Background(), "default", "missing")

	assert.False(t, svc.Loading())
	view := svc.View()
	assert.Nil(t, view.Account)
	assert.Empty(t, view.Transfers)
}

func TestAccountSetPageFetchesNextSkip(t *testing.T) {
	var lastSkip int64 = -1
	api := &fakeCoreAPI{
		getTokenTransfers: func(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error) {
			lastSkip = skip
			if skip >= 5 {
				return transferPage(7, "tr-6", "tr-7"), nil
			}
			return transferPage(7, "tr-1", "tr-2", "tr-3", "tr-4", "tr-5"), nil
		},
	}
	svc := NewAccountService(api)
	svc.Load(context.Background(), "default", "F1")

	assert.True(t, svc.SetPage(context.Background(), 1))
	assert.Equal(t, int64(5), lastSkip)
	view := svc.View()
	assert.Len(t, view.Transfers, 2)
	assert.Equal(t, int64(1), view.Pagination.CurrentPage)
}

func TestAccountSetPageGuardSkipsFetch(t *testing.T) {
	fetches := 0
	api := &fakeCoreAPI{
		getTokenTransfers: func(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error) {
			fetches++
			return transferPage(7, "tr-1", "tr-2", "tr-3", "tr-4", "tr-5"), nil
		},
	}
	svc := NewAccountService(api)
	svc.Load(context.Background(), "default", "F1")
	require.Equal(t, 1, fetches)

	require.True(t, svc.SetPage(context.Background(), 1))
	require.Equal(t, 2, fetches)

	// 7 rows at 5 per page end on page 1; the refused move issues no fetch
	assert.False(t, svc.SetPage(context.Background(), 2))
	assert.Equal(t, 2, fetches)
	assert.Equal(t, int64(1), svc.View().Pagination.CurrentPage)
}

func TestAccountSetRowsPerPageRewinds(t *testing.T) {
	var lastLimit, lastSkip int64
	api := &fakeCoreAPI{
		getTokenTransfers: func(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error) {
			lastLimit, lastSkip = limit, skip
			return transferPage(30, "tr-1"), nil
		},
	}
	svc := NewAccountService(api)
	svc.Load(context.Background(), "default", "F1")
	require.True(t, svc.SetPage(context.Background(), 1))

	assert.True(t, svc.SetRowsPerPage(context.Background(), 10))
	assert.Equal(t, int64(10), lastLimit)
	assert.Equal(t, int64(0), lastSkip)
	assert.Equal(t, int64(0), svc.View().Pagination.CurrentPage)
}

func TestAccountSetRowsPerPageRejected(t *testing.T) {
	fetches := 0
	api := &fakeCoreAPI{
		getTokenTransfers: func(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error) {
			fetches++
			return transferPage(30, "tr-1"), nil
		},
	}
	svc := NewAccountService(api)
	svc.Load(context.Background(), "default", "F1")
	require.Equal(t, 1, fetches)

	assert.False(t, svc.SetRowsPerPage(context.Background(), 7))
	assert.Equal(t, 1, fetches)
}

func TestAccountTransferFetchFailure(t *testing.T) {
	api := &fakeCoreAPI{
		getTokenAccount: func(ctx context.Context, ns, poolProtocolID string) (*models.TokenAccount, error) {
			return &models.TokenAccount{PoolProtocolID: "F1", Balance: "3"}, nil
		},
		getTokenTransfers: func(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error) {
			return nil, errors.New("core unavailable")
		},
	}
	svc := NewAccountService(api)

	svc.Load(context.Background(), "default", "F1")

	// the account half still renders, the transfer table stays blank
	assert.False(t, svc.Loading())
	view := svc.View()
	require.NotNil(t, view.Account)
	assert.Empty(t, view.Transfers)
	assert.Equal(t, int64(0), view.Pagination.TotalCount)
}

func TestAccountStaleLoadDropped(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	api := &fakeCoreAPI{
		getTokenAccount: func(ctx context.Context, ns, poolProtocolID string) (*models.TokenAccount, error) {
			if poolProtocolID == "slow" {
				once.Do(func() { close(started) })
				<-release
				return &models.TokenAccount{PoolProtocolID: "slow", Balance: "1"}, nil
			}
			return &models.TokenAccount{PoolProtocolID: poolProtocolID, Balance: "99"}, nil
		},
		getTokenTransfers: func(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error) {
			return transferPage(1, "tr-"+poolProtocolID), nil
		},
	}
	svc := NewAccountService(api)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		svc.Load(context.Background(), "default", "slow")
	}()
	<-started

	// a newer load supersedes the in-flight one
	svc.Load(context.Background(), "default", "fast")
	close(release)
	wg.Wait()

	assert.False(t, svc.Loading())
	view := svc.View()
	require.NotNil(t, view.Account)
	assert.Equal(t, "99", view.Account.Balance)
}

func TestAccountReloadRewindsPagination(t *testing.T) {
	api := &fakeCoreAPI{
		getTokenTransfers: func(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error) {
			return transferPage(30, "tr-1"), nil
		},
	}
	svc := NewAccountService(api)
	svc.Load(context.Background(), "default", "F1")
	require.True(t, svc.SetPage(context.Background(), 1))

	// switching target resets the cursor to the first page
	svc.Load(context.Background(), "corp", "F2")
	view := svc.View()
	assert.Equal(t, "corp", view.Namespace)
	assert.Equal(t, "F2", view.PoolProtocolID)
	assert.Equal(t, int64(0), view.Pagination.CurrentPage)
}
