package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger-labs/firefly-explorer/models"
)

func TestDashboardRefresh(t *testing.T) {
	api := &fakeCoreAPI{
		getMessages: func(ctx context.Context, ns string, limit int64) ([]*models.Message, error) {
			assert.Equal(t, "default", ns)
			assert.Equal(t, int64(25), limit)
			return []*models.Message{{Sequence: 12}, {Sequence: 11}}, nil
		},
		getTransactionSequence: func(ctx context.Context, ns string) (int64, error) {
			return 42, nil
		},
		getRecentTransactions: func(ctx context.Context, ns string, limit int64, createdAfter time.Time) ([]*models.Transaction, error) {
			assert.WithinDuration(t, time.Now().Add(-24*time.Hour), createdAfter, time.Minute)
			return []*models.Transaction{{ID: "tx-1"}}, nil
		},
	}
	svc := NewDashboardService(api, 25, 24*time.Hour)

	svc.Refresh(context.Background(), "default")

	assert.False(t, svc.Loading())
	view := svc.View()
	assert.Equal(t, "default", view.Namespace)
	assert.Len(t, view.Messages, 2)
	assert.Len(t, view.Transactions, 1)
	assert.Equal(t, int64(42), view.LatestSequence)
}

func TestDashboardPartialFailure(t *testing.T) {
	api := &fakeCoreAPI{
		getMessages: func(ctx context.Context, ns string, limit int64) ([]*models.Message, error) {
			return nil, errors.New("core unavailable")
		},
		getTransactionSequence: func(ctx context.Context, ns string) (int64, error) {
			return 42, nil
		},
		getRecentTransactions: func(ctx context.Context, ns string, limit int64, createdAfter time.Time) ([]*models.Transaction, error) {
			return []*models.Transaction{{ID: "tx-1"}}, nil
		},
	}
	svc := NewDashboardService(api, 25, 24*time.Hour)

	svc.Refresh(context.Background(), "default")

	// the failed slice stays empty, the others still apply
	assert.False(t, svc.Loading())
	view := svc.View()
	assert.Empty(t, view.Messages)
	assert.Len(t, view.Transactions, 1)
	assert.Equal(t, int64(42), view.LatestSequence)
}

func TestDashboardStaleRefreshDropped(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	api := &fakeCoreAPI{
		getMessages: func(ctx context.Context, ns string, limit int64) ([]*models.Message, error) {
			if ns == "slow" {
				once.Do(func() { close(started) })
				<-release
				return []*models.Message{{Sequence: 1}}, nil
			}
			return []*models.Message{{Sequence: 99}}, nil
		},
		getTransactionSequence: func(ctx context.Context, ns string) (int64, error) {
			if ns == "slow" {
				return 1, nil
			}
			return 99, nil
		},
	}
	svc := NewDashboardService(api, 25, 24*time.Hour)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		svc.Refresh(context.Background(), "slow")
	}()

	<-started

	// a newer refresh supersedes the in-flight one
	svc.Refresh(context.Background(), "fast")
	close(release)
	wg.Wait()

	// the stale refresh must not leave the loading flag raised either
	assert.False(t, svc.Loading())
	view := svc.View()
	assert.Equal(t, "fast", view.Namespace)
	assert.Equal(t, int64(99), view.LatestSequence)
	require.Len(t, view.Messages, 1)
	assert.Equal(t, int64(99), view.Messages[0].Sequence)
}
