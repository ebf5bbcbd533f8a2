package service

import (
	"context"
	"sync"
	"time"

	"github.com/hyperledger-labs/firefly-explorer/logging"
	"github.com/hyperledger-labs/firefly-explorer/metrics"
	"github.com/hyperledger-labs/firefly-explorer/models"
)

// DashboardView is the snapshot the dashboard page renders.
type DashboardView struct {
	Namespace      string
	Messages       []*models.Message
	Transactions   []*models.Transaction
	LatestSequence int64
}

// DashboardService fetches the three dashboard slices of a namespace: recent
// messages, the latest-transaction sequence probe, and the transactions
// created within the configured time window.
type DashboardService struct {
	api          CoreAPI
	messageLimit int64
	txWindow     time.Duration

	mu      sync.RWMutex
	loading bool
	gen     generation
	view    DashboardView
}

func NewDashboardService(api CoreAPI, messageLimit int64, txWindow time.Duration) *DashboardService {
	return &DashboardService{
		api:          api,
		messageLimit: messageLimit,
		txWindow:     txWindow,
	}
}

// Refresh re-fetches all three slices for ns concurrently and waits for every
// fetch to settle before the loading flag clears. A failed fetch leaves its
// slice empty and is logged; it never aborts the others. If a newer Refresh
// started while this one was in flight, the whole result set is dropped.
func (s *DashboardService) Refresh(ctx context.Context, ns string) {
	s.mu.Lock()
	gen := s.gen.next()
	s.loading = true
	s.mu.Unlock()

	var (
		wg       sync.WaitGroup
		messages []*models.Message
		txs      []*models.Transaction
		sequence int64
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		result, err := s.api.GetMessages(ctx, ns, s.messageLimit)
		if err != nil {
			metrics.FetchFailureCount.WithLabelValues("messages").Inc()
			logging.Logger.Errorf("dashboard: fetch messages for namespace %s failed, err=%s", ns, err.Error())
			return
		}
		messages = result
	}()
	go func() {
		defer wg.Done()
		result, err := s.api.GetTransactionSequence(ctx, ns)
		if err != nil {
			metrics.FetchFailureCount.WithLabelValues("transactions").Inc()
			logging.Logger.Errorf("dashboard: probe transaction sequence for namespace %s failed, err=%s", ns, err.Error())
			return
		}
		sequence = result
	}()
	go func() {
		defer wg.Done()
		result, err := s.api.GetRecentTransactions(ctx, ns, s.messageLimit, time.Now().Add(-s.txWindow))
		if err != nil {
			metrics.FetchFailureCount.WithLabelValues("transactions").Inc()
			logging.Logger.Errorf("dashboard: fetch recent transactions for namespace %s failed, err=%s", ns, err.Error())
			return
		}
		txs = result
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen.current() {
		metrics.StaleResponseCount.Inc()
		return
	}
	s.view = DashboardView{
		Namespace:      ns,
		Messages:       messages,
		Transactions:   txs,
		LatestSequence: sequence,
	}
	s.loading = false
}

// Loading reports whether a refresh is still settling.
func (s *DashboardService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// View returns the last applied snapshot.
func (s *DashboardService) View() DashboardView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}
