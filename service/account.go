package service

import (
	"context"
	"sync"

	"github.com/hyperledger-labs/firefly-explorer/logging"
	"github.com/hyperledger-labs/firefly-explorer/metrics"
	"github.com/hyperledger-labs/firefly-explorer/models"
)

// AccountView is the snapshot the token account page renders.
type AccountView struct {
	Namespace      string
	PoolProtocolID string
	Account        *models.TokenAccount
	Transfers      []*models.TokenTransfer
	Pagination     Pagination
}

// AccountService drives the token account page: the account record plus a
// paginated transfer history. Page and page-size changes re-fetch the transfer
// page only; the account record is fetched on Load.
type AccountService struct {
	api CoreAPI

	mu         sync.RWMutex
	loading    bool
	gen        generation
	namespace  string
	poolID     string
	account    *models.TokenAccount
	transfers  []*models.TokenTransfer
	pagination Pagination
}

func NewAccountService(api CoreAPI) *AccountService {
	return &AccountService{
		api:        api,
		pagination: NewPagination(),
	}
}

// Load targets the view at a namespace and pool protocol ID, rewinds the
// pagination, and fetches the account record and the first transfer page
// together. Loading clears only once both fetches have settled. A failed
// fetch leaves its part of the view blank.
func (s *AccountService) Load(ctx context.Context, ns, poolProtocolID string) {
	s.mu.Lock()
	gen := s.gen.next()
	s.loading = true
	s.namespace = ns
	s.poolID = poolProtocolID
	s.pagination = NewPagination()
	limit, skip := s.pagination.Limit(), s.pagination.Skip()
	s.mu.Unlock()

	var (
		wg        sync.WaitGroup
		account   *models.TokenAccount
		transfers *models.TokenTransferList
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		result, err := s.api.GetTokenAccount(ctx, ns, poolProtocolID)
		if err != nil {
			metrics.FetchFailureCount.WithLabelValues("tokenaccounts").Inc()
			logging.Logger.Errorf("account: fetch token account %s in namespace %s failed, err=%s", poolProtocolID, ns, err.Error())
			return
		}
		account = result
	}()
	go func() {
		defer wg.Done()
		result, err := s.api.GetTokenTransfers(ctx, ns, poolProtocolID, limit, skip)
		if err != nil {
			metrics.FetchFailureCount.WithLabelValues("tokentransfers").Inc()
			logging.Logger.Errorf("account: fetch token transfers for %s in namespace %s failed, err=%s", poolProtocolID, ns, err.Error())
			return
		}
		transfers = result
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen.current() {
		metrics.StaleResponseCount.Inc()
		return
	}
	s.account = account
	if transfers != nil {
		s.transfers = transfers.Items
		s.pagination.TotalCount = transfers.Total
	} else {
		s.transfers = nil
	}
	s.loading = false
}

// SetPage moves the transfer table to another page and re-fetches that page.
// Transitions the pagination guard refuses are dropped without a fetch.
func (s *AccountService) SetPage(ctx context.Context, next int64) bool {
	s.mu.Lock()
	if !s.pagination.SetPage(next) {
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()
	s.refreshTransfers(ctx)
	return true
}

// SetRowsPerPage switches the transfer page size, rewinds to the first page,
// and re-fetches. Sizes outside the allowed set are dropped without a fetch.
func (s *AccountService) SetRowsPerPage(ctx context.Context, n int64) bool {
	s.mu.Lock()
	if !s.pagination.SetRowsPerPage(n) {
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()
	s.refreshTransfers(ctx)
	return true
}

func (s *AccountService) refreshTransfers(ctx context.Context) {
	s.mu.Lock()
	gen := s.gen.next()
	s.loading = true
	ns, poolID := s.namespace, s.poolID
	limit, skip := s.pagination.Limit(), s.pagination.Skip()
	s.mu.Unlock()

	result, err := s.api.GetTokenTransfers(ctx, ns, poolID, limit, skip)
	if err != nil {
		metrics.FetchFailureCount.WithLabelValues("tokentransfers").Inc()
		logging.Logger.Errorf("account: fetch token transfers for %s in namespace %s failed, err=%s", poolID, ns, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen.current() {
		metrics.StaleResponseCount.Inc()
		return
	}
	if result != nil {
		s.transfers = result.Items
		s.pagination.TotalCount = result.Total
	} else {
		s.transfers = nil
	}
	s.loading = false
}

// Loading reports whether a load or page change is still settling.
func (s *AccountService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// View returns the last applied snapshot.
func (s *AccountService) View() AccountView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AccountView{
		Namespace:      s.namespace,
		PoolProtocolID: s.poolID,
		Account:        s.account,
		Transfers:      s.transfers,
		Pagination:     s.pagination,
	}
}
