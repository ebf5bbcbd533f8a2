package service

import (
	"context"
	"errors"

	"github.com/hyperledger-labs/firefly-explorer/cache"
	"github.com/hyperledger-labs/firefly-explorer/external/ff"
	"github.com/hyperledger-labs/firefly-explorer/logging"
	"github.com/hyperledger-labs/firefly-explorer/metrics"
	"github.com/hyperledger-labs/firefly-explorer/models"
)

// MessageDetail is the resolved detail of a single message: the message
// itself, whether it is pinned to the blockchain, and the transaction that
// pinned its batch when that transaction could be resolved.
type MessageDetail struct {
	Message       *models.Message
	Pinned        bool
	TransactionID string
}

// MessageService resolves message details. Batch lookups are memoized in a
// bounded cache keyed by namespace and batch ID, since many messages of the
// same batch share one pinning transaction.
type MessageService struct {
	api   CoreAPI
	cache cache.Cache
}

func NewMessageService(api CoreAPI, cache cache.Cache) *MessageService {
	return &MessageService{
		api:   api,
		cache: cache,
	}
}

// Resolve builds the detail view of msg. A message without a batch, or whose
// batch cannot be fetched, still renders; only the transaction link is
// omitted. Pinned is decided from the message header alone.
func (s *MessageService) Resolve(ctx context.Context, ns string, msg *models.Message) MessageDetail {
	detail := MessageDetail{
		Message: msg,
		Pinned:  msg.Header.TX.Type == models.TransactionTypePin,
	}
	if msg.BatchID == "" {
		return detail
	}
	batch, err := s.getBatch(ctx, ns, msg.BatchID)
	if err != nil {
		if errors.Is(err, ff.ErrNotFound) {
			logging.Logger.Infof("message: batch %s not found in namespace %s", msg.BatchID, ns)
		} else {
			metrics.FetchFailureCount.WithLabelValues("batches").Inc()
			logging.Logger.Errorf("message: fetch batch %s in namespace %s failed, err=%s", msg.BatchID, ns, err.Error())
		}
		return detail
	}
	detail.TransactionID = batch.Payload.TX.ID
	return detail
}

func (s *MessageService) getBatch(ctx context.Context, ns, batchID string) (*models.Batch, error) {
	key := ns + "/" + batchID
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*models.Batch), nil
	}
	batch, err := s.api.GetBatch(ctx, ns, batchID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, batch)
	return batch, nil
}
