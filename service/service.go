package service

import (
	"context"
	"time"

	"github.com/hyperledger-labs/firefly-explorer/models"
)

// CoreAPI is the slice of the FireFly core REST client the views consume.
type CoreAPI interface {
	GetNamespaces(ctx context.Context) ([]*models.Namespace, error)
	GetMessages(ctx context.Context, ns string, limit int64) ([]*models.Message, error)
	GetMessage(ctx context.Context, ns, msgID string) (*models.Message, error)
	GetRecentTransactions(ctx context.Context, ns string, limit int64, createdAfter time.Time) ([]*models.Transaction, error)
	GetTransaction(ctx context.Context, ns, txID string) (*models.Transaction, error)
	GetTransactionSequence(ctx context.Context, ns string) (int64, error)
	GetBatch(ctx context.Context, ns, batchID string) (*models.Batch, error)
	GetTokenAccount(ctx context.Context, ns, poolProtocolID string) (*models.TokenAccount, error)
	GetTokenTransfers(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error)
}
