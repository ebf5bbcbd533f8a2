package service

import (
	"context"
	"time"

	"github.com/hyperledger-labs/firefly-explorer/models"
)

// fakeCoreAPI implements CoreAPI with overridable function fields. Calls
// without an override return empty results.
type fakeCoreAPI struct {
	getNamespaces          func(ctx context.Context) ([]*models.Namespace, error)
	getMessages            func(ctx context.Context, ns string, limit int64) ([]*models.Message, error)
	getMessage             func(ctx context.Context, ns, msgID string) (*models.Message, error)
	getRecentTransactions  func(ctx context.Context, ns string, limit int64, createdAfter time.Time) ([]*models.Transaction, error)
	getTransaction         func(ctx context.Context, ns, txID string) (*models.Transaction, error)
	getTransactionSequence func(ctx context.Context, ns string) (int64, error)
	getBatch               func(ctx context.Context, ns, batchID string) (*models.Batch, error)
	getTokenAccount        func(ctx context.Context, ns, poolProtocolID string) (*models.TokenAccount, error)
	getTokenTransfers      func(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error)
}

func (f *fakeCoreAPI) GetNamespaces(ctx context.Context) ([]*models.Namespace, error) {
	if f.getNamespaces != nil {
		return f.getNamespaces(ctx)
	}
	return nil, nil
}

func (f *fakeCoreAPI) GetMessages(ctx context.Context, ns string, limit int64) ([]*models.Message, error) {
	if f.getMessages != nil {
		return f.getMessages(ctx, ns, limit)
	}
	return nil, nil
}

func (f *fakeCoreAPI) GetMessage(ctx context.Context, ns, msgID string) (*models.Message, error) {
	if f.getMessage != nil {
		return f.getMessage(ctx, ns, msgID)
	}
	return &models.Message{}, nil
}

func (f *fakeCoreAPI) GetRecentTransactions(ctx context.Context, ns string, limit int64, createdAfter time.Time) ([]*models.Transaction, error) {
	if f.getRecentTransactions != nil {
		return f.getRecentTransactions(ctx, ns, limit, createdAfter)
	}
	return nil, nil
}

func (f *fakeCoreAPI) GetTransaction(ctx context.Context, ns, txID string) (*models.Transaction, error) {
	if f.getTransaction != nil {
		return f.getTransaction(ctx, ns, txID)
	}
	return &models.Transaction{}, nil
}

func (f *fakeCoreAPI) GetTransactionSequence(ctx context.Context, ns string) (int64, error) {
	if f.getTransactionSequence != nil {
		return f.getTransactionSequence(ctx, ns)
	}
	return 0, nil
}

func (f *fakeCoreAPI) GetBatch(ctx context.Context, ns, batchID string) (*models.Batch, error) {
	if f.getBatch != nil {
		return f.getBatch(ctx, ns, batchID)
	}
	return &models.Batch{}, nil
}

func (f *fakeCoreAPI) GetTokenAccount(ctx context.Context, ns, poolProtocolID string) (*models.TokenAccount, error) {
	if f.getTokenAccount != nil {
		return f.getTokenAccount(ctx, ns, poolProtocolID)
	}
	return nil, nil
}

func (f *fakeCoreAPI) GetTokenTransfers(ctx context.Context, ns, poolProtocolID string, limit, skip int64) (*models.TokenTransferList, error) {
	if f.getTokenTransfers != nil {
		return f.getTokenTransfers(ctx, ns, poolProtocolID, limit, skip)
	}
	return &models.TokenTransferList{}, nil
}
