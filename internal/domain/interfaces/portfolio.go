package interfaces

import (
	"context"

	portfolio "main/internal/domain/entity/portfolio"

	"github.com/google/uuid"
)

type HoldingsRepository interface {
	CreateHolding(ctx context.Context, holding *portfolio.Holding) error
	GetHolding(ctx context.Context, userID, instrumentID uuid.UUID) (*portfolio.Holding, error)
	ListHoldingsByUser(ctx context.Context, userID uuid.UUID) ([]portfolio.Holding, error)
	DeleteHolding(ctx context.Context, userID, instrumentID uuid.UUID) error
	Close()
}

type TransactionsRepository interface {
	CreateTransaction(ctx context.Context, tx *portfolio.Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*portfolio.Transaction, error)
	ListTransactions(ctx context.Context) ([]portfolio.Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]portfolio.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *portfolio.Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	Close()
}
