package transactions

import (
	"context"
	"errors"

	domain "main/internal/domain/entity/portfolio"
	interfaces "main/internal/domain/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrNilTransaction = errors.New("transaction is nil")

// EventPublisher fans executed transactions out to interested consumers.
// A nil publisher is a no-op.
type EventPublisher interface {
	PublishTransaction(ctx context.Context, tx *domain.Transaction) error
}

type Service struct {
	repo      interfaces.TransactionsRepository
	publisher EventPublisher
	logger    *logrus.Logger
}

func NewService(repo interfaces.TransactionsRepository, publisher EventPublisher, logger *logrus.Logger) *Service {
	return &Service{repo: repo, publisher: publisher, logger: logger}
}

// Create appends a transaction to the log and publishes it. A publish
// failure is logged, not returned: the record is already durable and the
// event stream is best-effort.
func (s *Service) Create(ctx context.Context, tx *domain.Transaction) error {
	if tx == nil {
		return ErrNilTransaction
	}
	if err := tx.Validate(); err != nil {
		return err
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return err
	}
	if s.publisher != nil {
		if err := s.publisher.PublishTransaction(ctx, tx); err != nil {
			s.logger.WithError(err).WithField("transaction_id", tx.ID).Warn("failed to publish transaction event")
		}
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	return s.repo.ListTransactionsByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, tx *domain.Transaction) error {
	if tx == nil {
		return ErrNilTransaction
	}
	if err := tx.Validate(); err != nil {
		return err
	}
	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}
