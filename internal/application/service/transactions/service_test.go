package transactions

import (
	"context"
	"errors"
	"testing"

	domain "main/internal/domain/entity/portfolio"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type fakeRepo struct {
	byID map[uuid.UUID]domain.Transaction
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[uuid.UUID]domain.Transaction)}
}

func (f *fakeRepo) CreateTransaction(_ context.Context, tx *domain.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	f.byID[tx.ID] = *tx
	return nil
}

func (f *fakeRepo) GetTransaction(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	tx, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return &tx, nil
}

func (f *fakeRepo) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	txs := make([]domain.Transaction, 0, len(f.byID))
	for _, tx := range f.byID {
		txs = append(txs, tx)
	}
	return txs, nil
}

func (f *fakeRepo) ListTransactionsByUser(_ context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	txs := make([]domain.Transaction, 0)
	for _, tx := range f.byID {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func (f *fakeRepo) UpdateTransaction(_ context.Context, tx *domain.Transaction) error {
	if _, ok := f.byID[tx.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	f.byID[tx.ID] = *tx
	return nil
}

func (f *fakeRepo) DeleteTransaction(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRepo) Close() {}

type recordingPublisher struct {
	published []uuid.UUID
	err       error
}

func (r *recordingPublisher) PublishTransaction(_ context.Context, tx *domain.Transaction) error {
	if r.err != nil {
		return r.err
	}
	r.published = append(r.published, tx.ID)
	return nil
}

func validTransaction() *domain.Transaction {
	return &domain.Transaction{
		UserID:       uuid.New(),
		InstrumentID: uuid.New(),
		Type:         domain.TransactionBuy,
		Quantity:     10,
		UnitPrice:    decimal.RequireFromString("100.5"),
	}
}

func TestCreatePublishesEvent(t *testing.T) {
	repo := newFakeRepo()
	pub := &recordingPublisher{}
	svc := NewService(repo, pub, logrus.New())

	tx := validTransaction()
	if err := svc.Create(context.Background(), tx); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(pub.published) != 1 || pub.published[0] != tx.ID {
		t.Errorf("expected one published event for %s, got %v", tx.ID, pub.published)
	}
}

func TestCreateSurvivesPublishFailure(t *testing.T) {
	repo := newFakeRepo()
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := NewService(repo, pub, logrus.New())

	tx := validTransaction()
	if err := svc.Create(context.Background(), tx); err != nil {
		t.Fatalf("Create must not fail on publish error: %v", err)
	}
	if _, ok := repo.byID[tx.ID]; !ok {
		t.Errorf("transaction was not persisted")
	}
}

func TestCreateRejectsInvalidType(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, logrus.New())

	tx := validTransaction()
	tx.Type = "transfer"
	if err := svc.Create(context.Background(), tx); err == nil {
		t.Error("expected error for invalid transaction type")
	}
}

func TestCreateRejectsNegativeQuantity(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, logrus.New())

	tx := validTransaction()
	tx.Quantity = -5
	if !errors.Is(svc.Create(context.Background(), tx), domain.ErrInvalidQuantity) {
		t.Error("expected ErrInvalidQuantity")
	}
}

func TestUpdateUnknownTransaction(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, logrus.New())

	tx := validTransaction()
	tx.ID = uuid.New()
	if !errors.Is(svc.Update(context.Background(), tx), domain.ErrTransactionNotFound) {
		t.Error("expected ErrTransactionNotFound")
	}
}
