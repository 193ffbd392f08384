package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "main/internal/domain/entity/portfolio"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// unit_price travels as text to keep NUMERIC precision intact.
const transactionColumns = `id, user_id, instrument_id, type, quantity, unit_price::text, executed_at`

func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	if tx == nil {
		return errors.New("transaction is nil")
	}
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.ExecutedAt.IsZero() {
		tx.ExecutedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO transactions (id, user_id, instrument_id, type, quantity, unit_price, executed_at)
		VALUES ($1,$2,$3,$4,$5,$6::numeric,$7)
		RETURNING ` + transactionColumns

	row := r.pool.QueryRow(ctx, query,
		tx.ID,
		tx.UserID,
		tx.InstrumentID,
		tx.Type.String(),
		tx.Quantity,
		tx.UnitPrice.String(),
		tx.ExecutedAt,
	)
	return scanTransactionInto(row, tx)
}

func (r *Repository) GetTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	const query = `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	tx := &domain.Transaction{}
	if err := scanTransactionInto(row, tx); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return tx, nil
}

func (r *Repository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	const query = `SELECT ` + transactionColumns + ` FROM transactions ORDER BY executed_at`
	return r.listTransactions(ctx, query)
}

func (r *Repository) ListTransactionsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	const query = `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY executed_at`
	return r.listTransactions(ctx, query, userID)
}

func (r *Repository) listTransactions(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := make([]domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction
		if err := scanTransactionInto(rows, &tx); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (r *Repository) UpdateTransaction(ctx context.Context, tx *domain.Transaction) error {
	if tx == nil {
		return errors.New("transaction is nil")
	}
	if tx.ID == uuid.Nil {
		return errors.New("transaction ID is required")
	}

	const query = `
		UPDATE transactions
		SET user_id=$2,
			instrument_id=$3,
			type=$4,
			quantity=$5,
			unit_price=$6::numeric,
			executed_at=$7
		WHERE id=$1
		RETURNING ` + transactionColumns

	row := r.pool.QueryRow(ctx, query,
		tx.ID,
		tx.UserID,
		tx.InstrumentID,
		tx.Type.String(),
		tx.Quantity,
		tx.UnitPrice.String(),
		tx.ExecutedAt,
	)
	if err := scanTransactionInto(row, tx); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTransactionNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM transactions WHERE id=$1`
	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func scanTransactionInto(row pgx.Row, tx *domain.Transaction) error {
	var (
		txType string
		price  string
	)
	if err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.InstrumentID,
		&txType,
		&tx.Quantity,
		&price,
		&tx.ExecutedAt,
	); err != nil {
		return err
	}
	parsedType, err := domain.NewTransactionType(txType)
	if err != nil {
		return err
	}
	parsedPrice, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("parse unit price: %w", err)
	}
	tx.Type = parsedType
	tx.UnitPrice = parsedPrice
	return nil
}
