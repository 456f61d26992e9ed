package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const paymentColumns = `id, event_id, payer_id, venue_id, amount, currency, status,
		order_ref, transaction_id, created_at, updated_at`

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (id, event_id, payer_id, venue_id, amount, currency, status,
				order_ref, transaction_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.EventID, p.PayerID, p.VenueID, p.Amount, p.Currency, p.Status,
		p.OrderRef, p.TransactionID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return p, nil
}

func (r *PaymentRepository) SetOrderRef(ctx context.Context, id, orderRef string) error {
	query := `UPDATE payments
			  SET order_ref = $2, updated_at = now()
			  WHERE id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, orderRef)
	if err != nil {
		return fmt.Errorf("set order ref: %w", err)
	}

	return nil
}

// Confirm settles the payment and publishes the owning event in one
// transaction. The payment row lock makes duplicate confirmations harmless:
// the second caller sees status completed and returns without writing.
// The event update is conditional on draft so a confirmation can never
// fight a sweep or another transition over the row.
func (r *PaymentRepository) Confirm(ctx context.Context, id, transactionID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var eventID string
	var status domain.PaymentStatus
	lockQuery := `SELECT event_id, status FROM payments WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&eventID, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrPaymentNotFound
		}
		return false, fmt.Errorf("lock payment row: %w", err)
	}

	if status == domain.PaymentStatusCompleted {
		return true, tx.Commit()
	}

	query := `UPDATE payments
			  SET status = $2, transaction_id = $3, updated_at = now()
			  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, id, domain.PaymentStatusCompleted, transactionID); err != nil {
		return false, fmt.Errorf("complete payment: %w", err)
	}

	eventQuery := `UPDATE events
				   SET status = $3, updated_at = now()
				   WHERE id = $1 AND status = $2`
	if _, err = tx.ExecContext(
		ctx, eventQuery, eventID,
		domain.EventStatusDraft, domain.EventStatusUpcoming,
	); err != nil {
		return false, fmt.Errorf("publish event: %w", err)
	}

	return false, tx.Commit()
}

func (r *PaymentRepository) Fail(ctx context.Context, id string) error {
	query := `UPDATE payments
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.PaymentStatusFailed, domain.PaymentStatusPending,
	)
	if err != nil {
		return fmt.Errorf("fail payment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("payment rows affected: %w", err)
	}
	if rows == 0 {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.Status == domain.PaymentStatusCompleted {
			return fmt.Errorf("%w: payment already completed", domain.ErrInvalidState)
		}
		// already failed, nothing to do
	}

	return nil
}

func (r *PaymentRepository) List(ctx context.Context, role domain.Role, userID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments`
	var args []any

	if role != domain.RoleAdmin {
		query += ` WHERE payer_id = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanPayment(scan func(dest ...any) error) (*domain.Payment, error) {
	var p domain.Payment
	err := scan(
		&p.ID, &p.EventID, &p.PayerID, &p.VenueID, &p.Amount, &p.Currency, &p.Status,
		&p.OrderRef, &p.TransactionID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
