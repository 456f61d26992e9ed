package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create claims a capacity slot. The event row lock serialises concurrent
// attempts so the count-then-insert below cannot overbook: when two requests
// race for the last slot, the second blocks on FOR UPDATE and sees the
// winner's row after commit.
func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.EventStatus
	var capacity *int
	lockQuery := `SELECT status, capacity FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, reg.EventID).Scan(&status, &capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event row: %w", err)
	}

	if status != domain.EventStatusUpcoming {
		return fmt.Errorf("%w: event is %s", domain.ErrInvalidState, status)
	}

	var dup int
	dupQuery := `SELECT COUNT(*) FROM registrations
				 WHERE event_id = $1 AND user_id = $2 AND status <> $3`
	if err = tx.QueryRowContext(ctx, dupQuery, reg.EventID, reg.UserID, domain.RegistrationStatusCanceled).Scan(&dup); err != nil {
		return fmt.Errorf("check duplicate: %w", err)
	}
	if dup > 0 {
		return domain.ErrAlreadyRegistered
	}

	if capacity != nil {
		var active int
		activeQuery := `SELECT COUNT(*) FROM registrations
						WHERE event_id = $1 AND status = ANY($2)`
		if err = tx.QueryRowContext(
			ctx, activeQuery, reg.EventID,
			pq.Array(domain.ActiveRegistrationStatuses),
		).Scan(&active); err != nil {
			return fmt.Errorf("count active registrations: %w", err)
		}
		if active >= *capacity {
			return domain.ErrCapacityExceeded
		}
	}

	query := `INSERT INTO registrations (id, event_id, user_id, status, registered_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(
		ctx, query,
		reg.ID, reg.EventID, reg.UserID, reg.Status, reg.RegisteredAt, reg.UpdatedAt,
	)
	if err != nil {
		// backstop: the partial unique index catches duplicates racing past
		// the count above
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return tx.Commit()
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, status, registered_at, updated_at
			  FROM registrations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	var reg domain.Registration
	if err = row.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.RegisteredAt, &reg.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return &reg, nil
}

// Cancel frees the slot. The conditional write makes repeated cancels no-ops.
func (r *RegistrationRepository) Cancel(ctx context.Context, id string) (bool, error) {
	query := `UPDATE registrations
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status <> $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.RegistrationStatusCanceled)
	if err != nil {
		return false, fmt.Errorf("cancel registration: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("registration rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *RegistrationRepository) MarkAttended(ctx context.Context, id string) (bool, error) {
	query := `UPDATE registrations
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.RegistrationStatusAttended, domain.RegistrationStatusRegistered,
	)
	if err != nil {
		return false, fmt.Errorf("mark attended: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("registration rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, status, registered_at, updated_at
			  FROM registrations
			  WHERE event_id = $1
			  ORDER BY registered_at`
	return r.list(ctx, query, eventID)
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, status, registered_at, updated_at
			  FROM registrations
			  WHERE user_id = $1
			  ORDER BY registered_at DESC`
	return r.list(ctx, query, userID)
}

func (r *RegistrationRepository) list(ctx context.Context, query string, arg any) ([]*domain.Registration, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		var reg domain.Registration
		if err = rows.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.RegisteredAt, &reg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, &reg)
	}

	return res, rows.Err()
}
