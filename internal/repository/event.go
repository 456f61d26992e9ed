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

	"github.com/lib/pq"
)

const eventColumns = `id, name, event_type, description, audience, is_paid, price,
		event_time, capacity, venue_id, status, created_by, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, event_type, description, audience, is_paid, price,
				event_time, capacity, venue_id, status, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Type, e.Description, e.Audience, e.IsPaid, e.Price,
		e.EventTime, e.Capacity, e.VenueID, e.Status, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// List scopes visibility by role: admins see every event, coordinators the
// events they created, everyone else only published (upcoming) ones.
func (r *EventRepository) List(ctx context.Context, role domain.Role, userID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`
	var args []any

	switch role {
	case domain.RoleAdmin:
	case domain.RoleCoordinator:
		query += ` WHERE created_by = $1`
		args = append(args, userID)
	default:
		query += ` WHERE status = $1`
		args = append(args, domain.EventStatusUpcoming)
	}
	query += ` ORDER BY event_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// UpdateStatus moves the event from one status to another with a single
// conditional write. A false return means the row was not in the expected
// status (or does not exist) and nothing changed.
func (r *EventRepository) UpdateStatus(ctx context.Context, id string, from, to domain.EventStatus) (bool, error) {
	query := `UPDATE events
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("update event status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("event rows affected: %w", err)
	}

	return rows > 0, nil
}

// SweepExpired advances a bounded batch of expired upcoming events to
// completed. SKIP LOCKED keeps the sweep from blocking behind concurrent
// registrations or payment confirmations holding event row locks; skipped
// rows are picked up on the next run.
func (r *EventRepository) SweepExpired(ctx context.Context, now time.Time, limit int) ([]*domain.Event, error) {
	query := `
		UPDATE events
		SET status = $1, updated_at = now()
		WHERE id IN (
			SELECT id FROM events
			WHERE status = $2 AND event_time < $3
			ORDER BY event_time
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.EventStatusCompleted, domain.EventStatusUpcoming, now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("sweep expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan swept event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) CapacitySnapshot(ctx context.Context, id string) (*domain.CapacitySnapshot, error) {
	query := `
		SELECT e.capacity, COUNT(r.id)
		FROM events e
		LEFT JOIN registrations r
			ON r.event_id = e.id
			AND r.status = ANY($2)
		WHERE e.id = $1
		GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, pq.Array(domain.ActiveRegistrationStatuses))
	if err != nil {
		return nil, fmt.Errorf("capacity snapshot: %w", err)
	}

	var snap domain.CapacitySnapshot
	if err = row.Scan(&snap.Capacity, &snap.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan capacity snapshot: %w", err)
	}

	if snap.Capacity != nil {
		remaining := *snap.Capacity - snap.Active
		if remaining < 0 {
			remaining = 0
		}
		snap.Remaining = &remaining
		snap.IsFull = snap.Active >= *snap.Capacity
	}

	return &snap, nil
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	err := scan(
		&e.ID, &e.Name, &e.Type, &e.Description, &e.Audience, &e.IsPaid, &e.Price,
		&e.EventTime, &e.Capacity, &e.VenueID, &e.Status, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
