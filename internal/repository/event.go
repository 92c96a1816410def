package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/philbirt/event-staking/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

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

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) (int64, error) {
	// Ids come from the events sequence: they start at 1, only grow and are
	// never handed out twice, even when the insert itself fails.
	query := `INSERT INTO events (owner, name, capacity, price, starts_at, duration_seconds, escrow_balance, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
			  RETURNING id`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		e.Owner, e.Name, e.Capacity, e.Price,
		e.StartsAt, int64(e.Duration.Seconds()), time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}

	var id int64
	if err = row.Scan(&id); err != nil {
		return 0, fmt.Errorf("scan event id: %w", err)
	}

	return id, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT id, owner, name, capacity, price, starts_at, duration_seconds, escrow_balance, created_at
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// Metadata is the permissive read: an unknown id returns the zero value
// instead of ErrEventNotFound. Owner is the existence sentinel.
func (r *EventRepository) Metadata(ctx context.Context, id int64) (domain.Metadata, error) {
	query := `SELECT name, owner FROM events WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}

	var m domain.Metadata
	if err = row.Scan(&m.Name, &m.Owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Metadata{}, nil
		}
		return domain.Metadata{}, fmt.Errorf("scan metadata: %w", err)
	}

	return m, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, owner, name, capacity, price, starts_at, duration_seconds, escrow_balance, created_at
			  FROM events
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) GetDetails(ctx context.Context, id int64) (*domain.EventDetails, error) {
	query := `
		SELECT
			e.id, e.owner, e.name, e.capacity, e.price, e.starts_at,
			e.duration_seconds, e.escrow_balance, e.created_at,
			COUNT(res.participant) FILTER (WHERE res.status = $2) AS staked_count
		FROM events e
		LEFT JOIN reservations res ON res.event_id = e.id
		WHERE e.id = $1
		GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, domain.ReservationStaked)
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}

	var d domain.EventDetails
	var durationSeconds int64
	err = row.Scan(
		&d.Event.ID, &d.Event.Owner, &d.Event.Name, &d.Event.Capacity,
		&d.Event.Price, &d.Event.StartsAt, &durationSeconds,
		&d.Event.EscrowBalance, &d.Event.CreatedAt,
		&d.StakedCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}
	d.Event.Duration = time.Duration(durationSeconds) * time.Second
	d.SlotsLeft = d.Event.Capacity - d.StakedCount

	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT event_id, participant, status, amount, reserved_at, settled_at
		 FROM reservations
		 WHERE event_id = $1
		 ORDER BY reserved_at`, id)
	if err != nil {
		return nil, fmt.Errorf("list event reservations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rv domain.Reservation
		if err = rows.Scan(&rv.EventID, &rv.Participant, &rv.Status, &rv.Amount, &rv.ReservedAt, &rv.SettledAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		d.Reservations = append(d.Reservations, rv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list event reservations: %w", err)
	}

	return &d, nil
}

func (r *EventRepository) Stats(ctx context.Context) (domain.LedgerStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM reservations WHERE status = $1),
			(SELECT COUNT(*) FROM reservations WHERE status = $2),
			(SELECT COALESCE(SUM(escrow_balance), 0) FROM events)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		domain.ReservationStaked, domain.ReservationSettled)
	if err != nil {
		return domain.LedgerStats{}, fmt.Errorf("get stats: %w", err)
	}

	var s domain.LedgerStats
	if err = row.Scan(&s.Events, &s.StakedReservations, &s.SettledReservations, &s.EscrowTotal); err != nil {
		return domain.LedgerStats{}, fmt.Errorf("scan stats: %w", err)
	}

	return s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	var durationSeconds int64
	if err := row.Scan(
		&e.ID, &e.Owner, &e.Name, &e.Capacity, &e.Price,
		&e.StartsAt, &durationSeconds, &e.EscrowBalance, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.Duration = time.Duration(durationSeconds) * time.Second

	return &e, nil
}
