package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/philbirt/event-staking/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// ReservationRepository applies the settlement operations. Each one runs in
// a single transaction that first takes the per-event exclusive lock
// (SELECT ... FOR UPDATE on the event row), so status, escrow balance and
// wallet movement commit together or not at all. Wallet credits are the
// last statements in their transactions, after all ledger bookkeeping.
type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Reserve(ctx context.Context, eventID int64, participant string, amount int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	event, err := lockEvent(ctx, tx, eventID)
	if err != nil {
		return err
	}

	reservation, err := getReservation(ctx, tx, eventID, participant)
	if err != nil {
		return err
	}

	staked, err := countStaked(ctx, tx, eventID)
	if err != nil {
		return err
	}

	if err = domain.ValidateReserve(event, reservation, staked, amount); err != nil {
		return err
	}

	// Debit the participant's free balance; the guarded update fails the
	// whole operation when the wallet cannot cover the stake.
	res, err := tx.ExecContext(ctx,
		`UPDATE wallets SET balance = balance - $2, updated_at = now()
		 WHERE account_id = $1 AND balance >= $2`,
		participant, amount,
	)
	if err != nil {
		return fmt.Errorf("debit wallet: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("debit rows affected: %w", err)
	} else if n == 0 {
		return domain.ErrInsufficientFunds
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO reservations (event_id, participant, status, amount, reserved_at)
		 VALUES ($1, $2, $3, $4, now())`,
		eventID, participant, domain.ReservationStaked, amount,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyReserved
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE events SET escrow_balance = escrow_balance + $2 WHERE id = $1`,
		eventID, amount,
	)
	if err != nil {
		return fmt.Errorf("grow escrow: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) CheckIn(ctx context.Context, eventID int64, participant string, at time.Time) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	event, err := lockEvent(ctx, tx, eventID)
	if err != nil {
		return 0, err
	}

	reservation, err := getReservation(ctx, tx, eventID, participant)
	if err != nil {
		return 0, err
	}

	if err = domain.ValidateCheckIn(event, reservation, at); err != nil {
		return 0, err
	}

	refund := reservation.Amount

	_, err = tx.ExecContext(ctx,
		`UPDATE reservations SET status = $3, settled_at = $4
		 WHERE event_id = $1 AND participant = $2`,
		eventID, participant, domain.ReservationSettled, at,
	)
	if err != nil {
		return 0, fmt.Errorf("settle reservation: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE events SET escrow_balance = escrow_balance - $2 WHERE id = $1`,
		eventID, refund,
	)
	if err != nil {
		return 0, fmt.Errorf("shrink escrow: %w", err)
	}

	// Refund last, with bookkeeping already written.
	if err = creditWallet(ctx, tx, participant, refund); err != nil {
		return 0, err
	}

	return refund, tx.Commit()
}

func (r *ReservationRepository) Sweep(ctx context.Context, eventID int64, caller string, at time.Time) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	event, err := lockEvent(ctx, tx, eventID)
	if err != nil {
		return 0, err
	}

	if err = domain.ValidateSweep(event, caller, at); err != nil {
		return 0, err
	}

	amount := event.EscrowBalance

	// Zero the escrow before paying out, so a re-entered sweep sees an
	// already-drained event.
	_, err = tx.ExecContext(ctx,
		`UPDATE events SET escrow_balance = 0 WHERE id = $1`,
		eventID,
	)
	if err != nil {
		return 0, fmt.Errorf("zero escrow: %w", err)
	}

	if err = creditWallet(ctx, tx, caller, amount); err != nil {
		return 0, err
	}

	return amount, tx.Commit()
}

func (r *ReservationRepository) GetByEventAndParticipant(ctx context.Context, eventID int64, participant string) (*domain.Reservation, error) {
	query := `SELECT event_id, participant, status, amount, reserved_at, settled_at
			  FROM reservations
			  WHERE event_id=$1 AND participant=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, participant)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var res domain.Reservation
	if err = row.Scan(&res.EventID, &res.Participant, &res.Status, &res.Amount, &res.ReservedAt, &res.SettledAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return &res, nil
}

func (r *ReservationRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Reservation, error) {
	query := `SELECT event_id, participant, status, amount, reserved_at, settled_at
			  FROM reservations
			  WHERE event_id = $1
			  ORDER BY reserved_at`

	return r.list(ctx, query, eventID)
}

func (r *ReservationRepository) ListByParticipant(ctx context.Context, participant string) ([]*domain.Reservation, error) {
	query := `SELECT event_id, participant, status, amount, reserved_at, settled_at
			  FROM reservations
			  WHERE participant = $1
			  ORDER BY reserved_at DESC`

	return r.list(ctx, query, participant)
}

func (r *ReservationRepository) list(ctx context.Context, query string, arg any) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err = rows.Scan(&rv.EventID, &rv.Participant, &rv.Status, &rv.Amount, &rv.ReservedAt, &rv.SettledAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}

// lockEvent takes the event row lock for the duration of the transaction.
// nil with no error means the event does not exist; the domain rules turn
// that into ErrEventNotFound.
func lockEvent(ctx context.Context, tx *sql.Tx, eventID int64) (*domain.Event, error) {
	query := `SELECT id, owner, name, capacity, price, starts_at, duration_seconds, escrow_balance, created_at
			  FROM events
			  WHERE id = $1
			  FOR UPDATE`

	var e domain.Event
	var durationSeconds int64
	err := tx.QueryRowContext(ctx, query, eventID).Scan(
		&e.ID, &e.Owner, &e.Name, &e.Capacity, &e.Price,
		&e.StartsAt, &durationSeconds, &e.EscrowBalance, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}
	e.Duration = time.Duration(durationSeconds) * time.Second

	return &e, nil
}

func getReservation(ctx context.Context, tx *sql.Tx, eventID int64, participant string) (*domain.Reservation, error) {
	query := `SELECT event_id, participant, status, amount, reserved_at, settled_at
			  FROM reservations
			  WHERE event_id = $1 AND participant = $2`

	var r domain.Reservation
	err := tx.QueryRowContext(ctx, query, eventID, participant).Scan(
		&r.EventID, &r.Participant, &r.Status, &r.Amount, &r.ReservedAt, &r.SettledAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return &r, nil
}

func countStaked(ctx context.Context, tx *sql.Tx, eventID int64) (int, error) {
	var n int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations WHERE event_id = $1 AND status = $2`,
		eventID, domain.ReservationStaked,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count staked: %w", err)
	}

	return n, nil
}

func creditWallet(ctx context.Context, tx *sql.Tx, accountID string, amount int64) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO wallets (account_id, balance, created_at, updated_at)
		 VALUES ($1, $2, now(), now())
		 ON CONFLICT (account_id)
		 DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = now()`,
		accountID, amount,
	)
	if err != nil {
		return fmt.Errorf("credit wallet: %w", err)
	}

	return nil
}
