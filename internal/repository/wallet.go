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

type WalletRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWalletRepo(db *dbpg.DB) *WalletRepository {
	return &WalletRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *WalletRepository) Deposit(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	query := `INSERT INTO wallets (account_id, balance, created_at, updated_at)
			  VALUES ($1, $2, now(), now())
			  ON CONFLICT (account_id)
			  DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = now()
			  RETURNING account_id, balance, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, accountID, amount)
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}

	var w domain.Wallet
	if err = row.Scan(&w.AccountID, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan wallet: %w", err)
	}

	return &w, nil
}

func (r *WalletRepository) Withdraw(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	// Guarded update: a missing account and an overdraw both leave zero
	// rows, and both mean the balance cannot cover the withdrawal.
	query := `UPDATE wallets SET balance = balance - $2, updated_at = now()
			  WHERE account_id = $1 AND balance >= $2
			  RETURNING account_id, balance, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, accountID, amount)
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	var w domain.Wallet
	if err = row.Scan(&w.AccountID, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInsufficientFunds
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}

	return &w, nil
}

// Balance mirrors the permissive event metadata read: an unknown account
// yields a zero-balance wallet, not an error.
func (r *WalletRepository) Balance(ctx context.Context, accountID string) (*domain.Wallet, error) {
	query := `SELECT account_id, balance, created_at, updated_at
			  FROM wallets
			  WHERE account_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	var w domain.Wallet
	if err = row.Scan(&w.AccountID, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.Wallet{AccountID: accountID}, nil
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}

	return &w, nil
}
