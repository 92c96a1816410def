package ports

import (
	"context"

	"github.com/philbirt/event-staking/internal/domain"
)

type WalletRepo interface {
	// Deposit credits the account, creating it on first use.
	Deposit(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error)
	// Withdraw debits free balance; overdraw fails with ErrInsufficientFunds.
	Withdraw(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error)
	// Balance never fails on an unknown account: it returns a zero-balance
	// wallet, mirroring the permissive event metadata read.
	Balance(ctx context.Context, accountID string) (*domain.Wallet, error)
}
