package service

import (
	"context"
	"fmt"

	"github.com/philbirt/event-staking/internal/domain"
	"github.com/philbirt/event-staking/internal/service/ports"
)

// WalletService is the custody surface: accounts hold the free balance that
// reserve debits and check-in/sweep credit.
type WalletService struct {
	repo ports.WalletRepo
}

func NewWalletService(repo ports.WalletRepo) *WalletService {
	return &WalletService{repo: repo}
}

func (s *WalletService) Deposit(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	if amount < 1 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	wallet, err := s.repo.Deposit(ctx, accountID, amount)
	if err != nil {
		return nil, fmt.Errorf("deposit: %w", err)
	}

	return wallet, nil
}

func (s *WalletService) Withdraw(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error) {
	if amount < 1 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	wallet, err := s.repo.Withdraw(ctx, accountID, amount)
	if err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	return wallet, nil
}

func (s *WalletService) Balance(ctx context.Context, accountID string) (*domain.Wallet, error) {
	return s.repo.Balance(ctx, accountID)
}
