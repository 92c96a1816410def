package service

import (
	"context"
	"testing"

	"github.com/philbirt/event-staking/internal/domain"
	"github.com/philbirt/event-staking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWalletService_Deposit_Success(t *testing.T) {
	repo := mocks.NewMockWalletRepo(t)
	svc := NewWalletService(repo)

	repo.EXPECT().Deposit(mock.Anything, "acc-1", int64(100)).
		Return(&domain.Wallet{AccountID: "acc-1", Balance: 100}, nil)

	wallet, err := svc.Deposit(context.Background(), "acc-1", 100)

	require.NoError(t, err)
	assert.Equal(t, int64(100), wallet.Balance)
}

func TestWalletService_Deposit_NonPositiveAmount(t *testing.T) {
	svc := NewWalletService(nil)

	_, err := svc.Deposit(context.Background(), "acc-1", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWalletService_Withdraw_Success(t *testing.T) {
	repo := mocks.NewMockWalletRepo(t)
	svc := NewWalletService(repo)

	repo.EXPECT().Withdraw(mock.Anything, "acc-1", int64(30)).
		Return(&domain.Wallet{AccountID: "acc-1", Balance: 70}, nil)

	wallet, err := svc.Withdraw(context.Background(), "acc-1", 30)

	require.NoError(t, err)
	assert.Equal(t, int64(70), wallet.Balance)
}

func TestWalletService_Withdraw_InsufficientFunds(t *testing.T) {
	repo := mocks.NewMockWalletRepo(t)
	svc := NewWalletService(repo)

	repo.EXPECT().Withdraw(mock.Anything, "acc-1", int64(1000)).
		Return(nil, domain.ErrInsufficientFunds)

	_, err := svc.Withdraw(context.Background(), "acc-1", 1000)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestWalletService_Balance_UnknownAccountIsZero(t *testing.T) {
	repo := mocks.NewMockWalletRepo(t)
	svc := NewWalletService(repo)

	repo.EXPECT().Balance(mock.Anything, "ghost").
		Return(&domain.Wallet{AccountID: "ghost"}, nil)

	wallet, err := svc.Balance(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Zero(t, wallet.Balance)
}
