package domain

import "time"

// Wallet is a custody account in the single fungible unit the ledger
// escrows. Balances never go negative; a debit that would overdraw fails
// with ErrInsufficientFunds.
type Wallet struct {
	AccountID string    `json:"account_id"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
