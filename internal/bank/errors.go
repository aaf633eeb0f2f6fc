package bank

import "errors"

var (
	// ErrInvalidAmount rejects deposits and withdrawals of zero or less.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds rejects withdrawals above the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWithdrawalLimit rejects withdrawals above the per-operation cap.
	ErrWithdrawalLimit = errors.New("amount exceeds the per-withdrawal limit")

	// ErrDailyLimit rejects withdrawals once the daily count is used up.
	ErrDailyLimit = errors.New("daily withdrawal limit reached")

	// ErrAccountNotFound means no account exists with the given number.
	ErrAccountNotFound = errors.New("account not found")
)
