package bank

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/condorbank/teller/internal/money"
	"github.com/condorbank/teller/internal/user"
)

// Kind classifies a ledger movement.
type Kind string

const (
	Deposit    Kind = "DEPOSIT"
	Withdrawal Kind = "WITHDRAWAL"
)

// Transaction is one immutable ledger movement. The log on an account is
// append-only, so insertion order is chronological order.
type Transaction struct {
	ID        uuid.UUID
	Kind      Kind
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// Limits are the withdrawal rules applied to every account of a bank.
type Limits struct {
	// WithdrawalCap is the maximum amount allowed in a single withdrawal.
	WithdrawalCap decimal.Decimal
	// DailyWithdrawals is the maximum number of withdrawals per calendar day.
	DailyWithdrawals int
}

const noMovementsNotice = "No transactions recorded."

// Account holds one customer's balance, transaction history and withdrawal
// counters. All rule enforcement happens here; the Bank only creates and
// looks accounts up. The balance never goes negative.
type Account struct {
	BranchCode string
	Number     int64
	Owner      *user.User

	limits Limits
	symbol string

	balance          decimal.Decimal
	transactions     []Transaction
	withdrawalsToday int
	lastWithdrawal   time.Time

	now func() time.Time
}

// Deposit adds a positive amount to the balance and records the movement.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.record(Deposit, amount)
	return nil
}

// Withdraw subtracts a positive amount from the balance and records the
// movement. Rules are checked in fixed precedence and exactly one failure
// is reported per call:
//
//  1. amount must be positive
//  2. amount must not exceed the balance
//  3. amount must not exceed the per-operation cap
//  4. the daily withdrawal count must not be used up
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	if amount.GreaterThan(a.limits.WithdrawalCap) {
		return ErrWithdrawalLimit
	}
	a.rollDay()
	if a.withdrawalsToday >= a.limits.DailyWithdrawals {
		return ErrDailyLimit
	}

	a.balance = a.balance.Sub(amount)
	a.withdrawalsToday++
	a.lastWithdrawal = a.now()
	a.record(Withdrawal, amount)
	return nil
}

// rollDay clears the daily counter when the last withdrawal happened on an
// earlier calendar date.
func (a *Account) rollDay() {
	if a.withdrawalsToday == 0 {
		return
	}
	ly, lm, ld := a.lastWithdrawal.Date()
	ny, nm, nd := a.now().Date()
	if ly != ny || lm != nm || ld != nd {
		a.withdrawalsToday = 0
	}
}

func (a *Account) record(kind Kind, amount decimal.Decimal) {
	a.transactions = append(a.transactions, Transaction{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		CreatedAt: a.now(),
	})
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// WithdrawalsToday reports how many withdrawals were made on the current
// calendar day.
func (a *Account) WithdrawalsToday() int {
	a.rollDay()
	return a.withdrawalsToday
}

// Transactions returns a copy of the ledger in chronological order.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Statement renders the chronological transaction log followed by the
// current balance. An empty log renders a fixed notice instead of an empty
// list; the log itself may legitimately be empty.
func (a *Account) Statement() string {
	var b strings.Builder
	b.WriteString("=== STATEMENT ===\n")
	if len(a.transactions) == 0 {
		b.WriteString(noMovementsNotice + "\n")
	} else {
		for _, tx := range a.transactions {
			fmt.Fprintf(&b, "%s - %s: %s\n",
				tx.CreatedAt.Format("02/01/2006 15:04:05"), tx.Kind, money.Format(tx.Amount, a.symbol))
		}
	}
	fmt.Fprintf(&b, "Current balance: %s\n", money.Format(a.balance, a.symbol))
	b.WriteString("=================")
	return b.String()
}
