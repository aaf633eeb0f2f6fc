// Package bank implements the account ledger: the Account entity with its
// deposit/withdraw/statement rules and the Bank registry that owns every
// account it opens.
package bank

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/condorbank/teller/internal/user"
)

// Bank is the account registry. It allocates sequential account numbers
// starting at 1 and keeps accounts in creation order. Owner links point
// into the user registry; the Bank never creates or destroys users.
// Like the rest of the system it is driven by one sequential caller and is
// not safe for concurrent use.
type Bank struct {
	branchCode string
	symbol     string
	limits     Limits
	users      *user.Registry

	nextNumber int64
	accounts   []*Account
	byNumber   map[int64]*Account
}

func New(users *user.Registry, branchCode, currencySymbol string, limits Limits) *Bank {
	return &Bank{
		branchCode: branchCode,
		symbol:     currencySymbol,
		limits:     limits,
		users:      users,
		byNumber:   make(map[int64]*Account),
	}
}

// OpenAccount creates a zero-balance account bound to a registered user.
// The owner is resolved before a number is allocated, so a failed open
// never consumes a sequential number.
func (b *Bank) OpenAccount(nationalID string) (*Account, error) {
	owner, err := b.users.Find(nationalID)
	if err != nil {
		return nil, err
	}

	b.nextNumber++
	a := &Account{
		BranchCode: b.branchCode,
		Number:     b.nextNumber,
		Owner:      owner,
		limits:     b.limits,
		symbol:     b.symbol,
		balance:    decimal.Zero,
		now:        time.Now,
	}
	b.accounts = append(b.accounts, a)
	b.byNumber[a.Number] = a
	return a, nil
}

// FindByNumber returns the account with the given number.
func (b *Bank) FindByNumber(number int64) (*Account, error) {
	a, ok := b.byNumber[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// Accounts yields every account in creation order. The sequence is lazy
// and restartable: it can be ranged over any number of times.
func (b *Bank) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, a := range b.accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// Len reports how many accounts are open.
func (b *Bank) Len() int {
	return len(b.accounts)
}

// Limits returns the withdrawal rules applied to accounts of this bank.
func (b *Bank) Limits() Limits {
	return b.limits
}

// CurrencySymbol returns the symbol used when rendering amounts.
func (b *Bank) CurrencySymbol() string {
	return b.symbol
}
