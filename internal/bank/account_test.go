package bank

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/condorbank/teller/internal/user"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testBank(t *testing.T) *Bank {
	t.Helper()
	users := user.NewRegistry()
	_, err := users.Register(user.User{
		FullName:   "Ana Silva",
		BirthDate:  "01/01/1990",
		NationalID: "111",
		Address:    "Rua A, 1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return New(users, "0001", "R$", Limits{
		WithdrawalCap:    dec("500.00"),
		DailyWithdrawals: 3,
	})
}

func testAccount(t *testing.T) *Account {
	t.Helper()
	a, err := testBank(t).OpenAccount("111")
	if err != nil {
		t.Fatalf("open account: %v", err)
	}
	return a
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{name: "positive amount", amount: "1500.00"},
		{name: "small fraction", amount: "0.01"},
		{name: "zero", amount: "0", wantErr: ErrInvalidAmount},
		{name: "negative", amount: "-10", wantErr: ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testAccount(t)
			err := a.Deposit(dec(tt.amount))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if !a.Balance().IsZero() || len(a.Transactions()) != 0 {
					t.Error("failed deposit must not change state")
				}
				return
			}
			if err != nil {
				t.Fatalf("Deposit: %v", err)
			}
			if !a.Balance().Equal(dec(tt.amount)) {
				t.Errorf("balance = %s, want %s", a.Balance(), tt.amount)
			}
			txs := a.Transactions()
			if len(txs) != 1 || txs[0].Kind != Deposit || !txs[0].Amount.Equal(dec(tt.amount)) {
				t.Errorf("transactions = %+v", txs)
			}
			if txs[0].CreatedAt.IsZero() {
				t.Error("transaction timestamp not set")
			}
		})
	}
}

func TestWithdrawRulePrecedence(t *testing.T) {
	// Balance 100, cap 500, 3 withdrawals per day. 600 trips both the
	// balance and the cap; insufficient funds must win.
	a := testAccount(t)
	if err := a.Deposit(dec("100.00")); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{name: "zero amount", amount: "0", wantErr: ErrInvalidAmount},
		{name: "negative amount", amount: "-1", wantErr: ErrInvalidAmount},
		{name: "insufficient funds beats cap", amount: "600.00", wantErr: ErrInsufficientFunds},
		{name: "over balance", amount: "100.01", wantErr: ErrInsufficientFunds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := a.Withdraw(dec(tt.amount)); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if !a.Balance().Equal(dec("100.00")) || len(a.Transactions()) != 1 {
		t.Error("failed withdrawals must not change state")
	}
}

func TestWithdrawOverCap(t *testing.T) {
	a := testAccount(t)
	if err := a.Deposit(dec("2000.00")); err != nil {
		t.Fatal(err)
	}
	if err := a.Withdraw(dec("500.01")); !errors.Is(err, ErrWithdrawalLimit) {
		t.Fatalf("err = %v, want ErrWithdrawalLimit", err)
	}
	// Exactly the cap is allowed.
	if err := a.Withdraw(dec("500.00")); err != nil {
		t.Fatalf("Withdraw at cap: %v", err)
	}
	if !a.Balance().Equal(dec("1500.00")) {
		t.Errorf("balance = %s, want 1500.00", a.Balance())
	}
}

func TestWithdrawDailyLimit(t *testing.T) {
	a := testAccount(t)
	if err := a.Deposit(dec("2000.00")); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := a.Withdraw(dec("100.00")); err != nil {
			t.Fatalf("withdrawal %d: %v", i+1, err)
		}
	}
	if got := a.WithdrawalsToday(); got != 3 {
		t.Fatalf("WithdrawalsToday = %d, want 3", got)
	}
	// Fourth attempt with plenty of balance and a legal amount.
	if err := a.Withdraw(dec("1.00")); !errors.Is(err, ErrDailyLimit) {
		t.Fatalf("err = %v, want ErrDailyLimit", err)
	}
	if !a.Balance().Equal(dec("1700.00")) {
		t.Errorf("balance = %s, want 1700.00", a.Balance())
	}
}

func TestWithdrawDailyCounterResetsNextDay(t *testing.T) {
	a := testAccount(t)
	now := time.Date(2026, time.August, 25, 10, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	if err := a.Deposit(dec("2000.00")); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := a.Withdraw(dec("100.00")); err != nil {
			t.Fatalf("withdrawal %d: %v", i+1, err)
		}
	}
	if err := a.Withdraw(dec("100.00")); !errors.Is(err, ErrDailyLimit) {
		t.Fatalf("err = %v, want ErrDailyLimit", err)
	}

	// Next calendar day: the counter resets.
	now = now.Add(24 * time.Hour)
	if got := a.WithdrawalsToday(); got != 0 {
		t.Fatalf("WithdrawalsToday after day change = %d, want 0", got)
	}
	if err := a.Withdraw(dec("100.00")); err != nil {
		t.Fatalf("withdrawal on new day: %v", err)
	}
	if got := a.WithdrawalsToday(); got != 1 {
		t.Errorf("WithdrawalsToday = %d, want 1", got)
	}
}

// TestExerciseScenario walks the canonical session: open an account for
// user "111", deposit 1500.00 and make three 500.00 withdrawals. The
// fourth withdrawal fails and leaves the zero balance untouched — with an
// empty balance the funds check fires before the daily-limit check.
func TestExerciseScenario(t *testing.T) {
	b := testBank(t)
	a, err := b.OpenAccount("111")
	if err != nil {
		t.Fatal(err)
	}
	if a.Number != 1 || !a.Balance().IsZero() {
		t.Fatalf("fresh account: number=%d balance=%s", a.Number, a.Balance())
	}

	if err := a.Deposit(dec("1500.00")); err != nil {
		t.Fatal(err)
	}
	if !a.Balance().Equal(dec("1500.00")) {
		t.Fatalf("balance = %s, want 1500.00", a.Balance())
	}
	txs := a.Transactions()
	if len(txs) != 1 || txs[0].Kind != Deposit || !txs[0].Amount.Equal(dec("1500.00")) {
		t.Fatalf("log after deposit = %+v", txs)
	}

	for i := 0; i < 3; i++ {
		if err := a.Withdraw(dec("500.00")); err != nil {
			t.Fatalf("withdrawal %d: %v", i+1, err)
		}
	}
	if !a.Balance().IsZero() || a.WithdrawalsToday() != 3 {
		t.Fatalf("after 3 withdrawals: balance=%s count=%d", a.Balance(), a.WithdrawalsToday())
	}

	if err := a.Withdraw(dec("1.00")); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if !a.Balance().IsZero() {
		t.Errorf("balance = %s, want 0.00", a.Balance())
	}
}

func TestStatementEmpty(t *testing.T) {
	a := testAccount(t)
	got := a.Statement()
	if !strings.Contains(got, "No transactions recorded.") {
		t.Errorf("statement missing no-movements notice:\n%s", got)
	}
	if !strings.Contains(got, "Current balance: R$ 0.00") {
		t.Errorf("statement missing zero balance line:\n%s", got)
	}
}

func TestStatement(t *testing.T) {
	a := testAccount(t)
	a.now = func() time.Time {
		return time.Date(2026, time.August, 25, 14, 30, 0, 0, time.UTC)
	}
	if err := a.Deposit(dec("1500.00")); err != nil {
		t.Fatal(err)
	}
	if err := a.Withdraw(dec("500.00")); err != nil {
		t.Fatal(err)
	}

	got := a.Statement()
	depositLine := "25/08/2026 14:30:00 - DEPOSIT: R$ 1500.00"
	withdrawalLine := "25/08/2026 14:30:00 - WITHDRAWAL: R$ 500.00"
	if !strings.Contains(got, depositLine) {
		t.Errorf("statement missing %q:\n%s", depositLine, got)
	}
	if !strings.Contains(got, withdrawalLine) {
		t.Errorf("statement missing %q:\n%s", withdrawalLine, got)
	}
	if strings.Index(got, depositLine) > strings.Index(got, withdrawalLine) {
		t.Error("statement lines out of chronological order")
	}
	if !strings.Contains(got, "Current balance: R$ 1000.00") {
		t.Errorf("statement missing balance line:\n%s", got)
	}
	if strings.Contains(got, "No transactions recorded.") {
		t.Error("no-movements notice rendered with a non-empty log")
	}
}
