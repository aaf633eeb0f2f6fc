// Package cli implements the interactive dispatch loop. Each iteration
// reads one command token, prompts for the arguments the command needs,
// resolves the target account where applicable, invokes the matching
// registry or account operation and prints the outcome. Every operation
// runs to completion before the next command is read; no domain error ever
// ends the loop.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/condorbank/teller/internal/bank"
	"github.com/condorbank/teller/internal/money"
	"github.com/condorbank/teller/internal/user"
)

type CLI struct {
	in    *bufio.Scanner
	out   io.Writer
	users *user.Registry
	bank  *bank.Bank
	log   *zap.Logger
}

func New(in io.Reader, out io.Writer, users *user.Registry, b *bank.Bank, log *zap.Logger) *CLI {
	return &CLI{
		in:    bufio.NewScanner(in),
		out:   out,
		users: users,
		bank:  b,
		log:   log,
	}
}

// handlers is the pure command-to-handler mapping; the loop itself never
// branches on command tokens.
var handlers = map[command]func(*CLI){
	cmdDeposit:      (*CLI).deposit,
	cmdWithdraw:     (*CLI).withdraw,
	cmdStatement:    (*CLI).statement,
	cmdNewUser:      (*CLI).newUser,
	cmdNewAccount:   (*CLI).newAccount,
	cmdListAccounts: (*CLI).listAccounts,
	cmdListBalances: (*CLI).listBalances,
}

// Run drives the menu until the quit command or input exhaustion.
func (c *CLI) Run() {
	fmt.Fprintln(c.out, "Welcome to the banking system")
	for {
		c.printMenu()
		token, ok := c.readLine("> ")
		if !ok {
			return
		}

		cmd := parseCommand(token)
		if cmd == cmdQuit {
			fmt.Fprintln(c.out, "Goodbye.")
			return
		}
		handler, ok := handlers[cmd]
		if !ok {
			fmt.Fprintln(c.out, "Invalid option. Try again.")
			continue
		}
		handler(c)
	}
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Choose an option:")
	fmt.Fprintln(c.out, "[d] Deposit")
	fmt.Fprintln(c.out, "[s] Withdraw")
	fmt.Fprintln(c.out, "[e] Statement")
	fmt.Fprintln(c.out, "[nu] New user")
	fmt.Fprintln(c.out, "[nc] New account")
	fmt.Fprintln(c.out, "[lc] List accounts")
	fmt.Fprintln(c.out, "[lcx] List accounts with balances")
	fmt.Fprintln(c.out, "[q] Quit")
}

// readLine prompts and reads one line. ok is false once input is
// exhausted, which ends the current operation and then the loop.
func (c *CLI) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// promptAccount reads an account number and resolves it. A failed prompt
// reports the reason and aborts the current operation.
func (c *CLI) promptAccount() (*bank.Account, bool) {
	text, ok := c.readLine("Account number: ")
	if !ok {
		return nil, false
	}
	number, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid input: enter the account number as an integer.")
		return nil, false
	}
	a, err := c.bank.FindByNumber(number)
	if err != nil {
		fmt.Fprintln(c.out, "No account found with that number.")
		return nil, false
	}
	return a, true
}

// promptAmount reads a decimal amount; comma and dot both work as the
// decimal separator.
func (c *CLI) promptAmount(action string) (decimal.Decimal, bool) {
	text, ok := c.readLine("Amount to " + action + ": ")
	if !ok {
		return decimal.Zero, false
	}
	amount, err := money.Parse(text)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid input: enter a number such as 1500.45 or 1500,45.")
		return decimal.Zero, false
	}
	return amount, true
}

func (c *CLI) deposit() {
	acct, ok := c.promptAccount()
	if !ok {
		return
	}
	amount, ok := c.promptAmount("deposit")
	if !ok {
		return
	}

	if err := acct.Deposit(amount); err != nil {
		c.reject("deposit", acct.Number, err)
		return
	}
	c.log.Info("deposit",
		zap.Int64("account", acct.Number),
		zap.String("amount", amount.StringFixed(2)))
	fmt.Fprintf(c.out, "Deposit successful: %s. Current balance: %s\n",
		c.format(amount), c.format(acct.Balance()))
}

func (c *CLI) withdraw() {
	acct, ok := c.promptAccount()
	if !ok {
		return
	}
	amount, ok := c.promptAmount("withdraw")
	if !ok {
		return
	}

	if err := acct.Withdraw(amount); err != nil {
		c.reject("withdraw", acct.Number, err)
		return
	}
	c.log.Info("withdrawal",
		zap.Int64("account", acct.Number),
		zap.String("amount", amount.StringFixed(2)))
	remaining := c.bank.Limits().DailyWithdrawals - acct.WithdrawalsToday()
	fmt.Fprintf(c.out, "Withdrawal successful: %s. Current balance: %s. Withdrawals remaining today: %d\n",
		c.format(amount), c.format(acct.Balance()), remaining)
}

func (c *CLI) statement() {
	acct, ok := c.promptAccount()
	if !ok {
		return
	}
	fmt.Fprintln(c.out, acct.Statement())
}

func (c *CLI) newUser() {
	input := user.User{}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Full name: ", &input.FullName},
		{"Birth date (dd/mm/yyyy): ", &input.BirthDate},
		{"National ID: ", &input.NationalID},
		{"Address: ", &input.Address},
	}
	for _, f := range fields {
		text, ok := c.readLine(f.prompt)
		if !ok {
			return
		}
		*f.dst = text
	}

	u, err := c.users.Register(input)
	if err != nil {
		c.rejectUser(err)
		return
	}
	c.log.Info("user registered", zap.String("national_id", u.NationalID))
	fmt.Fprintf(c.out, "User %s registered.\n", u.FullName)
}

func (c *CLI) newAccount() {
	nationalID, ok := c.readLine("National ID: ")
	if !ok {
		return
	}

	acct, err := c.bank.OpenAccount(strings.TrimSpace(nationalID))
	if err != nil {
		c.rejectUser(err)
		return
	}
	c.log.Info("account opened",
		zap.Int64("account", acct.Number),
		zap.String("national_id", acct.Owner.NationalID))
	fmt.Fprintf(c.out, "Account %d opened at branch %s for %s.\n",
		acct.Number, acct.BranchCode, acct.Owner.FullName)
}

func (c *CLI) listAccounts() {
	if c.bank.Len() == 0 {
		fmt.Fprintln(c.out, "No accounts opened yet.")
		return
	}
	for a := range c.bank.Accounts() {
		fmt.Fprintf(c.out, "Branch: %s  Account: %d  Owner: %s\n",
			a.BranchCode, a.Number, a.Owner.FullName)
	}
}

func (c *CLI) listBalances() {
	if c.bank.Len() == 0 {
		fmt.Fprintln(c.out, "No accounts opened yet.")
		return
	}
	for a := range c.bank.Accounts() {
		fmt.Fprintf(c.out, "Branch: %s  Account: %d  Owner: %s  Balance: %s\n",
			a.BranchCode, a.Number, a.Owner.FullName, c.format(a.Balance()))
	}
}

// reject maps an account-operation error to its user-facing message.
func (c *CLI) reject(op string, account int64, err error) {
	c.log.Warn("operation rejected",
		zap.String("op", op),
		zap.Int64("account", account),
		zap.Error(err))
	switch {
	case errors.Is(err, bank.ErrInvalidAmount):
		fmt.Fprintln(c.out, "Amounts must be greater than zero.")
	case errors.Is(err, bank.ErrInsufficientFunds):
		fmt.Fprintln(c.out, "Insufficient funds for this withdrawal.")
	case errors.Is(err, bank.ErrWithdrawalLimit):
		fmt.Fprintf(c.out, "The maximum amount per withdrawal is %s.\n",
			c.format(c.bank.Limits().WithdrawalCap))
	case errors.Is(err, bank.ErrDailyLimit):
		fmt.Fprintf(c.out, "Daily withdrawal limit reached (%d per day).\n",
			c.bank.Limits().DailyWithdrawals)
	default:
		fmt.Fprintf(c.out, "Operation failed: %v\n", err)
	}
}

// rejectUser maps a registry error to its user-facing message.
func (c *CLI) rejectUser(err error) {
	c.log.Warn("registry operation rejected", zap.Error(err))
	switch {
	case errors.Is(err, user.ErrDuplicateUser):
		fmt.Fprintln(c.out, "A user with this national ID is already registered.")
	case errors.Is(err, user.ErrUserNotFound):
		fmt.Fprintln(c.out, "No user registered under this national ID.")
	case errors.Is(err, user.ErrInvalidUser):
		fmt.Fprintln(c.out, "All user fields are required.")
	default:
		fmt.Fprintf(c.out, "Operation failed: %v\n", err)
	}
}

func (c *CLI) format(amount decimal.Decimal) string {
	return money.Format(amount, c.bank.CurrencySymbol())
}
