// Package seed pre-loads the demo users and accounts used by the
// consolidated exercise. It only runs when seed.demo is enabled; the
// system otherwise starts empty.
package seed

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/condorbank/teller/internal/bank"
	"github.com/condorbank/teller/internal/user"
)

var demoUsers = []user.User{
	{
		FullName:   "Maria Souza",
		BirthDate:  "14/03/1991",
		NationalID: "12345678900",
		Address:    "Rua das Flores 100, Sao Paulo",
	},
	{
		FullName:   "Joao Lima",
		BirthDate:  "02/11/1987",
		NationalID: "98765432100",
		Address:    "Av. Atlantica 55, Rio de Janeiro",
	},
}

var openingBalance = decimal.RequireFromString("1000.00")

// Run registers the demo users and opens one funded account for each.
func Run(users *user.Registry, b *bank.Bank, log *zap.Logger) {
	for _, du := range demoUsers {
		u, err := users.Register(du)
		if err != nil {
			log.Warn("seed user skipped", zap.String("national_id", du.NationalID), zap.Error(err))
			continue
		}
		acct, err := b.OpenAccount(u.NationalID)
		if err != nil {
			log.Warn("seed account skipped", zap.String("national_id", u.NationalID), zap.Error(err))
			continue
		}
		if err := acct.Deposit(openingBalance); err != nil {
			log.Warn("seed deposit skipped", zap.Int64("account", acct.Number), zap.Error(err))
			continue
		}
		log.Info("seeded demo account",
			zap.Int64("account", acct.Number),
			zap.String("owner", u.FullName))
	}
}
