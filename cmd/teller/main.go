package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/condorbank/teller/internal/bank"
	"github.com/condorbank/teller/internal/cli"
	"github.com/condorbank/teller/internal/config"
	"github.com/condorbank/teller/internal/logger"
	"github.com/condorbank/teller/internal/seed"
	"github.com/condorbank/teller/internal/user"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	cfg, err := config.Load("")
	if err != nil {
		logger.Log.Fatal("failed to load config", zap.Error(err))
	}
	withdrawalCap, err := cfg.WithdrawalCap()
	if err != nil {
		logger.Log.Fatal("invalid withdrawal cap in config",
			zap.String("value", cfg.Limits.WithdrawalCap), zap.Error(err))
	}

	users := user.NewRegistry()
	b := bank.New(users, cfg.Bank.BranchCode, cfg.Currency.Symbol, bank.Limits{
		WithdrawalCap:    withdrawalCap,
		DailyWithdrawals: cfg.Limits.DailyWithdrawals,
	})

	if cfg.Seed.Demo {
		seed.Run(users, b, logger.Log)
	}

	logger.Log.Info("teller started",
		zap.String("branch", cfg.Bank.BranchCode),
		zap.String("withdrawal_cap", cfg.Limits.WithdrawalCap),
		zap.Int("daily_withdrawals", cfg.Limits.DailyWithdrawals))

	cli.New(os.Stdin, os.Stdout, users, b, logger.Log).Run()

	logger.Log.Info("teller stopped")
}
