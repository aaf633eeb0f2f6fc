// Package config loads the teller configuration. A config file is
// optional: every key has a default, so the binary runs with no
// environment setup beyond process start.
package config

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Currency struct {
		Symbol string `mapstructure:"symbol"`
	} `mapstructure:"currency"`
	Limits struct {
		WithdrawalCap    string `mapstructure:"withdrawal_cap"`
		DailyWithdrawals int    `mapstructure:"daily_withdrawals"`
	} `mapstructure:"limits"`
	Bank struct {
		BranchCode string `mapstructure:"branch_code"`
	} `mapstructure:"bank"`
	Seed struct {
		Demo bool `mapstructure:"demo"`
	} `mapstructure:"seed"`
}

// Load reads config.yaml from dir (default "./configs") when present and
// falls back to defaults when the file does not exist.
func Load(dir string) (Config, error) {
	if dir == "" {
		dir = "./configs"
	}

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("currency.symbol", "R$")
	v.SetDefault("limits.withdrawal_cap", "500.00")
	v.SetDefault("limits.daily_withdrawals", 3)
	v.SetDefault("bank.branch_code", "0001")
	v.SetDefault("seed.demo", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithdrawalCap parses the configured per-operation withdrawal cap.
func (c Config) WithdrawalCap() (decimal.Decimal, error) {
	return decimal.NewFromString(c.Limits.WithdrawalCap)
}
